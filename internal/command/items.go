package command

import (
	_ "embed"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/pantry/internal/backend"
	"github.com/malonaz/pantry/internal/cli"
	"github.com/malonaz/pantry/internal/debug"
	"github.com/malonaz/pantry/internal/grocery"
)

//go:embed items.tmpl
var defaultItemsTemplate string

type itemsData struct {
	Items []backend.GroceryItem
	// Units is the sum of all quantities.
	Units int
}

// NewItemsCmd instantiates and returns the items command.
func NewItemsCmd(client grocery.ItemsLister) *cobra.Command {
	var opts struct {
		Template string
	}
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List the grocery items in the pantry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := parseItemsTemplate(opts.Template, time.Now())
			if err != nil {
				return err
			}

			synchronizer := grocery.NewSynchronizer(client, debug.GetLogger())
			if err := synchronizer.Refetch(cmd.Context()); err != nil {
				return errors.Wrap(err, "fetching items")
			}
			data := itemsData{Items: synchronizer.Items()}
			for _, item := range data.Items {
				data.Units += item.Quantity
			}
			if err := tmpl.Execute(cli.Writer(), data); err != nil {
				return errors.Wrap(err, "executing template")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "Go template used to print the items (sprig functions, expiresIn and expired are available)")
	return cmd
}

func parseItemsTemplate(text string, now time.Time) (*template.Template, error) {
	if text == "" {
		text = defaultItemsTemplate
	}
	funcs := sprig.TxtFuncMap()
	funcs["expiresIn"] = func(expiry string) string { return grocery.HumanizeExpiry(expiry, now) }
	funcs["expired"] = func(expiry string) bool { return grocery.Expired(expiry, now) }
	tmpl, err := template.New("items").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parsing template")
	}
	return tmpl, nil
}
