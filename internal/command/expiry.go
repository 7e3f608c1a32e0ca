package command

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/pantry/internal/app"
	"github.com/malonaz/pantry/internal/cli"
	"github.com/malonaz/pantry/internal/markdown"
)

// NewExpiryCmd instantiates and returns the expiry command.
func NewExpiryCmd(storage *Storage, client app.Client) *cobra.Command {
	var opts struct {
		Raw bool
	}
	cmd := &cobra.Command{
		Use:   "expiry",
		Short: "Show the items expiring in the next 7 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Conversation()
			if err != nil {
				return err
			}
			controller := newController(store, client)
			controller.Init()
			controller.Run(cmd.Context(), controller.CheckExpiry())

			reply, ok := lastMessage(controller.State())
			if !ok {
				return errors.New("no reply recorded")
			}
			if opts.Raw {
				printMessage(reply)
				return nil
			}
			renderer, err := markdown.NewRenderer(cli.Width())
			if err != nil {
				return errors.Wrap(err, "creating markdown renderer")
			}
			cli.Print(renderer.Render(-1, reply.Content) + "\n")
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Print the reply without markdown rendering")
	return cmd
}
