package command

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/pantry/cli/tui"
	"github.com/malonaz/pantry/internal/app"
	"github.com/malonaz/pantry/internal/configuration"
)

// NewChatCmd instantiates and returns the chat command.
func NewChatCmd(config *configuration.Config, storage *Storage, client app.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the pantry chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := storage.Conversation()
			if err != nil {
				return err
			}
			m, err := tui.New(ctx, config, newController(store, client))
			if err != nil {
				return errors.Wrap(err, "creating chat model")
			}

			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithMouseCellMotion(),
				tea.WithReportFocus(),
			)
			if _, err := p.Run(); err != nil {
				return errors.Wrap(err, "running chat")
			}
			return nil
		},
	}
}
