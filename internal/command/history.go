package command

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/pantry/internal/cli"
	"github.com/malonaz/pantry/internal/conversation"
)

// NewHistoryCmd instantiates and returns the history command.
func NewHistoryCmd(storage *Storage) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the stored conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Conversation()
			if err != nil {
				return err
			}
			messages := store.Load()
			if len(messages) == 0 {
				cli.Info("No conversation yet.\n")
				return nil
			}

			cli.Title("PANTRY CHAT HISTORY")
			for i, message := range messages {
				if i > 0 && message.Role == conversation.RoleUser {
					cli.Separator()
				}
				printMessage(message)
			}
			return nil
		},
	}
	cmd.AddCommand(newHistoryClearCmd(storage))
	return cmd
}

func newHistoryClearCmd(storage *Storage) *cobra.Command {
	var opts struct {
		Yes bool
	}
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Yes {
				confirm, err := cli.QueryUser("Delete the stored conversation?")
				if err != nil {
					return errors.Wrap(err, "asking for confirmation")
				}
				if !confirm {
					cli.Info("Aborted.\n")
					return nil
				}
			}
			store, err := storage.Conversation()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return errors.Wrap(err, "clearing conversation")
			}
			cli.Info("Conversation cleared.\n")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
