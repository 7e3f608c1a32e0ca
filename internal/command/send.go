package command

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/pantry/internal/app"
	"github.com/malonaz/pantry/internal/cli"
	"github.com/malonaz/pantry/internal/configuration"
	"github.com/malonaz/pantry/internal/history"
)

// NewSendCmd instantiates and returns the send command.
func NewSendCmd(config *configuration.Config, storage *Storage, client app.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "send [prompt...]",
		Short: "Tell the pantry what you bought",
		Long:  "Send a single message to the pantry. Without arguments the message is read from the terminal (Ctrl+J to send).",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			if strings.TrimSpace(prompt) == "" {
				input, err := cli.PromptUser()
				if err != nil {
					return errors.Wrap(err, "reading prompt")
				}
				prompt = input
			}

			store, err := storage.Conversation()
			if err != nil {
				return err
			}
			controller := newController(store, client)
			// The initial grocery fetch is not needed, the submission triggers its own.
			controller.Init()
			command, ok := controller.Submit(prompt)
			if !ok {
				return errors.New("nothing to send")
			}
			history.New(config.Chat.InputHistoryFile, config.Chat.MaxInputHistory).Add(prompt)

			controller.Run(cmd.Context(), command)
			state := controller.State()
			if reply, ok := lastMessage(state); ok {
				printMessage(reply)
			}
			cli.Info("🛒 %d items in your pantry\n", len(state.Items))
			return nil
		},
	}
}
