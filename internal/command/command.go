// Package command implements the pantry subcommands.
package command

import (
	"github.com/malonaz/pantry/internal/app"
	"github.com/malonaz/pantry/internal/cli"
	"github.com/malonaz/pantry/internal/conversation"
	"github.com/malonaz/pantry/internal/debug"
)

func newController(store *conversation.Store, client app.Client) *app.Controller {
	return app.New(store, client, debug.GetLogger())
}

// printMessage prints a conversation message with its reminders.
func printMessage(message conversation.Message) {
	if message.Role == conversation.RoleUser {
		cli.UserMessage(message.Content)
		return
	}
	cli.AssistantMessage(message.Content)
	for _, reminder := range message.Reminders {
		cli.Reminder(reminder)
	}
}

// lastMessage returns the latest message of the state, which is the reply once a flow completed.
func lastMessage(state app.State) (conversation.Message, bool) {
	if len(state.Messages) == 0 {
		return conversation.Message{}, false
	}
	return state.Messages[len(state.Messages)-1], true
}
