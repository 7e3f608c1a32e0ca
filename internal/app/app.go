// Package app holds the application state and the controller applying events to it.
package app

import (
	"context"
	"log/slog"

	"github.com/malonaz/pantry/internal/backend"
	"github.com/malonaz/pantry/internal/chat"
	"github.com/malonaz/pantry/internal/conversation"
	"github.com/malonaz/pantry/internal/event"
	"github.com/malonaz/pantry/internal/grocery"
)

// Command is backend work run off the update loop. The events it returns are fed back to Apply.
type Command func(ctx context.Context) []event.Event

// Client is the backend surface used by the application.
type Client interface {
	chat.ItemsCreator
	chat.ExpiryFetcher
	grocery.ItemsLister
}

// State is a snapshot of the view state.
type State struct {
	Messages []conversation.Message
	Items    []backend.GroceryItem
	// Added holds the names of the items the latest fetch added.
	Added   []string
	Loading bool
}

// Controller owns the application state. All its methods must be called from a single goroutine;
// only the returned Commands may run elsewhere.
type Controller struct {
	conversation *conversation.Store
	submission   *chat.Submission
	expiry       *chat.ExpiryCheck
	groceries    *grocery.Synchronizer
	log          *slog.Logger
}

// New instantiates and returns a new controller.
func New(store *conversation.Store, client Client, log *slog.Logger) *Controller {
	return &Controller{
		conversation: store,
		submission:   chat.NewSubmission(client, log),
		expiry:       chat.NewExpiryCheck(client, log),
		groceries:    grocery.NewSynchronizer(client, log),
		log:          log,
	}
}

// Init restores the persisted conversation and returns the initial grocery fetch.
func (c *Controller) Init() Command {
	c.conversation.Hydrate()
	return c.groceries.Fetch
}

// State returns a snapshot of the view state.
func (c *Controller) State() State {
	return State{
		Messages: c.conversation.Messages(),
		Items:    c.groceries.Items(),
		Added:    c.groceries.Added(),
		Loading:  c.submission.State() == chat.Sending,
	}
}

// Submit starts a submission of the given input. It returns false, and changes nothing,
// when the input is blank or a submission is already in flight.
func (c *Controller) Submit(input string) (Command, bool) {
	prompt, events, ok := c.submission.Begin(input)
	if !ok {
		return nil, false
	}
	c.Apply(events...)
	return func(ctx context.Context) []event.Event {
		return c.submission.Send(ctx, prompt)
	}, true
}

// CheckExpiry records the expiry prompt and returns the query answering it.
func (c *Controller) CheckExpiry() Command {
	c.Apply(c.expiry.Begin()...)
	return c.expiry.Send
}

// Refresh flips the grocery trigger outside of a submission.
func (c *Controller) Refresh() Command {
	return c.groceries.Trigger()
}

// Apply applies events to the state and returns the commands they request.
func (c *Controller) Apply(events ...event.Event) []Command {
	var commands []Command
	for _, e := range events {
		switch e := e.(type) {
		case event.UserMessageAdded:
			c.conversation.Append(e.Message)
		case event.AssistantMessageAdded:
			c.conversation.Append(e.Message)
		case event.LoadingChanged:
			if !e.Loading {
				c.submission.End()
			}
		case event.RefetchRequested:
			commands = append(commands, c.groceries.Trigger())
		case event.ItemsReplaced:
			c.groceries.Replace(e.Items)
		case event.RefetchFailed:
			// Already logged by the synchronizer; the cached list stays as is.
		default:
			c.log.Error("unknown event", "event", e)
		}
	}
	return commands
}

// Run executes a command on the calling goroutine, applying its events and any command they request.
func (c *Controller) Run(ctx context.Context, command Command) {
	pending := []Command{command}
	for len(pending) > 0 {
		command, pending = pending[0], pending[1:]
		pending = append(pending, c.Apply(command(ctx)...)...)
	}
}
