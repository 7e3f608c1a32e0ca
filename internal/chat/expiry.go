package chat

import (
	"context"
	"log/slog"

	"github.com/malonaz/pantry/internal/backend"
	"github.com/malonaz/pantry/internal/conversation"
	"github.com/malonaz/pantry/internal/event"
)

// ExpiryPrompt is the user turn recorded when checking for expiring items.
const ExpiryPrompt = "Show me a list of all expiring items in the next 7 days."

// ExpiryFetcher lists the items expiring soon.
type ExpiryFetcher interface {
	Expiry(ctx context.Context) (*backend.ExpiryResponse, error)
}

// ExpiryCheck asks the backend for expiring items. It is not exclusive with submissions.
type ExpiryCheck struct {
	client ExpiryFetcher
	log    *slog.Logger
}

// NewExpiryCheck instantiates and returns a new expiry check flow.
func NewExpiryCheck(client ExpiryFetcher, log *slog.Logger) *ExpiryCheck {
	return &ExpiryCheck{client: client, log: log}
}

// Begin returns the events recording the fixed user prompt.
func (c *ExpiryCheck) Begin() []event.Event {
	return []event.Event{event.UserMessageAdded{Message: conversation.NewUserMessage(ExpiryPrompt)}}
}

// Send queries the backend and returns the assistant reply. Failures are logged, not classified.
func (c *ExpiryCheck) Send(ctx context.Context) []event.Event {
	content := expiryErrorMessage
	response, err := c.client.Expiry(ctx)
	if err != nil {
		c.log.Error("checking expiring items", "error", err)
	} else {
		content = DescribeExpiry(response)
	}
	return []event.Event{event.AssistantMessageAdded{Message: conversation.NewAssistantMessage(content)}}
}
