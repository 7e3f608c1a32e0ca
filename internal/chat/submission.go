// Package chat implements the flows turning user actions into conversation events.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/malonaz/pantry/internal/backend"
	"github.com/malonaz/pantry/internal/conversation"
	"github.com/malonaz/pantry/internal/event"
)

// State of a submission.
type State int

const (
	// Idle accepts a new submission.
	Idle State = iota
	// Sending has a request in flight.
	Sending
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Sending {
		return "sending"
	}
	return "idle"
}

// ItemsCreator creates grocery items from free text.
type ItemsCreator interface {
	CreateItems(ctx context.Context, prompt string) (*backend.CreateItemsResponse, error)
}

// Submission sends free text to the backend, one request at a time.
type Submission struct {
	client ItemsCreator
	log    *slog.Logger
	state  State
}

// NewSubmission instantiates and returns a new submission flow.
func NewSubmission(client ItemsCreator, log *slog.Logger) *Submission {
	return &Submission{client: client, log: log}
}

// State returns the current state of the flow.
func (s *Submission) State() State {
	return s.state
}

// Begin enters the sending state. It is a no-op returning false when the trimmed input
// is empty or a request is already in flight.
func (s *Submission) Begin(input string) (string, []event.Event, bool) {
	prompt := strings.TrimSpace(input)
	if prompt == "" || s.state == Sending {
		return "", nil, false
	}
	s.state = Sending
	return prompt, []event.Event{
		event.UserMessageAdded{Message: conversation.NewUserMessage(prompt)},
		event.LoadingChanged{Loading: true},
	}, true
}

// Send posts the prompt and returns the events completing the submission, whatever the outcome:
// an assistant message, the end of loading and exactly one refetch request.
// It does not touch the flow state and can run off the update loop.
func (s *Submission) Send(ctx context.Context, prompt string) []event.Event {
	var content string
	response, err := s.client.CreateItems(ctx, prompt)
	if err != nil {
		s.log.Warn("submitting prompt", "error", err)
		content = DescribeError(err)
	} else {
		content = ReplyContent(response)
	}
	return []event.Event{
		event.AssistantMessageAdded{Message: conversation.NewAssistantMessage(content)},
		event.LoadingChanged{Loading: false},
		event.RefetchRequested{},
	}
}

// End returns the flow to idle.
func (s *Submission) End() {
	s.state = Idle
}
