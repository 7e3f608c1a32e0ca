// Package event defines the events flowing from the chat and grocery flows into the application state.
package event

import (
	"github.com/malonaz/pantry/internal/backend"
	"github.com/malonaz/pantry/internal/conversation"
)

// Event is applied to the application state by the controller.
type Event interface {
	isEvent()
}

// UserMessageAdded appends a user turn to the conversation.
type UserMessageAdded struct {
	Message conversation.Message
}

// AssistantMessageAdded appends an assistant turn to the conversation.
type AssistantMessageAdded struct {
	Message conversation.Message
}

// LoadingChanged reports a submission entering or leaving the sending state.
type LoadingChanged struct {
	Loading bool
}

// RefetchRequested flips the grocery refetch trigger.
type RefetchRequested struct{}

// ItemsReplaced carries a freshly fetched grocery list.
type ItemsReplaced struct {
	Items []backend.GroceryItem
}

// RefetchFailed reports a grocery fetch that left the cached list untouched.
type RefetchFailed struct {
	Err error
}

func (UserMessageAdded) isEvent()      {}
func (AssistantMessageAdded) isEvent() {}
func (LoadingChanged) isEvent()        {}
func (RefetchRequested) isEvent()      {}
func (ItemsReplaced) isEvent()         {}
func (RefetchFailed) isEvent()         {}
