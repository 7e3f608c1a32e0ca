// Package conversation holds the ordered log of chat turns and keeps it mirrored in a key-value store.
package conversation

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/malonaz/pantry/internal/kv"
)

// DefaultKey is the key the conversation is persisted under.
const DefaultKey = "chatHistory"

// Store is the in-memory conversation, persisted after every mutation.
// Persistence is best effort: failures are logged and never surface to callers.
type Store struct {
	kv       kv.Store
	key      string
	log      *slog.Logger
	messages []Message
}

// NewStore instantiates an empty conversation backed by the given key-value store.
func NewStore(store kv.Store, key string, log *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: store, key: key, log: log}
}

// Hydrate replaces the in-memory conversation with the persisted one, if any.
func (s *Store) Hydrate() {
	if messages := s.Load(); len(messages) > 0 {
		s.messages = messages
	}
}

// Append adds a message at the end of the conversation and persists it.
func (s *Store) Append(message Message) {
	s.messages = append(s.messages, message)
	s.Persist(s.messages)
}

// Messages returns a deep copy of the conversation.
func (s *Store) Messages() []Message {
	messages := make([]Message, len(s.messages))
	for i, message := range s.messages {
		messages[i] = message.clone()
	}
	return messages
}

// Len returns the number of messages in the conversation.
func (s *Store) Len() int {
	return len(s.messages)
}

// Load reads the persisted conversation. Missing, malformed or non-array payloads yield an empty conversation.
func (s *Store) Load() []Message {
	bytes, err := s.kv.Get(s.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.log.Warn("loading conversation", "key", s.key, "error", err)
		}
		return []Message{}
	}
	if len(bytes) == 0 {
		return []Message{}
	}

	var messages []Message
	if err := json.Unmarshal(bytes, &messages); err != nil {
		s.log.Warn("discarding malformed conversation", "key", s.key, "error", err)
		return []Message{}
	}
	if messages == nil {
		// A literal null.
		return []Message{}
	}
	return messages
}

// Persist writes the full conversation under the store key.
func (s *Store) Persist(messages []Message) {
	if messages == nil {
		messages = []Message{}
	}
	bytes, err := json.Marshal(messages)
	if err != nil {
		s.log.Error("marshaling conversation", "error", err)
		return
	}
	if err := s.kv.Set(s.key, bytes); err != nil {
		s.log.Warn("persisting conversation", "key", s.key, "messages", len(messages), "error", err)
	}
}

// Clear deletes the persisted conversation and empties the in-memory one.
func (s *Store) Clear() error {
	s.messages = nil
	return s.kv.Delete(s.key)
}
