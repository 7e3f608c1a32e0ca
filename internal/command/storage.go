package command

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/malonaz/pantry/internal/configuration"
	"github.com/malonaz/pantry/internal/conversation"
	"github.com/malonaz/pantry/internal/kv"
)

// Storage opens the conversation storage the first time a command needs it.
type Storage struct {
	config configuration.StorageConfig
	log    *slog.Logger

	once         sync.Once
	kv           kv.Store
	conversation *conversation.Store
	err          error
}

// NewStorage returns a Storage for the given configuration. Nothing is opened yet.
func NewStorage(config configuration.StorageConfig, log *slog.Logger) *Storage {
	return &Storage{config: config, log: log}
}

// Conversation opens the key-value store on first use and returns the conversation kept in it.
func (s *Storage) Conversation() (*conversation.Store, error) {
	s.once.Do(func() {
		store, err := kv.Open(s.config)
		if err != nil {
			s.err = errors.Wrap(err, "opening storage")
			return
		}
		s.kv = store
		s.conversation = conversation.NewStore(store, s.config.Key, s.log)
	})
	return s.conversation, s.err
}

// Close closes the key-value store if it was opened.
func (s *Storage) Close() error {
	if s.kv == nil {
		return nil
	}
	return s.kv.Close()
}
