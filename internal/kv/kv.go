// Package kv implements the local key-value stores holding client-side state.
package kv

import (
	"github.com/pkg/errors"

	"github.com/malonaz/pantry/internal/configuration"
	"github.com/malonaz/pantry/internal/file"
)

var (
	// ErrNotFound is returned by Get when the key holds no value.
	ErrNotFound = errors.New("key not found")
	// ErrQuotaExceeded is returned by Set when the value does not fit in the store.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is an opaque key-value store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Close releases the underlying resources.
	Close() error
}

// Open returns the store described by the storage configuration.
func Open(config configuration.StorageConfig) (Store, error) {
	switch config.Driver {
	case configuration.StorageDriverMemory:
		return NewMemoryStore(0), nil
	case configuration.StorageDriverBolt, configuration.StorageDriverSQLite:
	default:
		return nil, errors.Errorf("unknown storage driver %q", config.Driver)
	}

	if err := file.CreateParentDirectory(config.Path); err != nil {
		return nil, errors.Wrap(err, "creating storage directory")
	}
	if config.Driver == configuration.StorageDriverSQLite {
		return NewSQLiteStore(config.Path)
	}
	return NewBoltStore(config.Path)
}
