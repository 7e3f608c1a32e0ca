package kv

import "sync"

// MemoryStore is an in-process Store. A positive quota bounds the total number of stored bytes.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
	quota  int
}

// NewMemoryStore instantiates and returns a new memory store.
func NewMemoryStore(quota int) *MemoryStore {
	return &MemoryStore{values: map[string][]byte{}, quota: quota}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set implements Store.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota > 0 {
		size := len(value)
		for k, v := range s.values {
			if k != key {
				size += len(v)
			}
		}
		if size > s.quota {
			return ErrQuotaExceeded
		}
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }
