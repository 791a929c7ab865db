package store

import (
	"context"
	"sync"
)

// MemoryStore is a thread-safe in-process key-value store. It keeps no
// per-entry expiry: the recall cache decides validity from the payloads it
// stores.
type MemoryStore struct {
	data  map[string]string
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// Get retrieves a value; the second return reports presence
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

// Set stores a value under a key
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = value
	return nil
}

// Remove deletes a key; removing an absent key is not an error
func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// Keys enumerates every stored key
func (s *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	return keys, nil
}

// RemoveMany deletes the given keys in one batch
func (s *MemoryStore) RemoveMany(ctx context.Context, keys []string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

// Size returns the current number of stored keys (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
