package cache

import (
	"context"
	"math/big"
	"sync"
)

// MemoryStore is an in-memory store implementation. Results live only for
// the lifetime of the process; use BadgerStore for durability.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*big.Int
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*big.Int),
	}
}

// Lookup retrieves a value from the store. Returns (nil, false) on miss.
func (s *MemoryStore) Lookup(_ context.Context, key string) (*big.Int, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return new(big.Int).Set(entry), true
}

// Put stores a value. First write wins: an existing entry is left untouched.
func (s *MemoryStore) Put(_ context.Context, key string, value *big.Int) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if value == nil {
		return ErrNilValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		return nil
	}
	s.entries[key] = new(big.Int).Set(value)
	return nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Len reports the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
