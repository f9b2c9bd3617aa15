// Package memstore provides an in-memory store implementation for testing.
package memstore

import (
	"context"
	"sync"

	"github.com/discochess/repertoire/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store is an in-memory report store for testing.
type Store struct {
	mu      sync.RWMutex
	reports map[string][]byte
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		reports: make(map[string][]byte),
	}
}

// WriteReport stores a copy of data under key.
func (s *Store) WriteReport(ctx context.Context, key string, data []byte) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}
	copied := make([]byte, len(data))
	copy(copied, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[key] = copied
	return nil
}

// ReadReport reads a report from memory.
func (s *Store) ReadReport(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.reports[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return data, nil
}

// ListReports returns all stored keys.
func (s *Store) ListReports(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.reports))
	for k := range s.reports {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close is a no-op for the memory store.
func (s *Store) Close() error {
	return nil
}
