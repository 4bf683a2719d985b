// Package storage defines the durable key/value store holding player preferences.
package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// ErrNotFound is returned when a key has no stored value
var ErrNotFound = errors.New("key not found")

// ErrEmptyKey is returned for blank keys
var ErrEmptyKey = errors.New("key is required")

// Store persists raw values by key
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// MemoryStore is a process-local Store
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get implements Store
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put implements Store
func (m *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.mu.Lock()
	m.data[key] = v
	m.mu.Unlock()
	return nil
}

// Close implements Store
func (m *MemoryStore) Close() error { return nil }
