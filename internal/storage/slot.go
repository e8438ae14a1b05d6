package storage

import (
	"context"
	"slices"
	"sync"
)

// Slot is a durable key-value cell. database.KVRepo is the SQLite implementation.
type Slot interface {
	// Get returns the stored value; ok is false when nothing is stored under key
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put replaces the value stored under key
	Put(ctx context.Context, key string, value []byte) error
}

// MemorySlot keeps values in process memory. It is used by tests and by callers
// that want a store without durability.
type MemorySlot struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemorySlot creates an empty in-memory slot
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key
func (m *MemorySlot) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return slices.Clone(v), ok, nil
}

// Put stores a copy of value under key
func (m *MemorySlot) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = slices.Clone(value)
	return nil
}
