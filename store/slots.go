package store

import (
	"context"
	"sync"
)

// Slot keys of the persisted local state.
const (
	IdentitySlot = "expensex_user"
	AccountsSlot = "expensex_registered_users"
)

// Slots is a small persistent key-value area that survives restarts. Only the
// session identity and the registered accounts are kept there.
type Slots interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemorySlots keeps slots in process memory.
type MemorySlots struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{values: make(map[string]string)}
}

func (m *MemorySlots) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemorySlots) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemorySlots) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
