package cache

import (
	"context"
	"sync"

	"github.com/mbaxter/adforge/internal/types"
)

// Memory is an in-process cache. Entries never expire; the cache lives as
// long as the process.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]types.GeneratedVariant
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]types.GeneratedVariant)}
}

// Get returns the cached variants for key.
func (m *Memory) Get(_ context.Context, key string) ([]types.GeneratedVariant, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ads, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]types.GeneratedVariant, len(ads))
	copy(out, ads)
	return out, true, nil
}

// Put stores the variants under key.
func (m *Memory) Put(_ context.Context, key string, ads []types.GeneratedVariant) error {
	stored := make([]types.GeneratedVariant, len(ads))
	copy(stored, ads)
	m.mu.Lock()
	m.entries[key] = stored
	m.mu.Unlock()
	return nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
