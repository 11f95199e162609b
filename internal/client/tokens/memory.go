package tokens

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local Store, used for ephemeral sessions and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	set     bool
	savedAt time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.set = token, true
	m.savedAt = m.now().Truncate(time.Second)
	return nil
}

func (m *MemoryStore) Get(_ context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.set, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.set = "", false
	m.savedAt = time.Time{}
	return nil
}

func (m *MemoryStore) SavedAt(_ context.Context) (time.Time, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.savedAt, m.set, nil
}
