package scheduler

import (
	"context"
	"sync"
	"time"
)

// Store remembers the last period each job ran for.
type Store interface {
	LastRun(ctx context.Context, job string) (string, error)
	SaveRun(ctx context.Context, job, periodKey string, at time.Time) error
}

type MemoryStore struct {
	mu   sync.Mutex
	runs map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]string)}
}

func (m *MemoryStore) LastRun(_ context.Context, job string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs[job], nil
}

func (m *MemoryStore) SaveRun(_ context.Context, job, periodKey string, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[job] = periodKey
	return nil
}
