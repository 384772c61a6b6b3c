package cache

import (
	"context"
	"sync"
)

// Mock is an in-memory implementation of the SummaryCache interface for testing.
type Mock struct {
	mu      sync.Mutex
	entries map[string]string

	// Spies for method calls
	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, text string) error

	// Call records
	GetCalls []string
	SetCalls []string
}

var _ SummaryCache = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{entries: make(map[string]string)}
}

func (m *Mock) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, key)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	text, ok := m.entries[key]
	return text, ok, nil
}

func (m *Mock) Set(ctx context.Context, key, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, key)
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, text)
	}
	m.entries[key] = text
	return nil
}
