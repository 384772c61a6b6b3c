package gemini

import (
	"context"
	"sync"
)

// Mock is a mock implementation of the TextGenerator interface for testing.
type Mock struct {
	mu sync.Mutex

	// Spy for method calls
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	// Call records
	GenerateCalls []string
}

var _ TextGenerator = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, prompt)
	fn := m.GenerateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}
	return "generated text", nil
}

// Calls returns a copy of the prompts passed to Generate.
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.GenerateCalls))
	copy(out, m.GenerateCalls)
	return out
}
