package player

import "sync"

// MockStore is a mock implementation of the PlayerStore interface for testing.
// Without spies it behaves like an in-memory store that keeps insertion order.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	players []Player

	// Spies for method calls
	UpsertFunc       func(p Player) error
	FindAllFunc      func() ([]Player, error)
	FindByNameFunc   func(name string) (*Player, error)
	DeleteByNameFunc func(name string) error

	// Call records
	UpsertCalls       []Player
	FindAllCalls      int
	FindByNameCalls   []string
	DeleteByNameCalls []string
}

var _ PlayerStore = (*MockStore)(nil)

// NewMock creates a new mock instance seeded with players.
func NewMock(players ...Player) *MockStore {
	m := &MockStore{}
	for _, p := range players {
		m.put(p)
	}
	return m
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls = nil
	m.FindAllCalls = 0
	m.FindByNameCalls = nil
	m.DeleteByNameCalls = nil
}

func (m *MockStore) put(p Player) {
	for i := range m.players {
		if m.players[i].Name == p.Name {
			m.players[i] = p
			return
		}
	}
	m.players = append(m.players, p)
}

func (m *MockStore) Upsert(p Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls = append(m.UpsertCalls, p)
	if m.UpsertFunc != nil {
		if err := m.UpsertFunc(p); err != nil {
			return err
		}
	}
	m.put(p)
	return nil
}

func (m *MockStore) FindAll() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindAllCalls++
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	out := make([]Player, len(m.players))
	copy(out, m.players)
	return out, nil
}

func (m *MockStore) FindByName(name string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindByNameCalls = append(m.FindByNameCalls, name)
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(name)
	}
	for _, p := range m.players {
		if p.Name == name {
			found := p
			return &found, nil
		}
	}
	return nil, &NotFoundError{Name: name}
}

func (m *MockStore) DeleteByName(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteByNameCalls = append(m.DeleteByNameCalls, name)
	if m.DeleteByNameFunc != nil {
		return m.DeleteByNameFunc(name)
	}
	for i, p := range m.players {
		if p.Name == name {
			m.players = append(m.players[:i], m.players[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockStore) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.players), nil
}

func (m *MockStore) Ping() error {
	return nil
}
