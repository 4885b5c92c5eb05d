package session

import (
	"sync"

	"github.com/edimundos/todo-interface/internal/core/ports"
)

// Memory is a throwaway in-process store, used in tests and anywhere a
// persisted session is unwanted.
type Memory struct {
	mu    sync.Mutex
	token string
	set   bool
}

var _ ports.SessionStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

func (m *Memory) Token() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.set, nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
