package store

import (
	"context"
	"encoding/json"
	"sync"

	"splitlog/internal/repository"
)

// memDocs is an in-memory DocumentStore used across the store tests.
type memDocs struct {
	mu    sync.Mutex
	data  map[string]json.RawMessage
	saves int
}

func newMemDocs() *memDocs {
	return &memDocs{data: map[string]json.RawMessage{}}
}

func (m *memDocs) Load(_ context.Context, name string) (*repository.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.data[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &repository.Document{Name: name, State: state}, nil
}

func (m *memDocs) Save(_ context.Context, name string, state json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[name] = append(json.RawMessage(nil), state...)
	m.saves++
	return nil
}

func (m *memDocs) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
