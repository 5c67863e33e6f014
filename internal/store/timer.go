package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"splitlog/internal/domain"
	"splitlog/internal/repository"
)

// TimerStore owns the rest timer configuration, the only durable timer state.
type TimerStore struct {
	mu    sync.Mutex
	docs  repository.DocumentStore
	state domain.TimerConfig
}

// NewTimerStore loads the timer collection, falling back to the default rest
// duration on first run.
func NewTimerStore(ctx context.Context, docs repository.DocumentStore) (*TimerStore, error) {
	s := &TimerStore{docs: docs}

	doc, err := docs.Load(ctx, repository.CollectionTimer)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.state = domain.TimerConfig{DefaultDuration: domain.DefaultTimerDuration}
			return s, nil
		}
		return nil, fmt.Errorf("load timer collection: %w", err)
	}

	if err := json.Unmarshal(doc.State, &s.state); err != nil {
		return nil, fmt.Errorf("decode timer collection: %w", err)
	}
	if s.state.DefaultDuration <= 0 {
		s.state.DefaultDuration = domain.DefaultTimerDuration
	}
	return s, nil
}

// Config returns the current timer configuration.
func (s *TimerStore) Config() domain.TimerConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetDefaultDuration updates the default rest duration in seconds.
func (s *TimerStore) SetDefaultDuration(ctx context.Context, seconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.DefaultDuration = seconds

	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode timer collection: %w", err)
	}
	return s.docs.Save(ctx, repository.CollectionTimer, raw)
}
