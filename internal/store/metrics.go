package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"splitlog/internal/domain"
	"splitlog/internal/repository"
)

// MetricStore owns the body metrics collection. Metrics are immutable once
// created; the only mutations are add, delete and clear. The "weight or
// belly size present" rule is the caller's job, not the store's.
type MetricStore struct {
	mu    sync.Mutex
	docs  repository.DocumentStore
	state domain.MetricCollection
}

// NewMetricStore loads the metrics collection, starting empty on first run.
func NewMetricStore(ctx context.Context, docs repository.DocumentStore) (*MetricStore, error) {
	s := &MetricStore{docs: docs}

	doc, err := docs.Load(ctx, repository.CollectionMetrics)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("load metrics collection: %w", err)
	}

	if err := json.Unmarshal(doc.State, &s.state); err != nil {
		return nil, fmt.Errorf("decode metrics collection: %w", err)
	}
	return s, nil
}

func (s *MetricStore) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode metrics collection: %w", err)
	}
	return s.docs.Save(ctx, repository.CollectionMetrics, raw)
}

// All returns every metric, oldest first.
func (s *MetricStore) All() []domain.BodyMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.BodyMetric, len(s.state.Metrics))
	copy(out, s.state.Metrics)
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.Before(out[j].RecordedAt)
	})
	return out
}

// Add records a new metric with a generated ID.
func (s *MetricStore) Add(ctx context.Context, recordedAt time.Time, weight, bellySize *float64) (domain.BodyMetric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	metric := domain.BodyMetric{
		ID:         domain.NewID(),
		RecordedAt: recordedAt.UTC(),
		Weight:     weight,
		BellySize:  bellySize,
	}
	s.state.Metrics = append(s.state.Metrics, metric)

	if err := s.persist(ctx); err != nil {
		return domain.BodyMetric{}, err
	}
	return metric, nil
}

// Delete removes a metric by ID. Unknown IDs are no-ops.
func (s *MetricStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Metrics {
		if s.state.Metrics[i].ID == id {
			s.state.Metrics = append(s.state.Metrics[:i], s.state.Metrics[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear removes every metric.
func (s *MetricStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Metrics = nil
	return s.persist(ctx)
}
