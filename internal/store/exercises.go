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

// ExerciseStore owns the exercises collection. Deleting an exercise does not
// cascade into the program or logged sessions; dangling references are
// resolved to a fallback label at render/export time.
type ExerciseStore struct {
	mu    sync.Mutex
	docs  repository.DocumentStore
	state domain.ExerciseCollection
}

// NewExerciseStore loads the exercises collection, seeding the default
// exercise library on first run.
func NewExerciseStore(ctx context.Context, docs repository.DocumentStore) (*ExerciseStore, error) {
	s := &ExerciseStore{docs: docs}

	doc, err := docs.Load(ctx, repository.CollectionExercises)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("load exercises collection: %w", err)
		}
		s.state = domain.ExerciseCollection{Exercises: domain.DefaultExercises()}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := json.Unmarshal(doc.State, &s.state); err != nil {
		return nil, fmt.Errorf("decode exercises collection: %w", err)
	}
	return s, nil
}

func (s *ExerciseStore) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode exercises collection: %w", err)
	}
	return s.docs.Save(ctx, repository.CollectionExercises, raw)
}

// All returns every exercise.
func (s *ExerciseStore) All() []domain.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Exercise, len(s.state.Exercises))
	copy(out, s.state.Exercises)
	return out
}

// Get returns an exercise by ID.
func (s *ExerciseStore) Get(id string) (domain.Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ex := range s.state.Exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return domain.Exercise{}, false
}

// Create adds a new exercise with a generated ID.
func (s *ExerciseStore) Create(ctx context.Context, name string, group domain.MuscleGroup, weightType domain.WeightType, imageURL string) (domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex := domain.Exercise{
		ID:          domain.NewID(),
		Name:        name,
		MuscleGroup: group,
		WeightType:  weightType,
		ImageURL:    imageURL,
	}
	s.state.Exercises = append(s.state.Exercises, ex)

	if err := s.persist(ctx); err != nil {
		return domain.Exercise{}, err
	}
	return ex, nil
}

// Update replaces the stored exercise with the same ID. Unknown IDs are
// no-ops; the returned bool reports whether anything matched.
func (s *ExerciseStore) Update(ctx context.Context, ex domain.Exercise) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Exercises {
		if s.state.Exercises[i].ID == ex.ID {
			s.state.Exercises[i] = ex
			if err := s.persist(ctx); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes an exercise by ID. Unknown IDs are no-ops.
func (s *ExerciseStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Exercises {
		if s.state.Exercises[i].ID == id {
			s.state.Exercises = append(s.state.Exercises[:i], s.state.Exercises[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}
