package store

import (
	"context"
	"testing"

	"splitlog/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestNewExerciseStoreSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocs()

	s, err := NewExerciseStore(ctx, docs)
	require.NoError(t, err)
	require.Len(t, s.All(), len(domain.DefaultExercises()))

	bench, ok := s.Get("ex-bench-press")
	require.True(t, ok)
	require.Equal(t, "Bench Press", bench.Name)

	// A reload keeps the persisted library instead of reseeding.
	require.NoError(t, s.Delete(ctx, "ex-bench-press"))
	reloaded, err := NewExerciseStore(ctx, docs)
	require.NoError(t, err)
	_, ok = reloaded.Get("ex-bench-press")
	require.False(t, ok)
}

func TestExerciseCRUD(t *testing.T) {
	ctx := context.Background()
	s, err := NewExerciseStore(ctx, newMemDocs())
	require.NoError(t, err)

	created, err := s.Create(ctx, "Face Pull", domain.MuscleShoulders, domain.WeightMachine, "")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.Name = "Cable Face Pull"
	updated, err := s.Update(ctx, created)
	require.NoError(t, err)
	require.True(t, updated)

	got, ok := s.Get(created.ID)
	require.True(t, ok)
	require.Equal(t, "Cable Face Pull", got.Name)

	updated, err = s.Update(ctx, domain.Exercise{ID: "missing", Name: "x"})
	require.NoError(t, err)
	require.False(t, updated)

	require.NoError(t, s.Delete(ctx, created.ID))
	_, ok = s.Get(created.ID)
	require.False(t, ok)
	require.NoError(t, s.Delete(ctx, created.ID))
}
