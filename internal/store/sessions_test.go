package store

import (
	"context"
	"testing"
	"time"

	"splitlog/internal/domain"

	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T, docs *memDocs) *SessionStore {
	t.Helper()

	s, err := NewSessionStore(context.Background(), docs)
	require.NoError(t, err)
	s.now = func() time.Time {
		return time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	}
	return s
}

func TestGetOrCreateSessionIdempotentPerDay(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionStore(t, newMemDocs())

	first, err := s.GetOrCreateSession(ctx, 1, "PUSH")
	require.NoError(t, err)
	require.Equal(t, "2026-03-14", first.Date)
	require.Equal(t, 1, first.DayNumber)
	require.Equal(t, "PUSH", first.DayLabel)
	require.False(t, first.Completed)

	second, err := s.GetOrCreateSession(ctx, 1, "renamed later")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "PUSH", second.DayLabel)
	require.Len(t, s.All(), 1)

	// A different program day on the same date is its own session.
	other, err := s.GetOrCreateSession(ctx, 2, "PULL")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, other.ID)
	require.Len(t, s.All(), 2)
}

func TestAddSetGroupsBySlotAndGeneratesIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionStore(t, newMemDocs())

	session, err := s.GetOrCreateSession(ctx, 1, "PUSH")
	require.NoError(t, err)

	first, ok, err := s.AddSet(ctx, session.ID, "slot-a", "ex-bench-press", domain.WorkoutSet{Reps: 10})
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, first.ID)

	second, ok, err := s.AddSet(ctx, session.ID, "slot-a", "ex-bench-press", domain.WorkoutSet{Reps: 8})
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEqual(t, first.ID, second.ID)

	_, ok, err = s.AddSet(ctx, session.ID, "slot-b", "ex-overhead-press", domain.WorkoutSet{Reps: 12})
	require.NoError(t, err)
	require.True(t, ok)

	got, found := s.Get(session.ID)
	require.True(t, found)
	require.Len(t, got.Exercises, 2)
	require.Len(t, got.Exercises[0].Sets, 2)
	require.Len(t, got.Exercises[1].Sets, 1)
}

func TestAddSetUnknownSessionIsNoOp(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocs()
	s := newTestSessionStore(t, docs)

	before := docs.saveCount()
	_, ok, err := s.AddSet(ctx, "nope", "slot-a", "ex-bench-press", domain.WorkoutSet{Reps: 10})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, before, docs.saveCount())
}

func TestRemoveSetDropsEmptyEntry(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionStore(t, newMemDocs())

	session, err := s.GetOrCreateSession(ctx, 1, "PUSH")
	require.NoError(t, err)

	one, _, err := s.AddSet(ctx, session.ID, "slot-a", "ex-bench-press", domain.WorkoutSet{Reps: 10})
	require.NoError(t, err)
	two, _, err := s.AddSet(ctx, session.ID, "slot-a", "ex-bench-press", domain.WorkoutSet{Reps: 8})
	require.NoError(t, err)

	require.NoError(t, s.RemoveSet(ctx, session.ID, "slot-a", one.ID))
	got, _ := s.Get(session.ID)
	require.Len(t, got.Exercises, 1)
	require.Len(t, got.Exercises[0].Sets, 1)

	require.NoError(t, s.RemoveSet(ctx, session.ID, "slot-a", two.ID))
	got, _ = s.Get(session.ID)
	require.Empty(t, got.Exercises)

	// Removing an already removed set changes nothing.
	require.NoError(t, s.RemoveSet(ctx, session.ID, "slot-a", two.ID))
}

func TestCompleteAndUncompleteSession(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionStore(t, newMemDocs())

	session, err := s.GetOrCreateSession(ctx, 3, "LEGS")
	require.NoError(t, err)

	require.NoError(t, s.CompleteSession(ctx, session.ID))
	got, _ := s.Get(session.ID)
	require.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	require.Equal(t, []string{"2026-03-14"}, s.CompletedDates())

	require.NoError(t, s.UncompleteSession(ctx, session.ID))
	got, _ = s.Get(session.ID)
	require.False(t, got.Completed)
	require.Nil(t, got.CompletedAt)
	require.Empty(t, s.CompletedDates())

	// Second uncomplete is a no-op.
	require.NoError(t, s.UncompleteSession(ctx, session.ID))
}

func TestDeleteSessionsReportsFoundCount(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionStore(t, newMemDocs())

	a, err := s.GetOrCreateSession(ctx, 1, "PUSH")
	require.NoError(t, err)
	b, err := s.GetOrCreateSession(ctx, 2, "PULL")
	require.NoError(t, err)

	deleted, err := s.DeleteSessions(ctx, []string{a.ID, "missing"})
	require.NoError(t, err)
	require.Equal(t, 1, deleted)

	_, found := s.Get(a.ID)
	require.False(t, found)
	_, found = s.Get(b.ID)
	require.True(t, found)

	deleted, err = s.DeleteSessions(ctx, []string{"still-missing"})
	require.NoError(t, err)
	require.Zero(t, deleted)
}

func TestCurrentDayCursor(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocs()
	s := newTestSessionStore(t, docs)

	require.Equal(t, 1, s.CurrentDay())

	require.NoError(t, s.SetCurrentDay(ctx, 5))
	require.Equal(t, 5, s.CurrentDay())

	// Out-of-range values are ignored.
	require.NoError(t, s.SetCurrentDay(ctx, 0))
	require.NoError(t, s.SetCurrentDay(ctx, 8))
	require.Equal(t, 5, s.CurrentDay())

	// Cursor survives Clear and a reload from durable storage.
	require.NoError(t, s.Clear(ctx))
	require.Equal(t, 5, s.CurrentDay())

	reloaded, err := NewSessionStore(ctx, docs)
	require.NoError(t, err)
	require.Equal(t, 5, reloaded.CurrentDay())
	require.Empty(t, reloaded.All())
}

func TestSessionsByDate(t *testing.T) {
	ctx := context.Background()
	s := newTestSessionStore(t, newMemDocs())

	a, err := s.GetOrCreateSession(ctx, 1, "PUSH")
	require.NoError(t, err)
	_, err = s.GetOrCreateSession(ctx, 2, "PULL")
	require.NoError(t, err)

	byDate := s.SessionsByDate(a.Date)
	require.Len(t, byDate, 2)
	require.Empty(t, s.SessionsByDate("1999-01-01"))
}
