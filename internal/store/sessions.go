package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"splitlog/internal/domain"
	"splitlog/internal/repository"
)

// SessionStore owns the workouts collection: the list of logged sessions plus
// the locally selected program day. Every mutation rewrites the whole durable
// document synchronously, so readers never observe a partial write.
//
// Mutations that target a missing session, slot or set ID are no-ops rather
// than errors; the store is total over all ID inputs.
type SessionStore struct {
	mu    sync.Mutex
	docs  repository.DocumentStore
	state domain.SessionCollection
	now   func() time.Time
}

// NewSessionStore loads the workouts collection, starting empty when nothing
// has been persisted yet.
func NewSessionStore(ctx context.Context, docs repository.DocumentStore) (*SessionStore, error) {
	s := &SessionStore{
		docs: docs,
		now:  time.Now,
	}

	doc, err := docs.Load(ctx, repository.CollectionWorkouts)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.state = domain.SessionCollection{CurrentDay: 1}
			return s, nil
		}
		return nil, fmt.Errorf("load workouts collection: %w", err)
	}

	if err := json.Unmarshal(doc.State, &s.state); err != nil {
		return nil, fmt.Errorf("decode workouts collection: %w", err)
	}
	if s.state.CurrentDay < 1 || s.state.CurrentDay > 7 {
		s.state.CurrentDay = 1
	}
	return s, nil
}

func (s *SessionStore) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode workouts collection: %w", err)
	}
	return s.docs.Save(ctx, repository.CollectionWorkouts, raw)
}

// GetOrCreateSession returns the session for (today, dayNumber), creating it
// on first visit. Calling it twice on the same calendar day returns the same
// session; only one session ever exists per (date, dayNumber) pair.
func (s *SessionStore) GetOrCreateSession(ctx context.Context, dayNumber int, dayLabel string) (domain.WorkoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format(domain.DateLayout)
	for _, session := range s.state.Sessions {
		if session.Date == today && session.DayNumber == dayNumber {
			return session, nil
		}
	}

	session := domain.WorkoutSession{
		ID:        domain.NewID(),
		Date:      today,
		DayNumber: dayNumber,
		DayLabel:  dayLabel,
		Exercises: []domain.SessionExercise{},
		Completed: false,
	}
	s.state.Sessions = append(s.state.Sessions, session)

	if err := s.persist(ctx); err != nil {
		return domain.WorkoutSession{}, err
	}
	return session, nil
}

// AddSet appends a logged set to the session's entry for (slotID, exerciseID),
// creating the entry when it does not exist yet. The set ID is generated
// here, never supplied by the caller. A missing session ID is a no-op; the
// returned bool reports whether the set was recorded.
func (s *SessionStore) AddSet(ctx context.Context, sessionID, slotID, exerciseID string, set domain.WorkoutSet) (domain.WorkoutSet, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Sessions {
		if s.state.Sessions[i].ID != sessionID {
			continue
		}

		set.ID = domain.NewID()
		session := &s.state.Sessions[i]

		placed := false
		for j := range session.Exercises {
			if session.Exercises[j].SlotID == slotID && session.Exercises[j].ExerciseID == exerciseID {
				session.Exercises[j].Sets = append(session.Exercises[j].Sets, set)
				placed = true
				break
			}
		}
		if !placed {
			session.Exercises = append(session.Exercises, domain.SessionExercise{
				SlotID:     slotID,
				ExerciseID: exerciseID,
				Sets:       []domain.WorkoutSet{set},
			})
		}

		if err := s.persist(ctx); err != nil {
			return domain.WorkoutSet{}, false, err
		}
		return set, true, nil
	}

	return domain.WorkoutSet{}, false, nil
}

// RemoveSet deletes a set by ID from the session's entry for slotID. When the
// entry's set list becomes empty the entry itself is removed; no empty
// placeholders persist.
func (s *SessionStore) RemoveSet(ctx context.Context, sessionID, slotID, setID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Sessions {
		if s.state.Sessions[i].ID != sessionID {
			continue
		}
		session := &s.state.Sessions[i]

		for j := range session.Exercises {
			if session.Exercises[j].SlotID != slotID {
				continue
			}
			entry := &session.Exercises[j]

			for k := range entry.Sets {
				if entry.Sets[k].ID != setID {
					continue
				}
				entry.Sets = append(entry.Sets[:k], entry.Sets[k+1:]...)
				if len(entry.Sets) == 0 {
					session.Exercises = append(session.Exercises[:j], session.Exercises[j+1:]...)
				}
				return s.persist(ctx)
			}
		}
	}
	return nil
}

// CompleteSession marks the session completed and stamps CompletedAt. The
// store does not gate on "every slot has a set"; callers decide when a
// session counts as done.
func (s *SessionStore) CompleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Sessions {
		if s.state.Sessions[i].ID == sessionID {
			now := s.now().UTC()
			s.state.Sessions[i].Completed = true
			s.state.Sessions[i].CompletedAt = &now
			return s.persist(ctx)
		}
	}
	return nil
}

// UncompleteSession reopens a completed session. Calling it on a session that
// is already incomplete is a harmless no-op.
func (s *SessionStore) UncompleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Sessions {
		if s.state.Sessions[i].ID == sessionID {
			if !s.state.Sessions[i].Completed && s.state.Sessions[i].CompletedAt == nil {
				return nil
			}
			s.state.Sessions[i].Completed = false
			s.state.Sessions[i].CompletedAt = nil
			return s.persist(ctx)
		}
	}
	return nil
}

// Get returns a session by ID.
func (s *SessionStore) Get(sessionID string) (domain.WorkoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, session := range s.state.Sessions {
		if session.ID == sessionID {
			return session, true
		}
	}
	return domain.WorkoutSession{}, false
}

// SessionsByDate returns every session logged on the given calendar day.
func (s *SessionStore) SessionsByDate(date string) []domain.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.WorkoutSession
	for _, session := range s.state.Sessions {
		if session.Date == date {
			out = append(out, session)
		}
	}
	return out
}

// CompletedDates returns the distinct dates that have at least one completed
// session, for calendar rendering.
func (s *SessionStore) CompletedDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	var out []string
	for _, session := range s.state.Sessions {
		if session.Completed && !seen[session.Date] {
			seen[session.Date] = true
			out = append(out, session.Date)
		}
	}
	return out
}

// All returns every logged session.
func (s *SessionStore) All() []domain.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.WorkoutSession, len(s.state.Sessions))
	copy(out, s.state.Sessions)
	return out
}

// DeleteSessions removes the sessions with the given IDs and reports how many
// were actually found.
func (s *SessionStore) DeleteSessions(ctx context.Context, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}

	kept := s.state.Sessions[:0]
	deleted := 0
	for _, session := range s.state.Sessions {
		if drop[session.ID] {
			deleted++
			continue
		}
		kept = append(kept, session)
	}
	if deleted == 0 {
		return 0, nil
	}

	s.state.Sessions = kept
	if err := s.persist(ctx); err != nil {
		return deleted, err
	}
	return deleted, nil
}

// Clear removes every logged session. The current day cursor survives.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Sessions = nil
	return s.persist(ctx)
}

// ReplaceAll swaps in a full session list pulled from the remote store. The
// locally tracked current day cursor is preserved; the remote side has no
// such concept.
func (s *SessionStore) ReplaceAll(ctx context.Context, sessions []domain.WorkoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Sessions = sessions
	return s.persist(ctx)
}

// CurrentDay returns the selected program day (1..7).
func (s *SessionStore) CurrentDay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentDay
}

// SetCurrentDay moves the day cursor. Out-of-range values are ignored.
func (s *SessionStore) SetCurrentDay(ctx context.Context, day int) error {
	if day < 1 || day > 7 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentDay = day
	return s.persist(ctx)
}
