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

// ProgramStore owns the 7-day program collection. Persisted programs that
// predate exercise bindings are repaired against the default blueprint on
// every load (see BackfillProgram).
type ProgramStore struct {
	mu    sync.Mutex
	docs  repository.DocumentStore
	state domain.ProgramCollection
}

// NewProgramStore loads the program collection, seeding the default split on
// first run and backfilling legacy slot bindings on every load.
func NewProgramStore(ctx context.Context, docs repository.DocumentStore) (*ProgramStore, error) {
	s := &ProgramStore{docs: docs}

	doc, err := docs.Load(ctx, repository.CollectionProgram)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("load program collection: %w", err)
		}
		s.state = domain.ProgramCollection{Days: domain.DefaultProgram()}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := json.Unmarshal(doc.State, &s.state); err != nil {
		return nil, fmt.Errorf("decode program collection: %w", err)
	}

	if BackfillProgram(s.state.Days, domain.DefaultBlueprint) {
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// BackfillProgram repairs days whose slots are missing exercise bindings,
// using the default blueprint, without overwriting user edits. For each day
// with a blueprint entry, slot i gets the blueprint's exercise when the slot
// is unbound and the muscle groups match at that index. Idempotent: a second
// run changes nothing. Returns whether any slot was modified.
func BackfillProgram(days []domain.ProgramDay, blueprint map[int][]domain.BlueprintEntry) bool {
	changed := false
	for i := range days {
		entries := blueprint[days[i].DayNumber]
		if len(entries) == 0 {
			continue
		}
		for j := range days[i].Slots {
			slot := &days[i].Slots[j]
			if slot.ExerciseID != nil {
				continue
			}
			if j >= len(entries) {
				continue
			}
			if entries[j].MuscleGroup != slot.MuscleGroup {
				continue
			}
			exerciseID := entries[j].ExerciseID
			slot.ExerciseID = &exerciseID
			changed = true
		}
	}
	return changed
}

func (s *ProgramStore) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode program collection: %w", err)
	}
	return s.docs.Save(ctx, repository.CollectionProgram, raw)
}

// Days returns the full 7-day program.
func (s *ProgramStore) Days() []domain.ProgramDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ProgramDay, len(s.state.Days))
	copy(out, s.state.Days)
	return out
}

// Day returns one program day by number.
func (s *ProgramStore) Day(dayNumber int) (domain.ProgramDay, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, day := range s.state.Days {
		if day.DayNumber == dayNumber {
			return day, true
		}
	}
	return domain.ProgramDay{}, false
}

// FindSlot locates a slot by ID anywhere in the program. Used by the export
// formatter to resolve a session exercise back to its program slot.
func (s *ProgramStore) FindSlot(slotID string) (domain.WorkoutSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, day := range s.state.Days {
		for _, slot := range day.Slots {
			if slot.ID == slotID {
				return slot, true
			}
		}
	}
	return domain.WorkoutSlot{}, false
}

// AssignSlot binds (or with nil unbinds) an exercise to a slot. Missing day
// or slot IDs are no-ops.
func (s *ProgramStore) AssignSlot(ctx context.Context, dayNumber int, slotID string, exerciseID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Days {
		if s.state.Days[i].DayNumber != dayNumber {
			continue
		}
		for j := range s.state.Days[i].Slots {
			if s.state.Days[i].Slots[j].ID == slotID {
				s.state.Days[i].Slots[j].ExerciseID = exerciseID
				return s.persist(ctx)
			}
		}
	}
	return nil
}

// AddSlot appends a new unbound slot to a day.
func (s *ProgramStore) AddSlot(ctx context.Context, dayNumber int, group domain.MuscleGroup) (domain.WorkoutSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Days {
		if s.state.Days[i].DayNumber != dayNumber {
			continue
		}
		slot := domain.WorkoutSlot{
			ID:          domain.NewID(),
			MuscleGroup: group,
			ExerciseID:  nil,
		}
		s.state.Days[i].Slots = append(s.state.Days[i].Slots, slot)
		if err := s.persist(ctx); err != nil {
			return domain.WorkoutSlot{}, err
		}
		return slot, nil
	}
	return domain.WorkoutSlot{}, nil
}

// RemoveSlot deletes a slot from a day. Sessions that already logged sets
// against the slot keep them; dangling slot references are tolerated.
func (s *ProgramStore) RemoveSlot(ctx context.Context, dayNumber int, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Days {
		if s.state.Days[i].DayNumber != dayNumber {
			continue
		}
		slots := s.state.Days[i].Slots
		for j := range slots {
			if slots[j].ID == slotID {
				s.state.Days[i].Slots = append(slots[:j], slots[j+1:]...)
				return s.persist(ctx)
			}
		}
	}
	return nil
}

// SetDayLabel renames a program day. Session snapshots keep the label that
// was current when they were created.
func (s *ProgramStore) SetDayLabel(ctx context.Context, dayNumber int, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Days {
		if s.state.Days[i].DayNumber == dayNumber {
			s.state.Days[i].Label = label
			return s.persist(ctx)
		}
	}
	return nil
}
