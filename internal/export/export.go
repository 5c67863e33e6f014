// Package export maps the session/program/exercise model to its two external
// surfaces: a compact human-readable text summary and a structured JSON
// backup document.
package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"splitlog/internal/domain"
)

// ExerciseSource resolves exercise IDs; implemented by the exercise store.
type ExerciseSource interface {
	Get(id string) (domain.Exercise, bool)
}

// ProgramSource resolves program slots; implemented by the program store.
type ProgramSource interface {
	FindSlot(slotID string) (domain.WorkoutSlot, bool)
}

// Formatter renders sessions as text.
type Formatter struct {
	exercises ExerciseSource
	program   ProgramSource
}

// NewFormatter creates a text formatter over the given lookup sources.
func NewFormatter(exercises ExerciseSource, program ProgramSource) *Formatter {
	return &Formatter{exercises: exercises, program: program}
}

// FormatSet renders one logged set:
//
//	no weight               -> "12"
//	weight, no multiplier   -> "15 - 80"
//	weight with multiplier  -> "12 - 2*65"
func FormatSet(set domain.WorkoutSet) string {
	if set.Weight == nil {
		return strconv.Itoa(set.Reps)
	}
	weight := strconv.FormatFloat(*set.Weight, 'f', -1, 64)
	if set.Multiplier != nil && *set.Multiplier > 1 {
		return fmt.Sprintf("%d - %d*%s", set.Reps, *set.Multiplier, weight)
	}
	return fmt.Sprintf("%d - %s", set.Reps, weight)
}

// FormatSession renders one session as a day header followed by one block per
// logged exercise.
func (f *Formatter) FormatSession(session domain.WorkoutSession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "D%d %s\n", session.DayNumber, session.DayLabel)

	for _, entry := range session.Exercises {
		b.WriteString("\n")
		b.WriteString(f.exerciseLabel(entry))
		b.WriteString("\n")
		for _, set := range entry.Sets {
			b.WriteString(FormatSet(set))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatSessions renders a batch oldest-first, separated by "---" dividers.
func (f *Formatter) FormatSessions(sessions []domain.WorkoutSession) string {
	sorted := make([]domain.WorkoutSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	parts := make([]string, 0, len(sorted))
	for _, session := range sorted {
		parts = append(parts, f.FormatSession(session))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// exerciseLabel resolves the display label for a logged entry. Resolution
// order: the exercise bound to the session's slot in the current program, the
// exercise referenced directly by the entry, the slot's muscle group label,
// then "Unknown". Dangling IDs are expected here, not an error.
func (f *Formatter) exerciseLabel(entry domain.SessionExercise) string {
	slot, slotFound := f.program.FindSlot(entry.SlotID)
	if slotFound && slot.ExerciseID != nil {
		if ex, ok := f.exercises.Get(*slot.ExerciseID); ok {
			return ex.Name
		}
	}
	if ex, ok := f.exercises.Get(entry.ExerciseID); ok {
		return ex.Name
	}
	if slotFound {
		return slot.MuscleGroup.Label()
	}
	return "Unknown"
}
