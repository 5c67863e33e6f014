package domain

import "time"

// DateLayout is the calendar-day format used for session dates.
const DateLayout = "2006-01-02"

// WorkoutSet is one logged set. A nil Weight means a bodyweight set. The
// multiplier is only meaningful together with a weight (paired implements,
// e.g. two dumbbells).
type WorkoutSet struct {
	ID         string   `json:"id"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight,omitempty"`
	Multiplier *int     `json:"multiplier,omitempty"`
}

// SessionExercise links a session's logged sets back to the program slot that
// produced them. An entry with zero sets is never persisted; it is deleted
// instead.
type SessionExercise struct {
	SlotID     string       `json:"slotId"`
	ExerciseID string       `json:"exerciseId"`
	Sets       []WorkoutSet `json:"sets"`
}

// WorkoutSession is one day's logged workout. At most one session exists per
// (date, dayNumber) pair; the store enforces this with idempotent
// get-or-create. DayLabel is snapshotted at creation so later program renames
// do not rewrite history.
type WorkoutSession struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	DayNumber   int               `json:"dayNumber"`
	DayLabel    string            `json:"dayLabel"`
	Exercises   []SessionExercise `json:"exercises"`
	Completed   bool              `json:"completed"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
}

// SessionCollection is the durable document of the workouts collection. It
// also tracks the locally selected program day; the remote store has no such
// concept, so pulls preserve it.
type SessionCollection struct {
	Sessions   []WorkoutSession `json:"sessions"`
	CurrentDay int              `json:"currentDay"`
}
