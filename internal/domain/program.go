package domain

// WorkoutSlot is a position within a day's program. It always requires a
// muscle group; ExerciseID may be nil, meaning "unassigned — display by
// muscle group only".
type WorkoutSlot struct {
	ID          string      `json:"id"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	ExerciseID  *string     `json:"exerciseId"`
}

// ProgramDay is one day of the fixed 7-day split. REST days carry no slots.
type ProgramDay struct {
	DayNumber int           `json:"dayNumber"`
	Label     string        `json:"label"`
	Slots     []WorkoutSlot `json:"slots"`
}

// ProgramCollection is the durable document of the program collection.
// Invariant: DayNumber values are exactly 1..7, each appearing once.
type ProgramCollection struct {
	Days []ProgramDay `json:"days"`
}

// BlueprintEntry pairs a slot's muscle group with the default exercise bound
// to it, positionally aligned with the day's slot list.
type BlueprintEntry struct {
	MuscleGroup MuscleGroup
	ExerciseID  string
}

// DefaultBlueprint maps day number to the default slot assignments. It is the
// reference table the program backfill uses to repair persisted programs that
// predate exercise bindings. Days absent here (REST days) are left untouched.
var DefaultBlueprint = map[int][]BlueprintEntry{
	1: {
		{MuscleChest, "ex-bench-press"},
		{MuscleChest, "ex-incline-db-press"},
		{MuscleShoulders, "ex-overhead-press"},
		{MuscleTriceps, "ex-triceps-pushdown"},
	},
	2: {
		{MuscleBack, "ex-pull-up"},
		{MuscleBack, "ex-barbell-row"},
		{MuscleBiceps, "ex-biceps-curl"},
		{MuscleForearms, "ex-hammer-curl"},
	},
	3: {
		{MuscleQuads, "ex-squat"},
		{MuscleHamstrings, "ex-romanian-deadlift"},
		{MuscleGlutes, "ex-hip-thrust"},
		{MuscleCalves, "ex-calf-raise"},
	},
	5: {
		{MuscleChest, "ex-bench-press"},
		{MuscleShoulders, "ex-lateral-raise"},
		{MuscleBack, "ex-barbell-row"},
		{MuscleBiceps, "ex-biceps-curl"},
	},
	6: {
		{MuscleQuads, "ex-squat"},
		{MuscleGlutes, "ex-hip-thrust"},
		{MuscleAbs, "ex-plank"},
		{MuscleAbs, "ex-hanging-leg-raise"},
	},
}

// DefaultProgram builds the initial 7-day split for a fresh install: five
// training days generated from the blueprint plus two REST days.
func DefaultProgram() []ProgramDay {
	labels := map[int]string{
		1: "PUSH",
		2: "PULL",
		3: "LEGS",
		4: "REST",
		5: "UPPER",
		6: "LOWER",
		7: "REST",
	}

	days := make([]ProgramDay, 0, 7)
	for dayNumber := 1; dayNumber <= 7; dayNumber++ {
		day := ProgramDay{DayNumber: dayNumber, Label: labels[dayNumber]}
		for _, entry := range DefaultBlueprint[dayNumber] {
			exerciseID := entry.ExerciseID
			day.Slots = append(day.Slots, WorkoutSlot{
				ID:          NewID(),
				MuscleGroup: entry.MuscleGroup,
				ExerciseID:  &exerciseID,
			})
		}
		days = append(days, day)
	}
	return days
}
