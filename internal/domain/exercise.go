package domain

// MuscleGroup classifies exercises and program slots.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleForearms   MuscleGroup = "forearms"
	MuscleAbs        MuscleGroup = "abs"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleCardio     MuscleGroup = "cardio"
)

// MuscleGroups lists every valid group, in display order.
var MuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps,
	MuscleForearms, MuscleAbs, MuscleQuads, MuscleHamstrings, MuscleGlutes,
	MuscleCalves, MuscleCardio,
}

// Label returns a human readable name, used when a slot has no exercise bound.
func (m MuscleGroup) Label() string {
	switch m {
	case MuscleChest:
		return "Chest"
	case MuscleBack:
		return "Back"
	case MuscleShoulders:
		return "Shoulders"
	case MuscleBiceps:
		return "Biceps"
	case MuscleTriceps:
		return "Triceps"
	case MuscleForearms:
		return "Forearms"
	case MuscleAbs:
		return "Abs"
	case MuscleQuads:
		return "Quads"
	case MuscleHamstrings:
		return "Hamstrings"
	case MuscleGlutes:
		return "Glutes"
	case MuscleCalves:
		return "Calves"
	case MuscleCardio:
		return "Cardio"
	default:
		return string(m)
	}
}

// Valid reports whether m is one of the twelve known groups.
func (m MuscleGroup) Valid() bool {
	for _, g := range MuscleGroups {
		if g == m {
			return true
		}
	}
	return false
}

// WeightType describes the implement an exercise is performed with. It drives
// how logged sets are entered and formatted (bodyweight sets carry no weight,
// paired implements carry a multiplier).
type WeightType string

const (
	WeightBodyweight WeightType = "bodyweight"
	WeightBarbell    WeightType = "barbell"
	WeightDumbbell   WeightType = "dumbbell"
	WeightKettlebell WeightType = "kettlebell"
	WeightMachine    WeightType = "machine"
)

// WeightTypes lists every valid weight type.
var WeightTypes = []WeightType{
	WeightBodyweight, WeightBarbell, WeightDumbbell, WeightKettlebell, WeightMachine,
}

// Valid reports whether w is a known weight type.
func (w WeightType) Valid() bool {
	for _, t := range WeightTypes {
		if t == w {
			return true
		}
	}
	return false
}

// Exercise is a user-owned exercise definition. Program slots and session
// exercises reference it by ID but never own it; deleting an exercise leaves
// dangling references that are resolved to a fallback label on render/export.
type Exercise struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	WeightType  WeightType  `json:"weightType"`
	ImageURL    string      `json:"imageUrl,omitempty"`
}

// DefaultExercises seeds a fresh install. IDs are deterministic so the
// default program blueprint can reference them.
func DefaultExercises() []Exercise {
	return []Exercise{
		{ID: "ex-bench-press", Name: "Bench Press", MuscleGroup: MuscleChest, WeightType: WeightBarbell},
		{ID: "ex-incline-db-press", Name: "Incline Dumbbell Press", MuscleGroup: MuscleChest, WeightType: WeightDumbbell},
		{ID: "ex-overhead-press", Name: "Overhead Press", MuscleGroup: MuscleShoulders, WeightType: WeightBarbell},
		{ID: "ex-lateral-raise", Name: "Lateral Raise", MuscleGroup: MuscleShoulders, WeightType: WeightDumbbell},
		{ID: "ex-triceps-pushdown", Name: "Triceps Pushdown", MuscleGroup: MuscleTriceps, WeightType: WeightMachine},
		{ID: "ex-pull-up", Name: "Pull Up", MuscleGroup: MuscleBack, WeightType: WeightBodyweight},
		{ID: "ex-barbell-row", Name: "Barbell Row", MuscleGroup: MuscleBack, WeightType: WeightBarbell},
		{ID: "ex-biceps-curl", Name: "Biceps Curl", MuscleGroup: MuscleBiceps, WeightType: WeightDumbbell},
		{ID: "ex-hammer-curl", Name: "Hammer Curl", MuscleGroup: MuscleForearms, WeightType: WeightDumbbell},
		{ID: "ex-squat", Name: "Back Squat", MuscleGroup: MuscleQuads, WeightType: WeightBarbell},
		{ID: "ex-romanian-deadlift", Name: "Romanian Deadlift", MuscleGroup: MuscleHamstrings, WeightType: WeightBarbell},
		{ID: "ex-hip-thrust", Name: "Hip Thrust", MuscleGroup: MuscleGlutes, WeightType: WeightBarbell},
		{ID: "ex-calf-raise", Name: "Calf Raise", MuscleGroup: MuscleCalves, WeightType: WeightMachine},
		{ID: "ex-plank", Name: "Plank", MuscleGroup: MuscleAbs, WeightType: WeightBodyweight},
		{ID: "ex-hanging-leg-raise", Name: "Hanging Leg Raise", MuscleGroup: MuscleAbs, WeightType: WeightBodyweight},
	}
}

// ExerciseCollection is the durable document of the exercises collection.
type ExerciseCollection struct {
	Exercises []Exercise `json:"exercises"`
}
