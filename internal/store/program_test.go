package store

import (
	"context"
	"encoding/json"
	"testing"

	"splitlog/internal/domain"
	"splitlog/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestNewProgramStoreSeedsDefaultSplit(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocs()

	s, err := NewProgramStore(ctx, docs)
	require.NoError(t, err)

	days := s.Days()
	require.Len(t, days, 7)
	require.Equal(t, "PUSH", days[0].Label)
	require.Equal(t, "REST", days[3].Label)
	require.Empty(t, days[3].Slots)

	// Seeding persisted the program.
	_, err = docs.Load(ctx, repository.CollectionProgram)
	require.NoError(t, err)
}

func TestBackfillProgramBindsOnlyUnboundMatchingSlots(t *testing.T) {
	userChoice := "ex-incline-db-press"
	days := []domain.ProgramDay{
		{
			DayNumber: 1,
			Label:     "PUSH",
			Slots: []domain.WorkoutSlot{
				// s1/s4 unbound with matching groups, s2 a user edit, s3 a
				// group mismatch at its index.
				{ID: "s1", MuscleGroup: domain.MuscleChest},
				{ID: "s2", MuscleGroup: domain.MuscleChest, ExerciseID: &userChoice},
				{ID: "s3", MuscleGroup: domain.MuscleBack},
				{ID: "s4", MuscleGroup: domain.MuscleTriceps},
			},
		},
		{DayNumber: 4, Label: "REST"},
	}

	changed := BackfillProgram(days, domain.DefaultBlueprint)
	require.True(t, changed)

	require.NotNil(t, days[0].Slots[0].ExerciseID)
	require.Equal(t, "ex-bench-press", *days[0].Slots[0].ExerciseID)

	require.Equal(t, userChoice, *days[0].Slots[1].ExerciseID)
	require.Nil(t, days[0].Slots[2].ExerciseID)

	require.NotNil(t, days[0].Slots[3].ExerciseID)
	require.Equal(t, "ex-triceps-pushdown", *days[0].Slots[3].ExerciseID)

	// Second run changes nothing.
	require.False(t, BackfillProgram(days, domain.DefaultBlueprint))
}

func TestBackfillProgramIgnoresExtraSlots(t *testing.T) {
	days := []domain.ProgramDay{
		{
			DayNumber: 2,
			Slots: []domain.WorkoutSlot{
				{ID: "s1", MuscleGroup: domain.MuscleBack},
				{ID: "s2", MuscleGroup: domain.MuscleBack},
				{ID: "s3", MuscleGroup: domain.MuscleBiceps},
				{ID: "s4", MuscleGroup: domain.MuscleForearms},
				{ID: "s5", MuscleGroup: domain.MuscleCardio}, // beyond the blueprint
			},
		},
	}

	require.True(t, BackfillProgram(days, domain.DefaultBlueprint))
	require.Nil(t, days[0].Slots[4].ExerciseID)
}

func TestNewProgramStoreBackfillsPersistedLegacyProgram(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocs()

	legacy := domain.ProgramCollection{
		Days: []domain.ProgramDay{
			{
				DayNumber: 1,
				Label:     "PUSH",
				Slots: []domain.WorkoutSlot{
					{ID: "s1", MuscleGroup: domain.MuscleChest},
				},
			},
		},
	}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, docs.Save(ctx, repository.CollectionProgram, raw))

	saves := docs.saveCount()
	s, err := NewProgramStore(ctx, docs)
	require.NoError(t, err)

	day, ok := s.Day(1)
	require.True(t, ok)
	require.NotNil(t, day.Slots[0].ExerciseID)
	require.Equal(t, "ex-bench-press", *day.Slots[0].ExerciseID)
	require.Equal(t, saves+1, docs.saveCount())

	// Reloading an already repaired program does not write again.
	saves = docs.saveCount()
	_, err = NewProgramStore(ctx, docs)
	require.NoError(t, err)
	require.Equal(t, saves, docs.saveCount())
}

func TestAssignAddRemoveSlot(t *testing.T) {
	ctx := context.Background()
	s, err := NewProgramStore(ctx, newMemDocs())
	require.NoError(t, err)

	slot, err := s.AddSlot(ctx, 4, domain.MuscleCardio)
	require.NoError(t, err)
	require.NotEmpty(t, slot.ID)
	require.Nil(t, slot.ExerciseID)

	found, ok := s.FindSlot(slot.ID)
	require.True(t, ok)
	require.Equal(t, domain.MuscleCardio, found.MuscleGroup)

	exerciseID := "ex-squat"
	require.NoError(t, s.AssignSlot(ctx, 4, slot.ID, &exerciseID))
	found, _ = s.FindSlot(slot.ID)
	require.Equal(t, "ex-squat", *found.ExerciseID)

	require.NoError(t, s.AssignSlot(ctx, 4, slot.ID, nil))
	found, _ = s.FindSlot(slot.ID)
	require.Nil(t, found.ExerciseID)

	require.NoError(t, s.RemoveSlot(ctx, 4, slot.ID))
	_, ok = s.FindSlot(slot.ID)
	require.False(t, ok)

	// Missing day or slot IDs are no-ops.
	require.NoError(t, s.AssignSlot(ctx, 9, "nope", &exerciseID))
	require.NoError(t, s.RemoveSlot(ctx, 4, "nope"))
}

func TestSetDayLabel(t *testing.T) {
	ctx := context.Background()
	s, err := NewProgramStore(ctx, newMemDocs())
	require.NoError(t, err)

	require.NoError(t, s.SetDayLabel(ctx, 1, "CHEST DAY"))
	day, ok := s.Day(1)
	require.True(t, ok)
	require.Equal(t, "CHEST DAY", day.Label)
}
