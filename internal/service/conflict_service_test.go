package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chananmeir/homestead-planner/internal/apperr"
	"github.com/chananmeir/homestead-planner/internal/models"
)

func TestConflictService_UnknownBedFailsOpen(t *testing.T) {
	f := newFixture(t)

	result, err := f.conflict.Check(models.ConflictCheckQuery{
		GardenBedID: 9999,
		PositionX:   intp(1),
		PositionY:   intp(1),
		ActiveStart: "2025-05-01",
		ActiveEnd:   "2025-06-20",
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
	assert.Empty(t, result.Conflicts)
}

func TestConflictService_ReportsSameCellOverlap(t *testing.T) {
	f := newFixture(t)
	lettuce := f.plant(t, "Lettuce", "salad_greens", 4, 50, 6)
	bed := f.bed(t, "North Bed", 48, 96)

	existing, _, err := f.events.Create(models.CreateEventRequest{
		PlantID:     lettuce.ID,
		GardenBedID: &bed.ID,
		Method:      models.MethodDirectSeed,
		AnchorDate:  "2025-05-01",
		PositionX:   intp(2),
		PositionY:   intp(3),
	})
	require.NoError(t, err)

	result, err := f.conflict.Check(models.ConflictCheckQuery{
		GardenBedID: bed.ID,
		PositionX:   intp(2),
		PositionY:   intp(3),
		ActiveStart: "2025-06-01",
		ActiveEnd:   "2025-07-15",
	})
	require.NoError(t, err)
	require.True(t, result.HasConflict)
	require.Len(t, result.Conflicts, 1)
	c := result.Conflicts[0]
	assert.Equal(t, existing.ID, c.EventID)
	assert.Equal(t, "Lettuce", c.PlantName)
	assert.Equal(t, models.ConflictBoth, c.Type)
	assert.Equal(t, "2025-05-01 to 2025-06-20", c.DateRange)

	// Different cell, same window: nothing to report.
	result, err = f.conflict.Check(models.ConflictCheckQuery{
		GardenBedID: bed.ID,
		PositionX:   intp(0),
		PositionY:   intp(0),
		ActiveStart: "2025-06-01",
		ActiveEnd:   "2025-07-15",
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict)

	// Same cell, window fully after the harvest: nothing to report.
	result, err = f.conflict.Check(models.ConflictCheckQuery{
		GardenBedID: bed.ID,
		PositionX:   intp(2),
		PositionY:   intp(3),
		ActiveStart: "2025-06-21",
		ActiveEnd:   "2025-08-01",
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestConflictService_ExcludeSkipsTheEventBeingEdited(t *testing.T) {
	f := newFixture(t)
	lettuce := f.plant(t, "Lettuce", "salad_greens", 4, 50, 6)
	bed := f.bed(t, "North Bed", 48, 96)

	existing, _, err := f.events.Create(models.CreateEventRequest{
		PlantID:     lettuce.ID,
		GardenBedID: &bed.ID,
		Method:      models.MethodDirectSeed,
		AnchorDate:  "2025-05-01",
		PositionX:   intp(2),
		PositionY:   intp(3),
	})
	require.NoError(t, err)

	result, err := f.conflict.Check(models.ConflictCheckQuery{
		GardenBedID:    bed.ID,
		PositionX:      intp(2),
		PositionY:      intp(3),
		ActiveStart:    "2025-05-01",
		ActiveEnd:      "2025-06-20",
		ExcludeEventID: existing.ID,
	})
	require.NoError(t, err)
	assert.False(t, result.HasConflict, "an event never conflicts with itself")
}

func TestConflictService_UnpositionedNeighborIsTemporal(t *testing.T) {
	f := newFixture(t)
	lettuce := f.plant(t, "Lettuce", "salad_greens", 4, 50, 6)
	bed := f.bed(t, "North Bed", 48, 96)

	_, _, err := f.events.Create(models.CreateEventRequest{
		PlantID:     lettuce.ID,
		GardenBedID: &bed.ID,
		Method:      models.MethodDirectSeed,
		AnchorDate:  "2025-05-01",
	})
	require.NoError(t, err)

	result, err := f.conflict.Check(models.ConflictCheckQuery{
		GardenBedID: bed.ID,
		PositionX:   intp(1),
		PositionY:   intp(1),
		ActiveStart: "2025-06-01",
		ActiveEnd:   "2025-07-15",
	})
	require.NoError(t, err)
	require.True(t, result.HasConflict)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, models.ConflictTemporal, result.Conflicts[0].Type)
}

func TestConflictService_RejectsMalformedQueries(t *testing.T) {
	f := newFixture(t)
	bed := f.bed(t, "North Bed", 48, 96)

	cases := []struct {
		name  string
		query models.ConflictCheckQuery
	}{
		{"bad start date", models.ConflictCheckQuery{GardenBedID: bed.ID, ActiveStart: "05/01/2025", ActiveEnd: "2025-06-20"}},
		{"bad end date", models.ConflictCheckQuery{GardenBedID: bed.ID, ActiveStart: "2025-05-01", ActiveEnd: "not-a-date"}},
		{"inverted window", models.ConflictCheckQuery{GardenBedID: bed.ID, ActiveStart: "2025-06-20", ActiveEnd: "2025-05-01"}},
		{"half a position", models.ConflictCheckQuery{GardenBedID: bed.ID, ActiveStart: "2025-05-01", ActiveEnd: "2025-06-20", PositionX: intp(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.conflict.Check(tc.query)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		})
	}
}
