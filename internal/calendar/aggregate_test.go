package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chananmeir/homestead-planner/internal/models"
)

var names = map[int64]string{1: "Lettuce", 2: "Tomato"}

func intp(v int) *int { return &v }

func directSeeded(id, plantID int64, variety string, sow, harvest models.Date) models.PlantingEvent {
	return models.PlantingEvent{
		ID:                  id,
		PlantID:             plantID,
		Variety:             variety,
		DirectSeedDate:      &sow,
		ExpectedHarvestDate: harvest,
	}
}

func TestExpandMarkers_GroupsByDatePlantVarietyType(t *testing.T) {
	sow := models.NewDate(2025, 5, 1)
	harvest := models.NewDate(2025, 6, 15)
	events := []models.PlantingEvent{
		directSeeded(1, 1, "Buttercrunch", sow, harvest),
		directSeeded(2, 1, "Buttercrunch", sow, harvest),
		directSeeded(3, 1, "Romaine", sow, harvest),
	}

	markers := ExpandMarkers(events, names, models.NewDate(2025, 1, 1), models.NewDate(2025, 12, 31))

	// Two sow markers (one per variety) and two harvest markers.
	require.Len(t, markers, 4)

	assert.Equal(t, MarkerDirectSeed, markers[0].Type)
	assert.Equal(t, "Buttercrunch", markers[0].Variety)
	assert.Equal(t, 2, markers[0].Count, "same date+plant+variety collapses with a count")
	assert.Len(t, markers[0].Events, 2, "underlying events kept for drill-down")

	assert.Equal(t, MarkerDirectSeed, markers[1].Type)
	assert.Equal(t, "Romaine", markers[1].Variety)
	assert.Equal(t, 1, markers[1].Count)

	assert.Equal(t, MarkerHarvest, markers[2].Type)
	assert.Equal(t, MarkerHarvest, markers[3].Type)
}

func TestExpandMarkers_TransplantEventYieldsThreeMarkers(t *testing.T) {
	seed := models.NewDate(2025, 3, 4)
	transplant := models.NewDate(2025, 5, 27)
	e := models.PlantingEvent{
		ID:                  1,
		PlantID:             2,
		SeedStartDate:       &seed,
		TransplantDate:      &transplant,
		ExpectedHarvestDate: models.NewDate(2025, 8, 10),
	}

	markers := ExpandMarkers([]models.PlantingEvent{e}, names, models.NewDate(2025, 1, 1), models.NewDate(2025, 12, 31))
	require.Len(t, markers, 3)
	assert.Equal(t, MarkerSeedStart, markers[0].Type)
	assert.Equal(t, MarkerTransplant, markers[1].Type)
	assert.Equal(t, MarkerHarvest, markers[2].Type)
	assert.Equal(t, "Tomato", markers[0].PlantName)
}

func TestExpandMarkers_VisibleRangeFiltersMarkers(t *testing.T) {
	e := directSeeded(1, 1, "", models.NewDate(2025, 5, 1), models.NewDate(2025, 6, 15))

	markers := ExpandMarkers([]models.PlantingEvent{e}, names, models.NewDate(2025, 6, 1), models.NewDate(2025, 6, 30))
	require.Len(t, markers, 1, "sow date falls outside the visible range")
	assert.Equal(t, MarkerHarvest, markers[0].Type)
}

func TestExpandMarkers_HarvestPrefersActualDate(t *testing.T) {
	e := directSeeded(1, 1, "", models.NewDate(2025, 5, 1), models.NewDate(2025, 6, 15))
	actual := models.NewDate(2025, 6, 10)
	e.ActualHarvestDate = &actual

	markers := ExpandMarkers([]models.PlantingEvent{e}, names, models.NewDate(2025, 6, 1), models.NewDate(2025, 6, 30))
	require.Len(t, markers, 1)
	assert.Equal(t, "2025-06-10", markers[0].Date.String())
}

func TestExpandMarkers_SortedByDate(t *testing.T) {
	events := []models.PlantingEvent{
		directSeeded(1, 1, "", models.NewDate(2025, 5, 15), models.NewDate(2025, 7, 1)),
		directSeeded(2, 1, "", models.NewDate(2025, 5, 1), models.NewDate(2025, 6, 15)),
	}
	markers := ExpandMarkers(events, names, models.NewDate(2025, 1, 1), models.NewDate(2025, 12, 31))
	require.Len(t, markers, 4)
	for i := 1; i < len(markers); i++ {
		assert.False(t, markers[i].Date.Before(markers[i-1].Date.Time), "markers sorted by date")
	}
}

func TestSummarizeCompletion_AllComplete(t *testing.T) {
	qty := 10
	done := 10
	events := []models.PlantingEvent{
		{ID: 1, Quantity: &qty, QuantityCompleted: &done, Completed: true},
		{ID: 2, Quantity: &qty, QuantityCompleted: &done, Completed: true},
		{ID: 3, Quantity: &qty, QuantityCompleted: &done, Completed: true},
	}
	s := SummarizeCompletion(events)
	assert.Equal(t, 3, s.Completed)
	assert.Equal(t, 0, s.Partial)
	assert.Equal(t, "3/3 complete", s.Summary)
}

func TestSummarizeCompletion_Mixed(t *testing.T) {
	qty := 10
	events := []models.PlantingEvent{
		{ID: 1, Quantity: &qty, QuantityCompleted: intp(10)},
		{ID: 2, Quantity: &qty, QuantityCompleted: intp(4)},
		{ID: 3, Quantity: &qty, QuantityCompleted: intp(0)},
		{ID: 4, Quantity: &qty},
	}
	s := SummarizeCompletion(events)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.Partial)
	assert.Equal(t, "1/4 complete, 1 partial", s.Summary)
}

func TestSummarizeCompletion_NoQuantityUsesFlag(t *testing.T) {
	events := []models.PlantingEvent{
		{ID: 1, Completed: true},
		{ID: 2},
	}
	s := SummarizeCompletion(events)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 0, s.Partial)
	assert.Equal(t, "1/2 complete", s.Summary)
}
