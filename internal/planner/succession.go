package planner

import (
	"github.com/google/uuid"

	"github.com/chananmeir/homestead-planner/internal/apperr"
	"github.com/chananmeir/homestead-planner/internal/models"
)

// Succession series bounds
const (
	MinIntervalDays = 1
	MaxIntervalDays = 60
	MinSeriesCount  = 2
	MaxSeriesCount  = 20
)

// SeriesSpec describes one planting intent to expand into a staggered series
type SeriesSpec struct {
	Plant        *models.PlantProfile
	StartDate    models.Date // Anchor of draft 0
	IntervalDays int
	Count        int
	Method       models.PlantingMethod
	GardenBedID  *int64
	Variety      string
	Quantity     *int
}

// GenerateSeries expands the spec into Count planting drafts. Draft i uses
// anchor = StartDate + i*IntervalDays days, and every draft shares one
// freshly generated succession group id. Drafts carry no grid position;
// placement happens per draft afterwards.
func GenerateSeries(spec SeriesSpec) ([]models.PlantingEvent, error) {
	if spec.IntervalDays < MinIntervalDays || spec.IntervalDays > MaxIntervalDays {
		return nil, apperr.Invalidf("interval_days must be between %d and %d, got %d", MinIntervalDays, MaxIntervalDays, spec.IntervalDays)
	}
	if spec.Count < MinSeriesCount || spec.Count > MaxSeriesCount {
		return nil, apperr.Invalidf("count must be between %d and %d, got %d", MinSeriesCount, MaxSeriesCount, spec.Count)
	}

	groupID := uuid.NewString()
	interval := spec.IntervalDays

	drafts := make([]models.PlantingEvent, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		anchor := spec.StartDate.AddDays(i * spec.IntervalDays)
		dates, err := CalculateDates(spec.Plant, anchor, spec.Method)
		if err != nil {
			return nil, err
		}

		drafts = append(drafts, models.PlantingEvent{
			PlantID:             spec.Plant.ID,
			Variety:             spec.Variety,
			GardenBedID:         spec.GardenBedID,
			SeedStartDate:       dates.SeedStartDate,
			TransplantDate:      dates.TransplantDate,
			DirectSeedDate:      dates.DirectSeedDate,
			ExpectedHarvestDate: dates.ExpectedHarvestDate,
			SuccessionGroupID:   &groupID,
			SuccessionInterval:  &interval,
			Quantity:            spec.Quantity,
		})
	}

	return drafts, nil
}
