// Package planner derives planting milestone dates, expands succession
// series, and classifies placement conflicts. Everything in this package is
// pure: no I/O, no store access, identical inputs yield identical outputs.
package planner

import (
	"github.com/chananmeir/homestead-planner/internal/apperr"
	"github.com/chananmeir/homestead-planner/internal/models"
)

// MilestoneDates holds the computed milestone dates of one planting
type MilestoneDates struct {
	SeedStartDate       *models.Date
	TransplantDate      *models.Date
	DirectSeedDate      *models.Date
	ExpectedHarvestDate models.Date
}

// CalculateDates derives milestone dates from a plant's biology and an
// anchor date (commonly a frost date).
//
// Transplant method:
//
//	seedStart  = anchor - weeksToStartBeforeAnchor weeks
//	transplant = anchor + weeksToStartBeforeAnchor weeks
//	harvest    = transplant + daysToMaturity days
//
// The forward transplant offset mirrors the backward seed-start offset on
// purpose; it is the product's rule, odd as it reads agronomically.
//
// Direct-seed method sows at the anchor itself:
//
//	directSeed = anchor
//	harvest    = directSeed + daysToMaturity days
func CalculateDates(plant *models.PlantProfile, anchor models.Date, method models.PlantingMethod) (MilestoneDates, error) {
	if plant.WeeksToStartBeforeAnchor < 0 {
		return MilestoneDates{}, apperr.Invalidf("weeks_to_start_before_anchor must be >= 0, got %d", plant.WeeksToStartBeforeAnchor)
	}
	if plant.DaysToMaturity <= 0 {
		return MilestoneDates{}, apperr.Invalidf("days_to_maturity must be > 0, got %d", plant.DaysToMaturity)
	}

	switch method {
	case models.MethodTransplant:
		seedStart := anchor.AddWeeks(-plant.WeeksToStartBeforeAnchor)
		transplant := anchor.AddDays(plant.WeeksToStartBeforeAnchor * 7)
		harvest := transplant.AddDays(plant.DaysToMaturity)
		return MilestoneDates{
			SeedStartDate:       &seedStart,
			TransplantDate:      &transplant,
			ExpectedHarvestDate: harvest,
		}, nil

	case models.MethodDirectSeed:
		directSeed := anchor
		harvest := directSeed.AddDays(plant.DaysToMaturity)
		return MilestoneDates{
			DirectSeedDate:      &directSeed,
			ExpectedHarvestDate: harvest,
		}, nil

	default:
		return MilestoneDates{}, apperr.Invalidf("unknown planting method %q", method)
	}
}

// WithOverrides replaces individual computed dates with user-supplied ones.
// Overridden dates are taken verbatim; the other dates are not recomputed
// and the result is not re-validated against the plant profile.
func (m MilestoneDates) WithOverrides(o *models.DateOverrides) MilestoneDates {
	if o == nil {
		return m
	}
	if o.SeedStartDate != nil {
		m.SeedStartDate = o.SeedStartDate
	}
	if o.TransplantDate != nil {
		m.TransplantDate = o.TransplantDate
	}
	if o.DirectSeedDate != nil {
		m.DirectSeedDate = o.DirectSeedDate
	}
	if o.ExpectedHarvestDate != nil {
		m.ExpectedHarvestDate = *o.ExpectedHarvestDate
	}
	return m
}
