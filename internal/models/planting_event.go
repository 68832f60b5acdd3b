package models

import (
	"errors"
	"time"
)

// PlantingMethod identifies how a planting enters the ground
type PlantingMethod string

// PlantingMethod constants
const (
	MethodTransplant PlantingMethod = "transplant"  // Started indoors, transplanted out
	MethodDirectSeed PlantingMethod = "direct_seed" // Sown directly in the bed
)

// Valid reports whether the method is a known value
func (m PlantingMethod) Valid() bool {
	return m == MethodTransplant || m == MethodDirectSeed
}

// PlantingEvent represents one planting of one plant, with its milestone
// dates and (optionally) its position in a bed. Exactly one planting method
// is represented: seed_start_date + transplant_date, or direct_seed_date.
type PlantingEvent struct {
	ID      int64  `json:"id" db:"id"`
	PlantID int64  `json:"plant_id" db:"plant_id"`
	Variety string `json:"variety,omitempty" db:"variety"`

	// Unset means timeline-only, no spatial tracking
	GardenBedID *int64 `json:"garden_bed_id,omitempty" db:"garden_bed_id"`

	// Milestone dates
	SeedStartDate       *Date `json:"seed_start_date,omitempty" db:"seed_start_date"`
	TransplantDate      *Date `json:"transplant_date,omitempty" db:"transplant_date"`
	DirectSeedDate      *Date `json:"direct_seed_date,omitempty" db:"direct_seed_date"`
	ExpectedHarvestDate Date  `json:"expected_harvest_date" db:"expected_harvest_date"`
	ActualHarvestDate   *Date `json:"actual_harvest_date,omitempty" db:"actual_harvest_date"`

	// Grid position, defined together or not at all
	PositionX *int `json:"position_x,omitempty" db:"position_x"`
	PositionY *int `json:"position_y,omitempty" db:"position_y"`

	// Cell footprint derived from plant spacing. Stored but not yet
	// consulted by the conflict detector, which treats every occupancy
	// as the single anchor cell.
	SpaceRequired *int `json:"space_required,omitempty" db:"space_required"`

	// Succession series linkage
	SuccessionGroupID  *string `json:"succession_group_id,omitempty" db:"succession_group_id"`
	SuccessionInterval *int    `json:"succession_interval,omitempty" db:"succession_interval"` // Days, provenance only

	// Completion tracking
	Quantity          *int `json:"quantity,omitempty" db:"quantity"`
	QuantityCompleted *int `json:"quantity_completed,omitempty" db:"quantity_completed"`
	Completed         bool `json:"completed" db:"completed"`

	// Set when the user knowingly accepted a reported conflict at creation
	ConflictOverride bool `json:"conflict_override" db:"conflict_override"`

	// Metadata
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Method derives the planting method from which milestone dates are set
func (e *PlantingEvent) Method() PlantingMethod {
	if e.DirectSeedDate != nil {
		return MethodDirectSeed
	}
	return MethodTransplant
}

// HasPosition reports whether the event occupies a grid cell
func (e *PlantingEvent) HasPosition() bool {
	return e.PositionX != nil && e.PositionY != nil
}

// IsComplete reports completion: quantity-tracked events are complete when
// the completed quantity reaches the quantity, others use the flag
func (e *PlantingEvent) IsComplete() bool {
	if e.Quantity != nil {
		return e.QuantityCompleted != nil && *e.QuantityCompleted >= *e.Quantity
	}
	return e.Completed
}

// IsPartial reports a started-but-unfinished quantity
func (e *PlantingEvent) IsPartial() bool {
	if e.Quantity == nil || e.QuantityCompleted == nil {
		return false
	}
	return *e.QuantityCompleted > 0 && *e.QuantityCompleted < *e.Quantity
}

// Validate enforces the structural invariants of a planting event
func (e *PlantingEvent) Validate() error {
	transplant := e.SeedStartDate != nil && e.TransplantDate != nil
	direct := e.DirectSeedDate != nil
	switch {
	case transplant && direct:
		return errors.New("planting event mixes transplant and direct-seed dates")
	case !transplant && !direct:
		return errors.New("planting event must carry seed-start and transplant dates, or a direct-seed date")
	}
	if (e.PositionX == nil) != (e.PositionY == nil) {
		return errors.New("position_x and position_y must be set together")
	}
	if e.HasPosition() && e.GardenBedID == nil {
		return errors.New("a positioned planting event requires a garden bed")
	}
	if e.Quantity != nil && e.QuantityCompleted != nil {
		if *e.QuantityCompleted < 0 || *e.QuantityCompleted > *e.Quantity {
			return errors.New("quantity_completed must be between 0 and quantity")
		}
	}
	return nil
}
