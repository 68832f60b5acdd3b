package models

import "time"

// PlantProfile represents the planning biology of one plant
type PlantProfile struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	// Category keys the succession suggestion table (e.g. "salad_greens").
	// Empty means no suggestion is available for this plant.
	Category string `json:"category,omitempty" db:"category"`

	// Scheduling parameters
	WeeksToStartBeforeAnchor int `json:"weeks_to_start_before_anchor" db:"weeks_to_start_before_anchor"` // Indoor-start lead, >= 0
	DaysToMaturity           int `json:"days_to_maturity" db:"days_to_maturity"`                         // Planting to harvest, > 0
	SpacingInches            int `json:"spacing_inches" db:"spacing_inches"`                             // Recommended in-bed spacing, > 0

	// Metadata
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
