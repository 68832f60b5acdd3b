package models

// DateOverrides replaces individual computed milestone dates with
// user-supplied ones. Overrides are stored verbatim and are not
// re-validated against the plant profile.
type DateOverrides struct {
	SeedStartDate       *Date `json:"seed_start_date,omitempty"`
	TransplantDate      *Date `json:"transplant_date,omitempty"`
	DirectSeedDate      *Date `json:"direct_seed_date,omitempty"`
	ExpectedHarvestDate *Date `json:"expected_harvest_date,omitempty"`
}

// CreateEventRequest creates a single planting event. Milestone dates are
// derived from the plant profile and the anchor date unless overridden.
type CreateEventRequest struct {
	PlantID          int64          `json:"plant_id" binding:"required"`
	Variety          string         `json:"variety"`
	GardenBedID      *int64         `json:"garden_bed_id"`
	Method           PlantingMethod `json:"method" binding:"required"`
	AnchorDate       string         `json:"anchor_date" binding:"required"` // YYYY-MM-DD
	PositionX        *int           `json:"position_x"`
	PositionY        *int           `json:"position_y"`
	Quantity         *int           `json:"quantity"`
	ConflictOverride bool           `json:"conflict_override"`
	PlanningMode     bool           `json:"planning_mode"`
	Overrides        *DateOverrides `json:"overrides"`
}

// CreateSeriesRequest expands one planting intent into a staggered
// succession series
type CreateSeriesRequest struct {
	PlantID      int64          `json:"plant_id" binding:"required"`
	Variety      string         `json:"variety"`
	GardenBedID  *int64         `json:"garden_bed_id"`
	Method       PlantingMethod `json:"method" binding:"required"`
	StartDate    string         `json:"start_date" binding:"required"` // YYYY-MM-DD, anchor of draft 0
	IntervalDays int            `json:"interval_days" binding:"required"`
	Count        int            `json:"count" binding:"required"`
	Quantity     *int           `json:"quantity"`
}

// UpdateEventRequest applies explicit completion / correction updates to an
// existing event. Nil fields are left unchanged.
type UpdateEventRequest struct {
	ActualHarvestDate *Date `json:"actual_harvest_date"`
	QuantityCompleted *int  `json:"quantity_completed"`
	Completed         *bool `json:"completed"`
	PositionX         *int  `json:"position_x"`
	PositionY         *int  `json:"position_y"`
	ConflictOverride  *bool `json:"conflict_override"`
}

// BulkCompleteRequest marks a set of events complete in one atomic write
type BulkCompleteRequest struct {
	EventIDs []int64 `json:"event_ids" binding:"required"`
}

// CreatePlantRequest creates a plant profile
type CreatePlantRequest struct {
	Name                     string `json:"name" binding:"required"`
	Category                 string `json:"category"`
	WeeksToStartBeforeAnchor int    `json:"weeks_to_start_before_anchor"`
	DaysToMaturity           int    `json:"days_to_maturity" binding:"required"`
	SpacingInches            int    `json:"spacing_inches" binding:"required"`
}

// CreateBedRequest creates a garden bed
type CreateBedRequest struct {
	Name               string `json:"name" binding:"required"`
	WidthInches        int    `json:"width_inches" binding:"required"`
	LengthInches       int    `json:"length_inches" binding:"required"`
	GridCellSizeInches int    `json:"grid_cell_size_inches"`
}
