package models

// ConflictType classifies how two plantings collide
type ConflictType string

// ConflictType constants
const (
	ConflictSpatial  ConflictType = "spatial"  // Same cell, non-overlapping windows (never surfaced on its own)
	ConflictTemporal ConflictType = "temporal" // Overlapping windows, position missing on at least one side
	ConflictBoth     ConflictType = "both"     // Same cell and overlapping windows
)

// Conflict carries enough data to render a warning without a second fetch
type Conflict struct {
	EventID   int64        `json:"event_id"`
	PlantName string       `json:"plant_name"`
	Variety   string       `json:"variety,omitempty"`
	DateRange string       `json:"date_range"` // Human-readable, "YYYY-MM-DD to YYYY-MM-DD"
	PositionX *int         `json:"position_x,omitempty"`
	PositionY *int         `json:"position_y,omitempty"`
	Type      ConflictType `json:"type"`
}

// ConflictCheckResult is the detector's reply for one candidate placement
type ConflictCheckResult struct {
	HasConflict bool       `json:"has_conflict"`
	Conflicts   []Conflict `json:"conflicts"`
}
