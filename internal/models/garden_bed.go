package models

import "time"

// DefaultGridCellSizeInches is used when a bed does not specify a cell size
const DefaultGridCellSizeInches = 12

// GardenBed represents a physical bed mapped onto a discrete cell grid
type GardenBed struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	// Physical dimensions
	WidthInches  int `json:"width_inches" db:"width_inches"`
	LengthInches int `json:"length_inches" db:"length_inches"`

	// Side length of one grid cell (commonly 12)
	GridCellSizeInches int `json:"grid_cell_size_inches" db:"grid_cell_size_inches"`

	// Derived grid dimensions, filled on read
	GridWidth  int `json:"grid_width" db:"-"`
	GridLength int `json:"grid_length" db:"-"`

	// Metadata
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CellSize returns the configured cell size, defaulting when unset
func (b *GardenBed) CellSize() int {
	if b.GridCellSizeInches <= 0 {
		return DefaultGridCellSizeInches
	}
	return b.GridCellSizeInches
}

// ComputeGrid fills the derived grid dimensions from the physical ones
func (b *GardenBed) ComputeGrid() {
	cell := b.CellSize()
	b.GridWidth = b.WidthInches / cell
	b.GridLength = b.LengthInches / cell
}
