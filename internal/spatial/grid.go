// Package spatial maps garden bed dimensions onto discrete cell grids and
// provides the planar geometry behind position validation and footprints.
package spatial

import (
	"github.com/golang/geo/r2"

	"github.com/chananmeir/homestead-planner/internal/models"
)

// Grid is the discrete cell grid of one bed. Cells are squares of
// CellSizeInches laid out from the bed's origin corner; partial cells at the
// far edges are dropped (floor division).
type Grid struct {
	Width          int // Cells along the bed width
	Length         int // Cells along the bed length
	CellSizeInches int
}

// NewGrid derives the cell grid from a bed's physical dimensions
func NewGrid(bed *models.GardenBed) Grid {
	cell := bed.CellSize()
	return Grid{
		Width:          bed.WidthInches / cell,
		Length:         bed.LengthInches / cell,
		CellSizeInches: cell,
	}
}

// Bounds returns the usable bed area in inches (whole cells only)
func (g Grid) Bounds() r2.Rect {
	return r2.RectFromPoints(
		r2.Point{X: 0, Y: 0},
		r2.Point{X: float64(g.Width * g.CellSizeInches), Y: float64(g.Length * g.CellSizeInches)},
	)
}

// CellRect returns the area of one cell in inches
func (g Grid) CellRect(x, y int) r2.Rect {
	size := float64(g.CellSizeInches)
	return r2.RectFromPoints(
		r2.Point{X: float64(x) * size, Y: float64(y) * size},
		r2.Point{X: float64(x+1) * size, Y: float64(y+1) * size},
	)
}

// Contains reports whether cell (x, y) lies inside the grid
func (g Grid) Contains(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	return g.Bounds().ContainsPoint(g.CellRect(x, y).Center())
}

// FootprintCells returns the cell count a plant's spacing demands, rounded up.
// Stored on events as space_required; the conflict detector does not consult
// it yet and occupancy stays a single anchor cell.
func FootprintCells(spacingInches, cellSizeInches int) int {
	if spacingInches <= 0 || cellSizeInches <= 0 {
		return 1
	}
	cells := (spacingInches + cellSizeInches - 1) / cellSizeInches
	if cells < 1 {
		return 1
	}
	return cells
}

// FootprintRect returns the area a multi-cell footprint anchored at (x, y)
// would cover, for the eventual footprint-aware detector
func (g Grid) FootprintRect(x, y, cells int) r2.Rect {
	if cells < 1 {
		cells = 1
	}
	size := float64(g.CellSizeInches)
	return r2.RectFromPoints(
		r2.Point{X: float64(x) * size, Y: float64(y) * size},
		r2.Point{X: float64(x+cells) * size, Y: float64(y+cells) * size},
	)
}
