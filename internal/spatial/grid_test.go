package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chananmeir/homestead-planner/internal/models"
)

func TestNewGrid_FloorsPartialCells(t *testing.T) {
	bed := &models.GardenBed{WidthInches: 50, LengthInches: 96, GridCellSizeInches: 12}
	g := NewGrid(bed)
	assert.Equal(t, 4, g.Width, "50in / 12in floors to 4 cells")
	assert.Equal(t, 8, g.Length)
}

func TestNewGrid_DefaultCellSize(t *testing.T) {
	bed := &models.GardenBed{WidthInches: 48, LengthInches: 24}
	g := NewGrid(bed)
	assert.Equal(t, 12, g.CellSizeInches)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 2, g.Length)
}

func TestContains(t *testing.T) {
	g := Grid{Width: 4, Length: 8, CellSizeInches: 12}
	cases := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{3, 7, true},
		{4, 0, false},
		{0, 8, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.in, g.Contains(tc.x, tc.y), "cell (%d,%d)", tc.x, tc.y)
	}
}

func TestCellRect(t *testing.T) {
	g := Grid{Width: 4, Length: 8, CellSizeInches: 12}
	r := g.CellRect(2, 3)
	assert.Equal(t, 24.0, r.X.Lo)
	assert.Equal(t, 36.0, r.X.Hi)
	assert.Equal(t, 36.0, r.Y.Lo)
	assert.Equal(t, 48.0, r.Y.Hi)
}

func TestFootprintCells(t *testing.T) {
	cases := []struct {
		spacing, cell, want int
	}{
		{12, 12, 1},
		{13, 12, 2},
		{24, 12, 2},
		{3, 12, 1},
		{36, 12, 3},
		{0, 12, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FootprintCells(tc.spacing, tc.cell), "spacing=%d cell=%d", tc.spacing, tc.cell)
	}
}

func TestFootprintRect_CoversAnchorAndBeyond(t *testing.T) {
	g := Grid{Width: 4, Length: 8, CellSizeInches: 12}
	r := g.FootprintRect(1, 1, 2)
	assert.True(t, r.Contains(g.CellRect(1, 1)))
	assert.True(t, r.Contains(g.CellRect(2, 2)))
	assert.False(t, r.Contains(g.CellRect(3, 3)))
}
