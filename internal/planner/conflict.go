package planner

import (
	"fmt"

	"github.com/chananmeir/homestead-planner/internal/models"
)

// Candidate describes a placement being checked against the events already
// in a bed. Position may be nil for a timeline-only placement.
type Candidate struct {
	GardenBedID    int64
	PositionX      *int
	PositionY      *int
	ActiveStart    models.Date
	ActiveEnd      models.Date
	PlantID        int64
	ExcludeEventID int64 // 0 means no exclusion; set when re-checking an event being edited
	PlanningMode   bool  // Trust expected harvest dates over actual ones
}

// HasPosition reports whether the candidate names a grid cell
func (c Candidate) HasPosition() bool {
	return c.PositionX != nil && c.PositionY != nil
}

// ActiveWindow returns the closed date interval during which an event
// occupies its cell. Start is the first in-ground date (direct-seed, else
// transplant, else seed-start). In planning mode the end is always the
// expected harvest date, trusting the prediction; otherwise the actual
// harvest date wins when known. ok is false when the event has no start
// date at all.
func ActiveWindow(e *models.PlantingEvent, planningMode bool) (start, end models.Date, ok bool) {
	switch {
	case e.DirectSeedDate != nil:
		start = *e.DirectSeedDate
	case e.TransplantDate != nil:
		start = *e.TransplantDate
	case e.SeedStartDate != nil:
		start = *e.SeedStartDate
	default:
		return models.Date{}, models.Date{}, false
	}

	end = e.ExpectedHarvestDate
	if !planningMode && e.ActualHarvestDate != nil {
		end = *e.ActualHarvestDate
	}
	return start, end, true
}

// windowsOverlap reports whether two closed date intervals intersect;
// touching endpoints count as overlapping
func windowsOverlap(aStart, aEnd, bStart, bEnd models.Date) bool {
	return !aStart.After(bEnd.Time) && !bStart.After(aEnd.Time)
}

// DetectConflicts scans the existing events of the candidate's bed and
// classifies overlaps. Each existing event contributes at most one Conflict:
//
//   - "both" when the events share a cell and their windows overlap
//   - "temporal" when the windows overlap but at least one side has no
//     recorded position (a bed-level capacity warning)
//
// Events at a different cell, or at the same cell without window overlap,
// are omitted entirely. The detector never mutates its inputs; plantNames
// maps plant ids to display names for the warning payload.
func DetectConflicts(c Candidate, existing []models.PlantingEvent, plantNames map[int64]string) models.ConflictCheckResult {
	result := models.ConflictCheckResult{Conflicts: []models.Conflict{}}

	for i := range existing {
		e := &existing[i]
		if c.ExcludeEventID != 0 && e.ID == c.ExcludeEventID {
			continue
		}

		start, end, ok := ActiveWindow(e, c.PlanningMode)
		if !ok {
			continue
		}
		if !windowsOverlap(start, end, c.ActiveStart, c.ActiveEnd) {
			continue
		}

		bothPositioned := c.HasPosition() && e.HasPosition()
		var kind models.ConflictType
		switch {
		case bothPositioned && *e.PositionX == *c.PositionX && *e.PositionY == *c.PositionY:
			kind = models.ConflictBoth
		case !bothPositioned:
			kind = models.ConflictTemporal
		default:
			// Same bed, same window, different cells: not a conflict
			continue
		}

		result.Conflicts = append(result.Conflicts, models.Conflict{
			EventID:   e.ID,
			PlantName: plantNames[e.PlantID],
			Variety:   e.Variety,
			DateRange: fmt.Sprintf("%s to %s", start, end),
			PositionX: e.PositionX,
			PositionY: e.PositionY,
			Type:      kind,
		})
	}

	result.HasConflict = len(result.Conflicts) > 0
	return result
}
