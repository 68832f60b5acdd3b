// Package calendar turns raw planting events into display markers for
// calendar views and rolls up completion state across groups.
package calendar

import (
	"fmt"
	"sort"

	"github.com/chananmeir/homestead-planner/internal/models"
)

// MarkerType identifies which milestone a calendar marker represents
type MarkerType string

// MarkerType constants, in display order
const (
	MarkerSeedStart  MarkerType = "seed_start"
	MarkerTransplant MarkerType = "transplant"
	MarkerDirectSeed MarkerType = "direct_seed"
	MarkerHarvest    MarkerType = "harvest"
)

var markerOrder = map[MarkerType]int{
	MarkerSeedStart:  0,
	MarkerTransplant: 1,
	MarkerDirectSeed: 2,
	MarkerHarvest:    3,
}

// Marker is one displayed calendar entry: all events of one plant/variety
// hitting the same milestone on the same date, collapsed with a count
type Marker struct {
	Date      models.Date            `json:"date"`
	Type      MarkerType             `json:"type"`
	PlantID   int64                  `json:"plant_id"`
	PlantName string                 `json:"plant_name"`
	Variety   string                 `json:"variety,omitempty"`
	Count     int                    `json:"count"`
	Events    []models.PlantingEvent `json:"events"` // Underlying events for drill-down
}

type markerKey struct {
	date    string
	plantID int64
	variety string
	kind    MarkerType
}

// ExpandMarkers expands each event into up to four dated markers, keeps the
// ones inside the visible range [from, to], and groups them by
// (date, plant, variety, marker type). The harvest marker sits on the actual
// harvest date when one is recorded, else on the expected date.
func ExpandMarkers(events []models.PlantingEvent, plantNames map[int64]string, from, to models.Date) []Marker {
	grouped := make(map[markerKey]*Marker)

	add := func(e models.PlantingEvent, date models.Date, kind MarkerType) {
		if date.Before(from.Time) || date.After(to.Time) {
			return
		}
		key := markerKey{date: date.String(), plantID: e.PlantID, variety: e.Variety, kind: kind}
		m, ok := grouped[key]
		if !ok {
			m = &Marker{
				Date:      date,
				Type:      kind,
				PlantID:   e.PlantID,
				PlantName: plantNames[e.PlantID],
				Variety:   e.Variety,
			}
			grouped[key] = m
		}
		m.Count++
		m.Events = append(m.Events, e)
	}

	for _, e := range events {
		if e.SeedStartDate != nil {
			add(e, *e.SeedStartDate, MarkerSeedStart)
		}
		if e.TransplantDate != nil {
			add(e, *e.TransplantDate, MarkerTransplant)
		}
		if e.DirectSeedDate != nil {
			add(e, *e.DirectSeedDate, MarkerDirectSeed)
		}
		harvest := e.ExpectedHarvestDate
		if e.ActualHarvestDate != nil {
			harvest = *e.ActualHarvestDate
		}
		add(e, harvest, MarkerHarvest)
	}

	markers := make([]Marker, 0, len(grouped))
	for _, m := range grouped {
		markers = append(markers, *m)
	}
	sort.Slice(markers, func(i, j int) bool {
		if !markers[i].Date.Equal(markers[j].Date.Time) {
			return markers[i].Date.Before(markers[j].Date.Time)
		}
		if markers[i].Type != markers[j].Type {
			return markerOrder[markers[i].Type] < markerOrder[markers[j].Type]
		}
		if markers[i].PlantName != markers[j].PlantName {
			return markers[i].PlantName < markers[j].PlantName
		}
		return markers[i].Variety < markers[j].Variety
	})
	return markers
}

// GroupSummary is the completion rollup of one marker group or succession
// group
type GroupSummary struct {
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Partial   int    `json:"partial"`
	Summary   string `json:"summary"` // e.g. "3/3 complete" or "1/4 complete, 2 partial"
}

// SummarizeCompletion rolls up quantity completion across a group of events
func SummarizeCompletion(events []models.PlantingEvent) GroupSummary {
	s := GroupSummary{Total: len(events)}
	for i := range events {
		switch {
		case events[i].IsComplete():
			s.Completed++
		case events[i].IsPartial():
			s.Partial++
		}
	}
	s.Summary = fmt.Sprintf("%d/%d complete", s.Completed, s.Total)
	if s.Partial > 0 {
		s.Summary += fmt.Sprintf(", %d partial", s.Partial)
	}
	return s
}
