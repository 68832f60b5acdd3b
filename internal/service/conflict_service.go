package service

import (
	"log"

	"github.com/chananmeir/homestead-planner/internal/apperr"
	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/planner"
	"github.com/chananmeir/homestead-planner/internal/repository"
)

// ConflictService runs placement conflict checks against the record store.
// The check is advisory and idempotent: it never mutates records, and an
// unknown bed degrades to "no conflicts" so placement flows fall back to
// timeline-only instead of blocking the user.
type ConflictService struct {
	events *repository.EventRepository
	beds   *repository.BedRepository
	plants *repository.PlantRepository
}

// NewConflictService creates a new conflict service
func NewConflictService(events *repository.EventRepository, beds *repository.BedRepository, plants *repository.PlantRepository) *ConflictService {
	return &ConflictService{events: events, beds: beds, plants: plants}
}

// Check looks up conflicts for one candidate placement
func (s *ConflictService) Check(q models.ConflictCheckQuery) (models.ConflictCheckResult, error) {
	empty := models.ConflictCheckResult{Conflicts: []models.Conflict{}}

	activeStart, err := models.ParseDate(q.ActiveStart)
	if err != nil {
		return empty, apperr.Invalidf("active_start: %v", err)
	}
	activeEnd, err := models.ParseDate(q.ActiveEnd)
	if err != nil {
		return empty, apperr.Invalidf("active_end: %v", err)
	}
	if activeEnd.Before(activeStart.Time) {
		return empty, apperr.Invalidf("active window ends before it starts")
	}
	if (q.PositionX == nil) != (q.PositionY == nil) {
		return empty, apperr.Invalidf("position_x and position_y must be given together")
	}

	bed, err := s.beds.GetByID(q.GardenBedID)
	if err != nil {
		return empty, apperr.Unavailable(err)
	}
	if bed == nil {
		// Fail open: advisory checks degrade rather than block
		log.Printf("[ConflictService] Unknown bed %d, reporting no conflicts", q.GardenBedID)
		return empty, nil
	}

	existing, err := s.events.ListByBed(q.GardenBedID)
	if err != nil {
		return empty, apperr.Unavailable(err)
	}
	names, err := s.plants.NamesByID()
	if err != nil {
		return empty, apperr.Unavailable(err)
	}

	return planner.DetectConflicts(planner.Candidate{
		GardenBedID:    q.GardenBedID,
		PositionX:      q.PositionX,
		PositionY:      q.PositionY,
		ActiveStart:    activeStart,
		ActiveEnd:      activeEnd,
		PlantID:        q.PlantID,
		ExcludeEventID: q.ExcludeEventID,
		PlanningMode:   q.PlanningMode,
	}, existing, names), nil
}
