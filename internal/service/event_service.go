package service

import (
	"database/sql"
	"errors"

	"github.com/chananmeir/homestead-planner/internal/apperr"
	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/planner"
	"github.com/chananmeir/homestead-planner/internal/repository"
	"github.com/chananmeir/homestead-planner/internal/spatial"
)

// EventService handles creation and mutation of planting events. Creation is
// fail-closed: unknown plants or beds, invalid positions, and method
// violations reject the draft before anything is written.
type EventService struct {
	events *repository.EventRepository
	plants *repository.PlantRepository
	beds   *repository.BedRepository

	conflicts *ConflictService
}

// NewEventService creates a new event service
func NewEventService(events *repository.EventRepository, plants *repository.PlantRepository, beds *repository.BedRepository, conflicts *ConflictService) *EventService {
	return &EventService{events: events, plants: plants, beds: beds, conflicts: conflicts}
}

// resolveRefs loads and validates the plant and (optional) bed of a draft
func (s *EventService) resolveRefs(plantID int64, bedID *int64) (*models.PlantProfile, *models.GardenBed, error) {
	plant, err := s.plants.GetByID(plantID)
	if err != nil {
		return nil, nil, apperr.Unavailable(err)
	}
	if plant == nil {
		return nil, nil, apperr.NotFoundf("plant %d", plantID)
	}

	var bed *models.GardenBed
	if bedID != nil {
		bed, err = s.beds.GetByID(*bedID)
		if err != nil {
			return nil, nil, apperr.Unavailable(err)
		}
		if bed == nil {
			return nil, nil, apperr.NotFoundf("garden bed %d", *bedID)
		}
	}
	return plant, bed, nil
}

func validatePosition(bed *models.GardenBed, x, y *int) error {
	if (x == nil) != (y == nil) {
		return apperr.Invalidf("position_x and position_y must be given together")
	}
	if x == nil {
		return nil
	}
	if bed == nil {
		return apperr.Invalidf("a position requires a garden bed")
	}
	grid := spatial.NewGrid(bed)
	if !grid.Contains(*x, *y) {
		return apperr.Invalidf("position (%d,%d) outside the %dx%d grid of bed %d", *x, *y, grid.Width, grid.Length, bed.ID)
	}
	return nil
}

// Create builds, checks and persists one planting event. When the draft is
// positioned, the conflict detector runs first; a reported conflict blocks
// the write unless the caller set conflict_override, and the report is
// returned either way so the caller can render the warning.
func (s *EventService) Create(req models.CreateEventRequest) (*models.PlantingEvent, *models.ConflictCheckResult, error) {
	anchor, err := models.ParseDate(req.AnchorDate)
	if err != nil {
		return nil, nil, apperr.Invalidf("anchor_date: %v", err)
	}
	if !req.Method.Valid() {
		return nil, nil, apperr.Invalidf("unknown planting method %q", req.Method)
	}

	plant, bed, err := s.resolveRefs(req.PlantID, req.GardenBedID)
	if err != nil {
		return nil, nil, err
	}
	if err := validatePosition(bed, req.PositionX, req.PositionY); err != nil {
		return nil, nil, err
	}

	dates, err := planner.CalculateDates(plant, anchor, req.Method)
	if err != nil {
		return nil, nil, err
	}
	dates = dates.WithOverrides(req.Overrides)

	event := &models.PlantingEvent{
		PlantID:             plant.ID,
		Variety:             req.Variety,
		GardenBedID:         req.GardenBedID,
		SeedStartDate:       dates.SeedStartDate,
		TransplantDate:      dates.TransplantDate,
		DirectSeedDate:      dates.DirectSeedDate,
		ExpectedHarvestDate: dates.ExpectedHarvestDate,
		PositionX:           req.PositionX,
		PositionY:           req.PositionY,
		Quantity:            req.Quantity,
		ConflictOverride:    req.ConflictOverride,
	}
	if err := event.Validate(); err != nil {
		return nil, nil, apperr.Invalidf("%v", err)
	}

	if bed != nil && event.HasPosition() {
		space := spatial.FootprintCells(plant.SpacingInches, bed.CellSize())
		event.SpaceRequired = &space
	}

	var report *models.ConflictCheckResult
	if bed != nil && event.HasPosition() {
		start, end, ok := planner.ActiveWindow(event, req.PlanningMode)
		if ok {
			result, err := s.conflicts.Check(models.ConflictCheckQuery{
				GardenBedID:  bed.ID,
				PositionX:    event.PositionX,
				PositionY:    event.PositionY,
				ActiveStart:  start.String(),
				ActiveEnd:    end.String(),
				PlantID:      plant.ID,
				PlanningMode: req.PlanningMode,
			})
			if err != nil {
				return nil, nil, err
			}
			report = &result
			if result.HasConflict && !req.ConflictOverride {
				return nil, report, apperr.ErrConflict
			}
		}
	}

	if err := s.events.Create(event); err != nil {
		return nil, report, apperr.Unavailable(err)
	}
	return event, report, nil
}

// CreateSeries expands a succession intent and persists every draft
// atomically; a group id never identifies a partially-created series
func (s *EventService) CreateSeries(req models.CreateSeriesRequest) ([]models.PlantingEvent, error) {
	start, err := models.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperr.Invalidf("start_date: %v", err)
	}
	if !req.Method.Valid() {
		return nil, apperr.Invalidf("unknown planting method %q", req.Method)
	}

	plant, _, err := s.resolveRefs(req.PlantID, req.GardenBedID)
	if err != nil {
		return nil, err
	}

	drafts, err := planner.GenerateSeries(planner.SeriesSpec{
		Plant:        plant,
		StartDate:    start,
		IntervalDays: req.IntervalDays,
		Count:        req.Count,
		Method:       req.Method,
		GardenBedID:  req.GardenBedID,
		Variety:      req.Variety,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return nil, err
	}

	if err := s.events.CreateBatch(drafts); err != nil {
		return nil, apperr.Unavailable(err)
	}
	return drafts, nil
}

// Suggest returns the advisory succession interval/count for a plant, nil
// when its category has no known succession profile
func (s *EventService) Suggest(plantID int64) (*planner.IntervalSuggestion, error) {
	plant, _, err := s.resolveRefs(plantID, nil)
	if err != nil {
		return nil, err
	}
	suggestion, ok := planner.SuggestInterval(plant.Category)
	if !ok {
		return nil, nil
	}
	return suggestion, nil
}

// Get retrieves a planting event
func (s *EventService) Get(id int64) (*models.PlantingEvent, error) {
	e, err := s.events.GetByID(id)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if e == nil {
		return nil, apperr.NotFoundf("planting event %d", id)
	}
	return e, nil
}

// List retrieves planting events with filtering
func (s *EventService) List(filter models.EventFilter) ([]models.PlantingEvent, error) {
	for _, d := range []string{filter.StartDate, filter.EndDate} {
		if d == "" {
			continue
		}
		if _, err := models.ParseDate(d); err != nil {
			return nil, apperr.Invalidf("%v", err)
		}
	}
	events, err := s.events.List(filter)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return events, nil
}

// Update applies explicit completion / correction updates to an event
func (s *EventService) Update(id int64, req models.UpdateEventRequest) (*models.PlantingEvent, error) {
	e, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.ActualHarvestDate != nil {
		e.ActualHarvestDate = req.ActualHarvestDate
	}
	if req.QuantityCompleted != nil {
		e.QuantityCompleted = req.QuantityCompleted
	}
	if req.Completed != nil {
		e.Completed = *req.Completed
	}
	if req.ConflictOverride != nil {
		e.ConflictOverride = *req.ConflictOverride
	}
	if req.PositionX != nil || req.PositionY != nil {
		var bed *models.GardenBed
		if e.GardenBedID != nil {
			if bed, err = s.beds.GetByID(*e.GardenBedID); err != nil {
				return nil, apperr.Unavailable(err)
			}
		}
		if err := validatePosition(bed, req.PositionX, req.PositionY); err != nil {
			return nil, err
		}
		e.PositionX = req.PositionX
		e.PositionY = req.PositionY
	}

	if err := e.Validate(); err != nil {
		return nil, apperr.Invalidf("%v", err)
	}
	if err := s.events.Update(e); err != nil {
		return nil, apperr.Unavailable(err)
	}
	return e, nil
}

// Delete removes a planting event
func (s *EventService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.events.Delete(id); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

// BulkComplete marks a set of events complete, all-or-nothing
func (s *EventService) BulkComplete(ids []int64) error {
	if len(ids) == 0 {
		return apperr.Invalidf("event_ids must not be empty")
	}
	if err := s.events.BulkComplete(ids); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFoundf("one or more event ids do not exist")
		}
		return apperr.Unavailable(err)
	}
	return nil
}
