package service

import (
	"github.com/chananmeir/homestead-planner/internal/apperr"
	"github.com/chananmeir/homestead-planner/internal/calendar"
	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/repository"
)

// CalendarService reads planting events back out of the store and builds
// calendar views and completion summaries
type CalendarService struct {
	events *repository.EventRepository
	plants *repository.PlantRepository
}

// NewCalendarService creates a new calendar service
func NewCalendarService(events *repository.EventRepository, plants *repository.PlantRepository) *CalendarService {
	return &CalendarService{events: events, plants: plants}
}

// Markers aggregates the events of a visible date range into display markers
func (s *CalendarService) Markers(filter models.CalendarFilter) ([]calendar.Marker, error) {
	from, err := models.ParseDate(filter.StartDate)
	if err != nil {
		return nil, apperr.Invalidf("start_date: %v", err)
	}
	to, err := models.ParseDate(filter.EndDate)
	if err != nil {
		return nil, apperr.Invalidf("end_date: %v", err)
	}
	if to.Before(from.Time) {
		return nil, apperr.Invalidf("end_date before start_date")
	}

	events, err := s.events.List(models.EventFilter{
		GardenBedID: filter.GardenBedID,
		StartDate:   filter.StartDate,
		EndDate:     filter.EndDate,
	})
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	names, err := s.plants.NamesByID()
	if err != nil {
		return nil, apperr.Unavailable(err)
	}

	return calendar.ExpandMarkers(events, names, from, to), nil
}

// GroupSummary rolls up completion across one succession group
func (s *CalendarService) GroupSummary(groupID string) (*calendar.GroupSummary, error) {
	events, err := s.events.ListByGroup(groupID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if len(events) == 0 {
		return nil, apperr.NotFoundf("succession group %s", groupID)
	}
	summary := calendar.SummarizeCompletion(events)
	return &summary, nil
}
