package models

// EventFilter represents filter parameters for querying planting events
type EventFilter struct {
	GardenBedID       int64  `form:"gardenBedId"`
	PlantID           int64  `form:"plantId"`
	SuccessionGroupID string `form:"successionGroupId"`
	StartDate         string `form:"startDate"` // YYYY-MM-DD, inclusive
	EndDate           string `form:"endDate"`   // YYYY-MM-DD, inclusive
	Page              int    `form:"page"`
	PageSize          int    `form:"pageSize"`
}

// CalendarFilter represents the visible date range for calendar aggregation
type CalendarFilter struct {
	StartDate   string `form:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate     string `form:"endDate" binding:"required"`   // YYYY-MM-DD
	GardenBedID int64  `form:"gardenBedId"`
}

// ConflictCheckQuery represents the conflict lookup parameters of a
// candidate placement
type ConflictCheckQuery struct {
	GardenBedID    int64  `form:"gardenBedId" binding:"required"`
	PositionX      *int   `form:"positionX"`
	PositionY      *int   `form:"positionY"`
	ActiveStart    string `form:"activeStart" binding:"required"` // YYYY-MM-DD
	ActiveEnd      string `form:"activeEnd" binding:"required"`   // YYYY-MM-DD
	PlantID        int64  `form:"plantId"`
	ExcludeEventID int64  `form:"excludeEventId"` // Used when re-checking an event being edited
	PlanningMode   bool   `form:"planningMode"`   // Trust expected harvest dates
}
