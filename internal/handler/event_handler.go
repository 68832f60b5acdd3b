package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chananmeir/homestead-planner/internal/apperr"
	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/service"
	"github.com/chananmeir/homestead-planner/pkg/response"
)

// EventHandler handles HTTP requests for planting events
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(service *service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid event payload: "+err.Error())
		return
	}

	event, report, err := h.service.Create(req)
	if err != nil {
		// A blocked placement still carries the conflict report so the
		// caller can render the warning and offer the override.
		if errors.Is(err, apperr.ErrConflict) && report != nil {
			response.ErrorData(c, http.StatusConflict, err.Error(), report)
			return
		}
		response.FromError(c, err)
		return
	}
	response.Created(c, gin.H{"event": event, "conflict_report": report})
}

// CreateSeries handles POST /api/v1/events/succession
func (h *EventHandler) CreateSeries(c *gin.Context) {
	var req models.CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid series payload: "+err.Error())
		return
	}
	events, err := h.service.CreateSeries(req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, gin.H{
		"events":              events,
		"count":               len(events),
		"succession_group_id": events[0].SuccessionGroupID,
	})
}

// Suggest handles GET /api/v1/events/succession/suggestion?plantId=
func (h *EventHandler) Suggest(c *gin.Context) {
	var q struct {
		PlantID int64 `form:"plantId" binding:"required"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "plantId is required")
		return
	}
	suggestion, err := h.service.Suggest(q.PlantID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	// suggestion stays null for plants without a succession profile; the
	// caller supplies interval/count manually.
	response.Success(c, gin.H{"recommendation": suggestion})
}

// Get handles GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	event, err := h.service.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, event)
}

// List handles GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	var filter models.EventFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}
	events, err := h.service.List(filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"data": events, "count": len(events)})
}

// Update handles PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid update payload: "+err.Error())
		return
	}
	event, err := h.service.Update(id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, event)
}

// Delete handles DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// BulkComplete handles POST /api/v1/events/bulk-complete
func (h *EventHandler) BulkComplete(c *gin.Context) {
	var req models.BulkCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid bulk-complete payload: "+err.Error())
		return
	}
	if err := h.service.BulkComplete(req.EventIDs); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": len(req.EventIDs)})
}
