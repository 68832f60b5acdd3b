package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/service"
	"github.com/chananmeir/homestead-planner/pkg/response"
)

// CalendarHandler handles HTTP requests for calendar views
type CalendarHandler struct {
	service *service.CalendarService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(service *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// Markers handles GET /api/v1/calendar
func (h *CalendarHandler) Markers(c *gin.Context) {
	var filter models.CalendarFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "startDate and endDate are required: "+err.Error())
		return
	}
	markers, err := h.service.Markers(filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"data": markers, "count": len(markers)})
}

// GroupSummary handles GET /api/v1/calendar/groups/:groupId/summary
func (h *CalendarHandler) GroupSummary(c *gin.Context) {
	groupID := c.Param("groupId")
	if groupID == "" {
		response.Error(c, http.StatusBadRequest, "groupId is required")
		return
	}
	summary, err := h.service.GroupSummary(groupID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, summary)
}
