package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/service"
	"github.com/chananmeir/homestead-planner/pkg/response"
)

// ConflictHandler handles HTTP requests for placement conflict checks
type ConflictHandler struct {
	service *service.ConflictService
}

// NewConflictHandler creates a new conflict handler
func NewConflictHandler(service *service.ConflictService) *ConflictHandler {
	return &ConflictHandler{service: service}
}

// Check handles GET /api/v1/conflicts/check — a single idempotent query, no
// state is mutated
func (h *ConflictHandler) Check(c *gin.Context) {
	var q models.ConflictCheckQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}
	result, err := h.service.Check(q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, result)
}
