package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/service"
	"github.com/chananmeir/homestead-planner/pkg/response"
)

// BedHandler handles HTTP requests for garden beds
type BedHandler struct {
	service *service.BedService
}

// NewBedHandler creates a new bed handler
func NewBedHandler(service *service.BedService) *BedHandler {
	return &BedHandler{service: service}
}

// Create handles POST /api/v1/beds
func (h *BedHandler) Create(c *gin.Context) {
	var req models.CreateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid bed payload: "+err.Error())
		return
	}
	bed, err := h.service.Create(req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, bed)
}

// Get handles GET /api/v1/beds/:id
func (h *BedHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	bed, err := h.service.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bed)
}

// List handles GET /api/v1/beds
func (h *BedHandler) List(c *gin.Context) {
	beds, err := h.service.List()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"data": beds, "count": len(beds)})
}

// Update handles PUT /api/v1/beds/:id
func (h *BedHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.CreateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid bed payload: "+err.Error())
		return
	}
	bed, err := h.service.Update(id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bed)
}

// Delete handles DELETE /api/v1/beds/:id
func (h *BedHandler) Delete(c *gin.Context) {
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
