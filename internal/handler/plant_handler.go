package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/service"
	"github.com/chananmeir/homestead-planner/pkg/response"
)

// PlantHandler handles HTTP requests for plant profiles
type PlantHandler struct {
	service *service.PlantService
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(service *service.PlantService) *PlantHandler {
	return &PlantHandler{service: service}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// Create handles POST /api/v1/plants
func (h *PlantHandler) Create(c *gin.Context) {
	var req models.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid plant payload: "+err.Error())
		return
	}
	plant, err := h.service.Create(req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, plant)
}

// Get handles GET /api/v1/plants/:id
func (h *PlantHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plant, err := h.service.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, plant)
}

// List handles GET /api/v1/plants
func (h *PlantHandler) List(c *gin.Context) {
	plants, err := h.service.List()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"data": plants, "count": len(plants)})
}

// Update handles PUT /api/v1/plants/:id
func (h *PlantHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid plant payload: "+err.Error())
		return
	}
	plant, err := h.service.Update(id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, plant)
}

// Delete handles DELETE /api/v1/plants/:id
func (h *PlantHandler) Delete(c *gin.Context) {
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
