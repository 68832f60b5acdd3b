package service

import (
	"github.com/chananmeir/homestead-planner/internal/apperr"
	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/repository"
)

// PlantService handles business logic for plant profiles
type PlantService struct {
	repo *repository.PlantRepository
}

// NewPlantService creates a new plant service
func NewPlantService(repo *repository.PlantRepository) *PlantService {
	return &PlantService{repo: repo}
}

// Create validates and persists a plant profile
func (s *PlantService) Create(req models.CreatePlantRequest) (*models.PlantProfile, error) {
	if req.WeeksToStartBeforeAnchor < 0 {
		return nil, apperr.Invalidf("weeks_to_start_before_anchor must be >= 0")
	}
	if req.DaysToMaturity <= 0 {
		return nil, apperr.Invalidf("days_to_maturity must be > 0")
	}
	if req.SpacingInches <= 0 {
		return nil, apperr.Invalidf("spacing_inches must be > 0")
	}

	p := &models.PlantProfile{
		Name:                     req.Name,
		Category:                 req.Category,
		WeeksToStartBeforeAnchor: req.WeeksToStartBeforeAnchor,
		DaysToMaturity:           req.DaysToMaturity,
		SpacingInches:            req.SpacingInches,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, apperr.Unavailable(err)
	}
	return p, nil
}

// Get retrieves a plant profile
func (s *PlantService) Get(id int64) (*models.PlantProfile, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if p == nil {
		return nil, apperr.NotFoundf("plant %d", id)
	}
	return p, nil
}

// List retrieves all plant profiles
func (s *PlantService) List() ([]models.PlantProfile, error) {
	plants, err := s.repo.List()
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return plants, nil
}

// Update rewrites an existing plant profile
func (s *PlantService) Update(id int64, req models.CreatePlantRequest) (*models.PlantProfile, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.DaysToMaturity <= 0 || req.SpacingInches <= 0 || req.WeeksToStartBeforeAnchor < 0 {
		return nil, apperr.Invalidf("plant profile values out of range")
	}

	p.Name = req.Name
	p.Category = req.Category
	p.WeeksToStartBeforeAnchor = req.WeeksToStartBeforeAnchor
	p.DaysToMaturity = req.DaysToMaturity
	p.SpacingInches = req.SpacingInches
	if err := s.repo.Update(p); err != nil {
		return nil, apperr.Unavailable(err)
	}
	return p, nil
}

// Delete removes a plant profile
func (s *PlantService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}
