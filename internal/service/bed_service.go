package service

import (
	"github.com/chananmeir/homestead-planner/internal/apperr"
	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/repository"
)

// BedService handles business logic for garden beds
type BedService struct {
	repo *repository.BedRepository
}

// NewBedService creates a new bed service
func NewBedService(repo *repository.BedRepository) *BedService {
	return &BedService{repo: repo}
}

// Create validates and persists a garden bed
func (s *BedService) Create(req models.CreateBedRequest) (*models.GardenBed, error) {
	if req.WidthInches <= 0 || req.LengthInches <= 0 {
		return nil, apperr.Invalidf("bed dimensions must be > 0")
	}
	if req.GridCellSizeInches < 0 {
		return nil, apperr.Invalidf("grid_cell_size_inches must be >= 0")
	}

	b := &models.GardenBed{
		Name:               req.Name,
		WidthInches:        req.WidthInches,
		LengthInches:       req.LengthInches,
		GridCellSizeInches: req.GridCellSizeInches,
	}
	if err := s.repo.Create(b); err != nil {
		return nil, apperr.Unavailable(err)
	}
	return b, nil
}

// Get retrieves a garden bed
func (s *BedService) Get(id int64) (*models.GardenBed, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if b == nil {
		return nil, apperr.NotFoundf("garden bed %d", id)
	}
	return b, nil
}

// List retrieves all garden beds
func (s *BedService) List() ([]models.GardenBed, error) {
	beds, err := s.repo.List()
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return beds, nil
}

// Update rewrites an existing garden bed
func (s *BedService) Update(id int64, req models.CreateBedRequest) (*models.GardenBed, error) {
	b, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.WidthInches <= 0 || req.LengthInches <= 0 {
		return nil, apperr.Invalidf("bed dimensions must be > 0")
	}

	b.Name = req.Name
	b.WidthInches = req.WidthInches
	b.LengthInches = req.LengthInches
	if req.GridCellSizeInches > 0 {
		b.GridCellSizeInches = req.GridCellSizeInches
	}
	if err := s.repo.Update(b); err != nil {
		return nil, apperr.Unavailable(err)
	}
	return b, nil
}

// Delete removes a garden bed
func (s *BedService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}
