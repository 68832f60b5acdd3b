package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/chananmeir/homestead-planner/internal/models"
)

// BedRepository handles database operations for garden beds
type BedRepository struct {
	db *sql.DB
}

// NewBedRepository creates a new bed repository
func NewBedRepository(db *sql.DB) *BedRepository {
	return &BedRepository{db: db}
}

// Create inserts a garden bed and fills its id
func (r *BedRepository) Create(b *models.GardenBed) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.GridCellSizeInches <= 0 {
		b.GridCellSizeInches = models.DefaultGridCellSizeInches
	}

	res, err := r.db.Exec(`
		INSERT INTO garden_beds (name, width_inches, length_inches, grid_cell_size_inches, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.Name, b.WidthInches, b.LengthInches, b.GridCellSizeInches, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert garden bed: %w", err)
	}

	b.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read garden bed id: %w", err)
	}
	b.ComputeGrid()
	return nil
}

// GetByID retrieves a garden bed with derived grid dimensions, nil when absent
func (r *BedRepository) GetByID(id int64) (*models.GardenBed, error) {
	var b models.GardenBed
	err := r.db.QueryRow(`
		SELECT id, name, width_inches, length_inches, grid_cell_size_inches, created_at, updated_at
		FROM garden_beds WHERE id = ?`, id).Scan(
		&b.ID, &b.Name, &b.WidthInches, &b.LengthInches, &b.GridCellSizeInches, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get garden bed: %w", err)
	}
	b.ComputeGrid()
	return &b, nil
}

// List retrieves all garden beds ordered by name
func (r *BedRepository) List() ([]models.GardenBed, error) {
	rows, err := r.db.Query(`
		SELECT id, name, width_inches, length_inches, grid_cell_size_inches, created_at, updated_at
		FROM garden_beds ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query garden beds: %w", err)
	}
	defer rows.Close()

	var beds []models.GardenBed
	for rows.Next() {
		var b models.GardenBed
		if err := rows.Scan(&b.ID, &b.Name, &b.WidthInches, &b.LengthInches, &b.GridCellSizeInches, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan garden bed: %w", err)
		}
		b.ComputeGrid()
		beds = append(beds, b)
	}
	return beds, rows.Err()
}

// Update rewrites a garden bed
func (r *BedRepository) Update(b *models.GardenBed) error {
	b.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE garden_beds SET name = ?, width_inches = ?, length_inches = ?, grid_cell_size_inches = ?, updated_at = ?
		WHERE id = ?`,
		b.Name, b.WidthInches, b.LengthInches, b.GridCellSizeInches, b.UpdatedAt, b.ID)
	if err != nil {
		return fmt.Errorf("failed to update garden bed: %w", err)
	}
	b.ComputeGrid()
	return nil
}

// Delete removes a garden bed
func (r *BedRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM garden_beds WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete garden bed: %w", err)
	}
	return nil
}
