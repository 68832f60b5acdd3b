package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/chananmeir/homestead-planner/internal/models"
)

// PlantRepository handles database operations for plant profiles
type PlantRepository struct {
	db *sql.DB
}

// NewPlantRepository creates a new plant repository
func NewPlantRepository(db *sql.DB) *PlantRepository {
	return &PlantRepository{db: db}
}

// Create inserts a plant profile and fills its id
func (r *PlantRepository) Create(p *models.PlantProfile) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.db.Exec(`
		INSERT INTO plants (name, category, weeks_to_start_before_anchor, days_to_maturity, spacing_inches, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Category, p.WeeksToStartBeforeAnchor, p.DaysToMaturity, p.SpacingInches, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert plant: %w", err)
	}

	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read plant id: %w", err)
	}
	return nil
}

// GetByID retrieves a plant profile, nil when absent
func (r *PlantRepository) GetByID(id int64) (*models.PlantProfile, error) {
	var p models.PlantProfile
	err := r.db.QueryRow(`
		SELECT id, name, category, weeks_to_start_before_anchor, days_to_maturity, spacing_inches, created_at, updated_at
		FROM plants WHERE id = ?`, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.WeeksToStartBeforeAnchor, &p.DaysToMaturity, &p.SpacingInches, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}
	return &p, nil
}

// List retrieves all plant profiles ordered by name
func (r *PlantRepository) List() ([]models.PlantProfile, error) {
	rows, err := r.db.Query(`
		SELECT id, name, category, weeks_to_start_before_anchor, days_to_maturity, spacing_inches, created_at, updated_at
		FROM plants ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query plants: %w", err)
	}
	defer rows.Close()

	var plants []models.PlantProfile
	for rows.Next() {
		var p models.PlantProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.WeeksToStartBeforeAnchor, &p.DaysToMaturity, &p.SpacingInches, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}

// NamesByID returns a plant id → name lookup for warning payloads and
// calendar markers
func (r *PlantRepository) NamesByID() (map[int64]string, error) {
	rows, err := r.db.Query("SELECT id, name FROM plants")
	if err != nil {
		return nil, fmt.Errorf("failed to query plant names: %w", err)
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan plant name: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}

// Update rewrites a plant profile
func (r *PlantRepository) Update(p *models.PlantProfile) error {
	p.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE plants SET name = ?, category = ?, weeks_to_start_before_anchor = ?, days_to_maturity = ?, spacing_inches = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Category, p.WeeksToStartBeforeAnchor, p.DaysToMaturity, p.SpacingInches, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update plant: %w", err)
	}
	return nil
}

// Delete removes a plant profile
func (r *PlantRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM plants WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}
	return nil
}
