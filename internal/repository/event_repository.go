package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/chananmeir/homestead-planner/internal/models"
)

const eventColumns = `id, plant_id, variety, garden_bed_id,
	seed_start_date, transplant_date, direct_seed_date, expected_harvest_date, actual_harvest_date,
	position_x, position_y, space_required,
	succession_group_id, succession_interval,
	quantity, quantity_completed, conflict_override, completed,
	created_at, updated_at`

// EventRepository handles database operations for planting events
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func insertEvent(ex execer, e *models.PlantingEvent) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	res, err := ex.Exec(`
		INSERT INTO planting_events (
			plant_id, variety, garden_bed_id,
			seed_start_date, transplant_date, direct_seed_date, expected_harvest_date, actual_harvest_date,
			position_x, position_y, space_required,
			succession_group_id, succession_interval,
			quantity, quantity_completed, conflict_override, completed,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.PlantID, e.Variety, int64Arg(e.GardenBedID),
		dateArg(e.SeedStartDate), dateArg(e.TransplantDate), dateArg(e.DirectSeedDate),
		e.ExpectedHarvestDate.String(), dateArg(e.ActualHarvestDate),
		intArg(e.PositionX), intArg(e.PositionY), intArg(e.SpaceRequired),
		strArg(e.SuccessionGroupID), intArg(e.SuccessionInterval),
		intArg(e.Quantity), intArg(e.QuantityCompleted), e.ConflictOverride, e.Completed,
		e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert planting event: %w", err)
	}

	e.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read planting event id: %w", err)
	}
	return nil
}

// Create inserts a single planting event and fills its id
func (r *EventRepository) Create(e *models.PlantingEvent) error {
	return insertEvent(r.db, e)
}

// CreateBatch inserts a series of drafts in one transaction; either every
// draft is persisted or none are, so a succession group id never identifies
// a partially-created series
func (r *EventRepository) CreateBatch(events []models.PlantingEvent) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin batch insert: %w", err)
	}

	for i := range events {
		if err := insertEvent(tx, &events[i]); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch insert: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*models.PlantingEvent, error) {
	var (
		e          models.PlantingEvent
		bedID      sql.NullInt64
		seedStart  sql.NullString
		transplant sql.NullString
		directSeed sql.NullString
		expected   string
		actual     sql.NullString
		posX, posY sql.NullInt64
		space      sql.NullInt64
		groupID    sql.NullString
		interval   sql.NullInt64
		qty, qtyC  sql.NullInt64
	)

	if err := row.Scan(
		&e.ID, &e.PlantID, &e.Variety, &bedID,
		&seedStart, &transplant, &directSeed, &expected, &actual,
		&posX, &posY, &space,
		&groupID, &interval,
		&qty, &qtyC, &e.ConflictOverride, &e.Completed,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	e.GardenBedID = int64Ptr(bedID)
	if e.SeedStartDate, err = datePtr(seedStart); err != nil {
		return nil, err
	}
	if e.TransplantDate, err = datePtr(transplant); err != nil {
		return nil, err
	}
	if e.DirectSeedDate, err = datePtr(directSeed); err != nil {
		return nil, err
	}
	if e.ExpectedHarvestDate, err = models.ParseDate(expected); err != nil {
		return nil, err
	}
	if e.ActualHarvestDate, err = datePtr(actual); err != nil {
		return nil, err
	}
	e.PositionX = intPtr(posX)
	e.PositionY = intPtr(posY)
	e.SpaceRequired = intPtr(space)
	e.SuccessionGroupID = strPtr(groupID)
	e.SuccessionInterval = intPtr(interval)
	e.Quantity = intPtr(qty)
	e.QuantityCompleted = intPtr(qtyC)
	return &e, nil
}

// GetByID retrieves a planting event, nil when absent
func (r *EventRepository) GetByID(id int64) (*models.PlantingEvent, error) {
	row := r.db.QueryRow("SELECT "+eventColumns+" FROM planting_events WHERE id = ?", id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get planting event: %w", err)
	}
	return e, nil
}

// List retrieves planting events with filtering. Date bounds keep any event
// whose milestone span intersects [StartDate, EndDate].
func (r *EventRepository) List(filter models.EventFilter) ([]models.PlantingEvent, error) {
	query := "SELECT " + eventColumns + " FROM planting_events"

	var conditions []string
	var args []interface{}

	if filter.GardenBedID > 0 {
		conditions = append(conditions, "garden_bed_id = ?")
		args = append(args, filter.GardenBedID)
	}
	if filter.PlantID > 0 {
		conditions = append(conditions, "plant_id = ?")
		args = append(args, filter.PlantID)
	}
	if filter.SuccessionGroupID != "" {
		conditions = append(conditions, "succession_group_id = ?")
		args = append(args, filter.SuccessionGroupID)
	}
	if filter.StartDate != "" {
		conditions = append(conditions, "COALESCE(actual_harvest_date, expected_harvest_date) >= ?")
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		conditions = append(conditions, "COALESCE(seed_start_date, direct_seed_date, transplant_date) <= ?")
		args = append(args, filter.EndDate)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY expected_harvest_date, id"

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.PageSize, (page-1)*filter.PageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query planting events: %w", err)
	}
	defer rows.Close()

	var events []models.PlantingEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planting event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// ListByBed retrieves every event of one bed, for conflict scans
func (r *EventRepository) ListByBed(bedID int64) ([]models.PlantingEvent, error) {
	return r.List(models.EventFilter{GardenBedID: bedID})
}

// ListByGroup retrieves every member of one succession group
func (r *EventRepository) ListByGroup(groupID string) ([]models.PlantingEvent, error) {
	return r.List(models.EventFilter{SuccessionGroupID: groupID})
}

// Update rewrites the mutable fields of a planting event
func (r *EventRepository) Update(e *models.PlantingEvent) error {
	e.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE planting_events SET
			variety = ?, garden_bed_id = ?,
			seed_start_date = ?, transplant_date = ?, direct_seed_date = ?,
			expected_harvest_date = ?, actual_harvest_date = ?,
			position_x = ?, position_y = ?, space_required = ?,
			quantity = ?, quantity_completed = ?, conflict_override = ?, completed = ?,
			updated_at = ?
		WHERE id = ?`,
		e.Variety, int64Arg(e.GardenBedID),
		dateArg(e.SeedStartDate), dateArg(e.TransplantDate), dateArg(e.DirectSeedDate),
		e.ExpectedHarvestDate.String(), dateArg(e.ActualHarvestDate),
		intArg(e.PositionX), intArg(e.PositionY), intArg(e.SpaceRequired),
		intArg(e.Quantity), intArg(e.QuantityCompleted), e.ConflictOverride, e.Completed,
		e.UpdatedAt, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update planting event: %w", err)
	}
	return nil
}

// Delete removes a planting event
func (r *EventRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM planting_events WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete planting event: %w", err)
	}
	return nil
}

// BulkComplete marks every listed event complete in one transaction:
// quantity_completed is raised to quantity where a quantity is tracked, and
// the completed flag is set regardless. Missing ids roll the whole write back.
func (r *EventRepository) BulkComplete(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimRight(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, 0, len(ids)+1)
	for _, id := range ids {
		args = append(args, id)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin bulk complete: %w", err)
	}

	var found int
	if err := tx.QueryRow("SELECT COUNT(*) FROM planting_events WHERE id IN ("+placeholders+")", args...).Scan(&found); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to count bulk complete targets: %w", err)
	}
	if found != len(ids) {
		tx.Rollback()
		return sql.ErrNoRows
	}

	updateArgs := append([]interface{}{time.Now().UTC()}, args...)
	if _, err := tx.Exec(`
		UPDATE planting_events SET
			quantity_completed = CASE WHEN quantity IS NOT NULL THEN quantity ELSE quantity_completed END,
			completed = 1,
			updated_at = ?
		WHERE id IN (`+placeholders+`)`, updateArgs...); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to bulk complete events: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk complete: %w", err)
	}
	return nil
}
