package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents one schema migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered schema history; the store schema ships with the
// binary. Milestone dates are TEXT in YYYY-MM-DD so range filters can use
// plain string comparison.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_plants",
		SQL: `
			CREATE TABLE IF NOT EXISTS plants (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				category TEXT NOT NULL DEFAULT '',
				weeks_to_start_before_anchor INTEGER NOT NULL DEFAULT 0,
				days_to_maturity INTEGER NOT NULL,
				spacing_inches INTEGER NOT NULL,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
	},
	{
		Version: 2,
		Name:    "create_garden_beds",
		SQL: `
			CREATE TABLE IF NOT EXISTS garden_beds (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				width_inches INTEGER NOT NULL,
				length_inches INTEGER NOT NULL,
				grid_cell_size_inches INTEGER NOT NULL DEFAULT 12,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
	},
	{
		Version: 3,
		Name:    "create_planting_events",
		SQL: `
			CREATE TABLE IF NOT EXISTS planting_events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				plant_id INTEGER NOT NULL REFERENCES plants(id),
				variety TEXT NOT NULL DEFAULT '',
				garden_bed_id INTEGER REFERENCES garden_beds(id),
				seed_start_date TEXT,
				transplant_date TEXT,
				direct_seed_date TEXT,
				expected_harvest_date TEXT NOT NULL,
				actual_harvest_date TEXT,
				position_x INTEGER,
				position_y INTEGER,
				space_required INTEGER,
				succession_group_id TEXT,
				succession_interval INTEGER,
				quantity INTEGER,
				quantity_completed INTEGER,
				conflict_override INTEGER NOT NULL DEFAULT 0,
				completed INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
	},
	{
		Version: 4,
		Name:    "index_planting_events",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_events_bed ON planting_events(garden_bed_id);
			CREATE INDEX IF NOT EXISTS idx_events_group ON planting_events(succession_group_id);
			CREATE INDEX IF NOT EXISTS idx_events_harvest ON planting_events(expected_harvest_date)`,
	},
}

// Migrate applies pending migrations in version order
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
		log.Printf("[Database] Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
