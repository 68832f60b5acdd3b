package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chananmeir/homestead-planner/internal/database"
	"github.com/chananmeir/homestead-planner/internal/models"
)

// testDB opens an isolated in-memory database with the schema applied
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	// An in-memory database lives inside a single connection.
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func seedPlant(t *testing.T, db *sql.DB) *models.PlantProfile {
	t.Helper()
	p := &models.PlantProfile{
		Name:                     "Lettuce",
		Category:                 "salad_greens",
		WeeksToStartBeforeAnchor: 4,
		DaysToMaturity:           50,
		SpacingInches:            6,
	}
	require.NoError(t, NewPlantRepository(db).Create(p))
	return p
}

func seedBed(t *testing.T, db *sql.DB) *models.GardenBed {
	t.Helper()
	b := &models.GardenBed{
		Name:         "North Bed",
		WidthInches:  48,
		LengthInches: 96,
	}
	require.NoError(t, NewBedRepository(db).Create(b))
	return b
}
