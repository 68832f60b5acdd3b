package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chananmeir/homestead-planner/internal/database"
	"github.com/chananmeir/homestead-planner/internal/models"
	"github.com/chananmeir/homestead-planner/internal/repository"
)

type fixture struct {
	db       *sql.DB
	plants   *PlantService
	beds     *BedService
	events   *EventService
	conflict *ConflictService
	calendar *CalendarService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	// An in-memory database lives inside a single connection.
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })

	plantRepo := repository.NewPlantRepository(db)
	bedRepo := repository.NewBedRepository(db)
	eventRepo := repository.NewEventRepository(db)

	conflict := NewConflictService(eventRepo, bedRepo, plantRepo)
	return &fixture{
		db:       db,
		plants:   NewPlantService(plantRepo),
		beds:     NewBedService(bedRepo),
		events:   NewEventService(eventRepo, plantRepo, bedRepo, conflict),
		conflict: conflict,
		calendar: NewCalendarService(eventRepo, plantRepo),
	}
}

func (f *fixture) plant(t *testing.T, name, category string, weeks, maturity, spacing int) *models.PlantProfile {
	t.Helper()
	p, err := f.plants.Create(models.CreatePlantRequest{
		Name:                     name,
		Category:                 category,
		WeeksToStartBeforeAnchor: weeks,
		DaysToMaturity:           maturity,
		SpacingInches:            spacing,
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) bed(t *testing.T, name string, width, length int) *models.GardenBed {
	t.Helper()
	b, err := f.beds.Create(models.CreateBedRequest{
		Name:         name,
		WidthInches:  width,
		LengthInches: length,
	})
	require.NoError(t, err)
	return b
}

func intp(v int) *int { return &v }
