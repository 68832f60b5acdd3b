package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chananmeir/homestead-planner/internal/models"
)

func intp(v int) *int { return &v }

func newEvent(plantID int64, bedID *int64, sow, harvest models.Date) models.PlantingEvent {
	return models.PlantingEvent{
		PlantID:             plantID,
		GardenBedID:         bedID,
		DirectSeedDate:      &sow,
		ExpectedHarvestDate: harvest,
	}
}

func TestEventRepository_CreateAndGetRoundTrip(t *testing.T) {
	db := testDB(t)
	plant := seedPlant(t, db)
	bed := seedBed(t, db)
	repo := NewEventRepository(db)

	groupID := "0c9adf1e-1111-2222-3333-444455556666"
	e := newEvent(plant.ID, &bed.ID, models.NewDate(2025, 5, 1), models.NewDate(2025, 6, 20))
	e.Variety = "Buttercrunch"
	e.PositionX = intp(2)
	e.PositionY = intp(3)
	e.SpaceRequired = intp(1)
	e.SuccessionGroupID = &groupID
	e.SuccessionInterval = intp(14)
	e.Quantity = intp(10)
	e.ConflictOverride = true

	require.NoError(t, repo.Create(&e))
	require.NotZero(t, e.ID)

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, plant.ID, got.PlantID)
	assert.Equal(t, "Buttercrunch", got.Variety)
	require.NotNil(t, got.GardenBedID)
	assert.Equal(t, bed.ID, *got.GardenBedID)
	require.NotNil(t, got.DirectSeedDate)
	assert.Equal(t, "2025-05-01", got.DirectSeedDate.String())
	assert.Nil(t, got.SeedStartDate)
	assert.Nil(t, got.TransplantDate)
	assert.Equal(t, "2025-06-20", got.ExpectedHarvestDate.String())
	assert.Equal(t, 2, *got.PositionX)
	assert.Equal(t, 3, *got.PositionY)
	assert.Equal(t, groupID, *got.SuccessionGroupID)
	assert.Equal(t, 14, *got.SuccessionInterval)
	assert.Equal(t, 10, *got.Quantity)
	assert.Nil(t, got.QuantityCompleted)
	assert.True(t, got.ConflictOverride)
	assert.False(t, got.Completed)
}

func TestEventRepository_GetByIDMissing(t *testing.T) {
	db := testDB(t)
	got, err := NewEventRepository(db).GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEventRepository_CreateBatchRollsBackOnFailure(t *testing.T) {
	db := testDB(t)
	plant := seedPlant(t, db)
	repo := NewEventRepository(db)

	good := newEvent(plant.ID, nil, models.NewDate(2025, 5, 1), models.NewDate(2025, 6, 20))
	// Second draft violates the plant foreign key, the whole batch must fail.
	bad := newEvent(9999, nil, models.NewDate(2025, 5, 15), models.NewDate(2025, 7, 4))

	err := repo.CreateBatch([]models.PlantingEvent{good, bad})
	require.Error(t, err)

	events, err := repo.List(models.EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, events, "no draft of a failed batch may be persisted")
}

func TestEventRepository_ListFilters(t *testing.T) {
	db := testDB(t)
	plant := seedPlant(t, db)
	bed := seedBed(t, db)
	repo := NewEventRepository(db)

	groupID := "ab1:group"
	early := newEvent(plant.ID, &bed.ID, models.NewDate(2025, 4, 1), models.NewDate(2025, 5, 15))
	late := newEvent(plant.ID, &bed.ID, models.NewDate(2025, 8, 1), models.NewDate(2025, 9, 20))
	late.SuccessionGroupID = &groupID
	timeline := newEvent(plant.ID, nil, models.NewDate(2025, 4, 10), models.NewDate(2025, 6, 1))

	require.NoError(t, repo.Create(&early))
	require.NoError(t, repo.Create(&late))
	require.NoError(t, repo.Create(&timeline))

	byBed, err := repo.ListByBed(bed.ID)
	require.NoError(t, err)
	assert.Len(t, byBed, 2)

	byGroup, err := repo.ListByGroup(groupID)
	require.NoError(t, err)
	require.Len(t, byGroup, 1)
	assert.Equal(t, late.ID, byGroup[0].ID)

	// Window that only the early and timeline events intersect.
	windowed, err := repo.List(models.EventFilter{StartDate: "2025-05-01", EndDate: "2025-06-30"})
	require.NoError(t, err)
	assert.Len(t, windowed, 2)
}

func TestEventRepository_BulkComplete(t *testing.T) {
	db := testDB(t)
	plant := seedPlant(t, db)
	repo := NewEventRepository(db)

	var ids []int64
	for i := 0; i < 3; i++ {
		e := newEvent(plant.ID, nil, models.NewDate(2025, 5, 1+14*i), models.NewDate(2025, 6, 20))
		e.Quantity = intp(10)
		require.NoError(t, repo.Create(&e))
		ids = append(ids, e.ID)
	}
	untracked := newEvent(plant.ID, nil, models.NewDate(2025, 5, 1), models.NewDate(2025, 6, 20))
	require.NoError(t, repo.Create(&untracked))

	require.NoError(t, repo.BulkComplete(append(ids, untracked.ID)))

	for _, id := range ids {
		got, err := repo.GetByID(id)
		require.NoError(t, err)
		require.NotNil(t, got.QuantityCompleted)
		assert.Equal(t, 10, *got.QuantityCompleted)
		assert.True(t, got.Completed)
	}

	got, err := repo.GetByID(untracked.ID)
	require.NoError(t, err)
	assert.Nil(t, got.QuantityCompleted, "no quantity tracked, only the flag flips")
	assert.True(t, got.Completed)
}

func TestEventRepository_BulkCompleteMissingIDIsAtomic(t *testing.T) {
	db := testDB(t)
	plant := seedPlant(t, db)
	repo := NewEventRepository(db)

	e := newEvent(plant.ID, nil, models.NewDate(2025, 5, 1), models.NewDate(2025, 6, 20))
	e.Quantity = intp(10)
	require.NoError(t, repo.Create(&e))

	err := repo.BulkComplete([]int64{e.ID, 9999})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed, "partial bulk updates must not apply")
	assert.Nil(t, got.QuantityCompleted)
}

func TestEventRepository_UpdatePersistsCompletionFields(t *testing.T) {
	db := testDB(t)
	plant := seedPlant(t, db)
	repo := NewEventRepository(db)

	e := newEvent(plant.ID, nil, models.NewDate(2025, 5, 1), models.NewDate(2025, 6, 20))
	e.Quantity = intp(8)
	require.NoError(t, repo.Create(&e))

	actual := models.NewDate(2025, 6, 18)
	e.ActualHarvestDate = &actual
	e.QuantityCompleted = intp(5)
	require.NoError(t, repo.Update(&e))

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ActualHarvestDate)
	assert.Equal(t, "2025-06-18", got.ActualHarvestDate.String())
	assert.Equal(t, 5, *got.QuantityCompleted)
}
