package repository

import (
	"context"
	"testing"
	"time"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB spins up an in-memory sqlite database with the full schema.
// The CGO-free glebarez driver keeps `go test` self-contained.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.HistoryEntry{},
		&model.FieldLocation{},
		&model.Setting{},
		&model.SiteAuth{},
	))
	return db
}

func TestProductRepo_CRUDAndNaturalOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	var ids []uuid.UUID
	for i, name := range []string{"Carrots", "Kale", "Tomatoes"} {
		p := &model.Product{
			Name:          name,
			FieldLocation: "North Field",
			CurrentStock:  i,
			// creation timestamps must be distinct for a stable order
			CreatedAt: time.Now().Add(time.Duration(i) * time.Millisecond),
		}
		require.NoError(t, repo.Create(ctx, p))
		ids = append(ids, p.ID)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := range list {
		assert.Equal(t, ids[i], list[i].ID)
	}

	found, err := repo.FindByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "Kale", found.Name)

	found.CurrentStock = 99
	require.NoError(t, repo.Update(ctx, found))
	found, err = repo.FindByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, 99, found.CurrentStock)

	n, err := repo.CountByLocation(ctx, "North Field")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	require.NoError(t, repo.Delete(ctx, ids[0]))
	_, err = repo.FindByID(ctx, ids[0])
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// deleting again reports not found
	assert.ErrorIs(t, repo.Delete(ctx, ids[0]), gorm.ErrRecordNotFound)
}

func TestHistoryRepo_FiltersAndPagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	productA := uuid.New()
	productB := uuid.New()
	base := time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)

	entries := []model.HistoryEntry{
		{ProductID: productA, ChangedField: model.FieldCurrentStock, Location: "North Field", Change: 5, NewValue: 5, CreatedAt: base},
		{ProductID: productA, ChangedField: model.FieldWashInventory, Location: "North Field", Change: 3, NewValue: 3, CreatedAt: base.Add(time.Hour)},
		{ProductID: productA, ChangedField: model.FieldCurrentStock, Location: model.LocationWholesale, Change: -2, NewValue: 3, CreatedAt: base.Add(2 * time.Hour)},
		{ProductID: productB, ChangedField: model.FieldCurrentStock, Location: "Greenhouse 1", Change: 7, NewValue: 7, CreatedAt: base.Add(3 * time.Hour)},
		{ProductID: productB, ChangedField: model.FieldWashInventory, Location: model.LocationKitchen, Change: -1, NewValue: 6, CreatedAt: base.Add(26 * time.Hour)},
	}
	for i := range entries {
		require.NoError(t, repo.Create(ctx, &entries[i]))
	}

	// newest first
	all, total, err := repo.List(ctx, HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt))
	}

	// per product
	_, total, err = repo.List(ctx, HistoryFilter{ProductID: &productA})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// per tracked field
	_, total, err = repo.List(ctx, HistoryFilter{ChangedField: model.FieldWashInventory})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// reserved locations excluded
	_, total, err = repo.List(ctx, HistoryFilter{
		ExcludeLocations: []string{model.LocationWholesale, model.LocationKitchen},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// date window is inclusive of both ends
	start := base.Add(time.Hour)
	end := base.Add(3 * time.Hour)
	windowed, total, err := repo.List(ctx, HistoryFilter{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, windowed, 3)

	// pagination
	page1, total, err := repo.List(ctx, HistoryFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 2)
	page3, _, err := repo.List(ctx, HistoryFilter{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestLocationRepo_UniqueNames(t *testing.T) {
	db := openTestDB(t)
	repo := NewFieldLocationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.FieldLocation{Name: "North Field"}))
	assert.Error(t, repo.Create(ctx, &model.FieldLocation{Name: "North Field"}))

	require.NoError(t, repo.Create(ctx, &model.FieldLocation{Name: "Back Forty"}))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// alphabetical
	assert.Equal(t, "Back Forty", list[0].Name)
	assert.Equal(t, "North Field", list[1].Name)
}

func TestSettingRepo_Upsert(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, model.SettingRowOrder)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Upsert(ctx, model.SettingRowOrder, datatypes.JSON(`["a","b"]`)))
	s, err := repo.Get(ctx, model.SettingRowOrder)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(s.Value))

	// second upsert replaces, never duplicates
	require.NoError(t, repo.Upsert(ctx, model.SettingRowOrder, datatypes.JSON(`["b","a"]`)))
	s, err = repo.Get(ctx, model.SettingRowOrder)
	require.NoError(t, err)
	assert.JSONEq(t, `["b","a"]`, string(s.Value))

	var count int64
	require.NoError(t, db.Model(&model.Setting{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSiteAuthRepo_SingleRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewSiteAuthRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.SaveHash(ctx, "hash-one"))
	a, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hash-one", a.PasswordHash)

	require.NoError(t, repo.SaveHash(ctx, "hash-two"))
	a, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hash-two", a.PasswordHash)

	var count int64
	require.NoError(t, db.Model(&model.SiteAuth{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
