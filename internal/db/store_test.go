package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	return gdb
}

func TestListProductsEmptyStore(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, gdb.AutoMigrate(&models.Product{}))

	items, err := NewStore(gdb).ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestListProductsReturnsSeedInOrder(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, Reset(gdb))

	items, err := NewStore(gdb).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, len(Seed))
	for i, p := range items {
		assert.Equal(t, Seed[i].ID, p.ID)
		assert.Equal(t, Seed[i].Name, p.Name)
		assert.Equal(t, Seed[i].Price, p.Price)
	}
}

func TestGetProductSeedLiteral(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, Reset(gdb))

	p, err := NewStore(gdb).GetProduct(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, "High performance laptop", p.Description)
	assert.Equal(t, 103000.00, p.Price)
	assert.Equal(t, "https://your-bucket.s3.amazonaws.com/laptop.jpg", p.ImageURL)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestGetProductMissing(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, Reset(gdb))

	p, err := NewStore(gdb).GetProduct(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestUpsertKeepsExtraRows(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, Reset(gdb))

	extra := models.Product{ID: 42, Name: "Webcam", Price: 2500.00}
	require.NoError(t, gdb.Create(&extra).Error)

	// mangle a seed row, upsert must restore it without touching id 42
	require.NoError(t, gdb.Model(&models.Product{}).Where("id = ?", 1).
		Update("name", "Broken").Error)
	require.NoError(t, Upsert(gdb))

	store := NewStore(gdb)
	p, err := store.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Laptop", p.Name)

	kept, err := store.GetProduct(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, "Webcam", kept.Name)
}

func TestResetDropsExtraRows(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, Reset(gdb))
	require.NoError(t, gdb.Create(&models.Product{ID: 42, Name: "Webcam"}).Error)

	require.NoError(t, Reset(gdb))

	items, err := NewStore(gdb).ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, len(Seed))
}
