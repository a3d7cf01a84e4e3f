// seed_test.go - Tests for first-start fixture loading

package database

import (
	"os"
	"testing"

	"go-ecommerce-backend/config"
	"go-ecommerce-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSeedTestDB(t *testing.T) *config.Config {
	t.Helper()
	_ = os.Remove("test_seed.db")
	require.NoError(t, Connect("test_seed.db"))
	t.Cleanup(func() { _ = os.Remove("test_seed.db") })
	return &config.Config{
		DBPath:        "test_seed.db",
		AdminEmail:    "admin@dashboard.com",
		AdminPassword: "admin123",
	}
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, DB.Model(model).Count(&count).Error)
	return count
}

func TestSeedFixture(t *testing.T) {
	cfg := setupSeedTestDB(t)
	require.NoError(t, Seed(cfg))

	assert.Equal(t, int64(1), countRows(t, &models.Admin{}))
	assert.Equal(t, int64(4), countRows(t, &models.Category{}))
	assert.Equal(t, int64(4), countRows(t, &models.User{}))
	assert.Equal(t, int64(20), countRows(t, &models.Product{}))
	assert.Equal(t, int64(16), countRows(t, &models.Order{}))

	var admin models.Admin
	require.NoError(t, DB.First(&admin).Error)
	assert.True(t, admin.CheckPassword("admin123"))

	var stats struct{ Confirmed, Delivered int64 }
	require.NoError(t, DB.Model(&models.Order{}).Where("status = ?", models.OrderConfirmed).Count(&stats.Confirmed).Error)
	require.NoError(t, DB.Model(&models.Order{}).Where("status = ?", models.OrderDelivered).Count(&stats.Delivered).Error)
	assert.Equal(t, int64(8), stats.Confirmed)
	assert.Equal(t, int64(4), stats.Delivered)
}

func TestSeedIsIdempotent(t *testing.T) {
	cfg := setupSeedTestDB(t)
	require.NoError(t, Seed(cfg))
	require.NoError(t, Seed(cfg))

	// The admin row stays a singleton and nothing is duplicated.
	assert.Equal(t, int64(1), countRows(t, &models.Admin{}))
	assert.Equal(t, int64(4), countRows(t, &models.User{}))
	assert.Equal(t, int64(20), countRows(t, &models.Product{}))
	assert.Equal(t, int64(16), countRows(t, &models.Order{}))
}
