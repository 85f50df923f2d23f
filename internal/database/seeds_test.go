package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

func TestSeedCountries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	MigrationsDir = "file://../../migrations"
	t.Cleanup(func() { MigrationsDir = "file://migrations" })

	dbURL := getTestDBURL()
	pool := getTestPool(t)
	defer pool.Close()
	ctx := context.Background()

	_ = RollbackMigrations(dbURL)
	require.NoError(t, RunMigrations(dbURL))

	rates := pricing.MustDefaultRateTable()

	t.Run("seed inserts every configured country", func(t *testing.T) {
		require.NoError(t, SeedCountries(ctx, pool, rates))

		var count int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM countries").Scan(&count))
		assert.Equal(t, len(rates.Countries()), count)

		var crossBorder int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM countries WHERE cross_border").Scan(&crossBorder))
		assert.Equal(t, len(rates.CrossBorderCountries()), crossBorder)
	})

	t.Run("seed is idempotent", func(t *testing.T) {
		require.NoError(t, SeedCountries(ctx, pool, rates))

		var count int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM countries").Scan(&count))
		assert.Equal(t, len(rates.Countries()), count)
	})

	_ = RollbackMigrations(dbURL)
}
