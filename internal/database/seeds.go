package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

// SeedCountries upserts one row per configured country so fee snapshots
// can reference them. Rows for countries removed from the rate table are
// kept because old snapshots still point at them.
func SeedCountries(ctx context.Context, pool *pgxpool.Pool, rates *pricing.RateTable) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, code := range rates.Countries() {
		c, _ := rates.Country(code)
		_, err := tx.Exec(ctx,
			`INSERT INTO countries (code, name, currency, cross_border)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO UPDATE
			SET name = EXCLUDED.name, currency = EXCLUDED.currency, cross_border = EXCLUDED.cross_border`,
			code, c.Name, c.Currency, rates.IsCrossBorderCountry(code))
		if err != nil {
			return fmt.Errorf("upsert country %s: %w", code, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	log.Info().Int("count", len(rates.Countries())).Msg("seeded countries")
	return nil
}
