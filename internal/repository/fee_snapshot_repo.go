package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/creator-fee-engine/internal/model"
)

type FeeSnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewFeeSnapshotRepository(pool *pgxpool.Pool) *FeeSnapshotRepository {
	return &FeeSnapshotRepository{pool: pool}
}

const snapshotColumns = `id, payment_id, country_code, currency, purpose, fee_model, fee_mode, cross_border, fee_rate,
	base_cents, gross_cents, net_cents, fee_cents, subscriber_fee_cents, creator_fee_cents, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*model.FeeSnapshot, error) {
	s := &model.FeeSnapshot{}
	err := row.Scan(&s.ID, &s.PaymentID, &s.CountryCode, &s.Currency, &s.Purpose, &s.FeeModel, &s.FeeMode,
		&s.CrossBorder, &s.FeeRate, &s.BaseCents, &s.GrossCents, &s.NetCents, &s.FeeCents,
		&s.SubscriberFeeCents, &s.CreatorFeeCents, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *FeeSnapshotRepository) Insert(ctx context.Context, s *model.FeeSnapshot) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO payment_fee_snapshots (payment_id, country_code, currency, purpose, fee_model, fee_mode, cross_border, fee_rate,
			base_cents, gross_cents, net_cents, fee_cents, subscriber_fee_cents, creator_fee_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at`,
		s.PaymentID, s.CountryCode, s.Currency, s.Purpose, s.FeeModel, s.FeeMode, s.CrossBorder, s.FeeRate,
		s.BaseCents, s.GrossCents, s.NetCents, s.FeeCents, s.SubscriberFeeCents, s.CreatorFeeCents,
	).Scan(&s.ID, &s.CreatedAt)
}

func (r *FeeSnapshotRepository) FindByPaymentID(ctx context.Context, paymentID string) (*model.FeeSnapshot, error) {
	return scanSnapshot(r.pool.QueryRow(ctx,
		`SELECT `+snapshotColumns+` FROM payment_fee_snapshots WHERE payment_id = $1`, paymentID))
}

func (r *FeeSnapshotRepository) List(ctx context.Context, limit, offset int) ([]*model.FeeSnapshot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+snapshotColumns+` FROM payment_fee_snapshots ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []*model.FeeSnapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *FeeSnapshotRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payment_fee_snapshots`).Scan(&n)
	return n, err
}

func (r *FeeSnapshotRepository) TotalsByCurrency(ctx context.Context) ([]model.CurrencyTotals, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT currency, COUNT(*), COALESCE(SUM(base_cents), 0), COALESCE(SUM(gross_cents), 0), COALESCE(SUM(fee_cents), 0)
		FROM payment_fee_snapshots
		GROUP BY currency
		ORDER BY currency`)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	var out []model.CurrencyTotals
	for rows.Next() {
		var t model.CurrencyTotals
		if err := rows.Scan(&t.Currency, &t.Count, &t.BaseCents, &t.GrossCents, &t.FeeCents); err != nil {
			return nil, fmt.Errorf("scan totals: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
