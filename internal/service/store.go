package service

import (
	"context"

	"github.com/anyulbade/creator-fee-engine/internal/model"
)

// SnapshotStore is implemented by repository.FeeSnapshotRepository.
type SnapshotStore interface {
	Insert(ctx context.Context, s *model.FeeSnapshot) error
	FindByPaymentID(ctx context.Context, paymentID string) (*model.FeeSnapshot, error)
	List(ctx context.Context, limit, offset int) ([]*model.FeeSnapshot, error)
	Count(ctx context.Context) (int, error)
	TotalsByCurrency(ctx context.Context) ([]model.CurrencyTotals, error)
}
