package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/anyulbade/creator-fee-engine/internal/dto"
	"github.com/anyulbade/creator-fee-engine/internal/model"
	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

type SnapshotService struct {
	engine *pricing.Engine
	store  SnapshotStore
}

func NewSnapshotService(engine *pricing.Engine, store SnapshotStore) *SnapshotService {
	return &SnapshotService{engine: engine, store: store}
}

// Record prices a payment and stores the split so later audits see what was
// charged, even after the rate table changes.
func (s *SnapshotService) Record(ctx context.Context, paymentID string, req *dto.FeeSnapshotRequest) (*model.FeeSnapshot, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, &ValidationError{Field: "payment_id", Message: "is required"}
	}
	if req.AmountCents == nil {
		return nil, &ValidationError{Field: "amount_cents", Message: "is required"}
	}
	purpose, err := pricing.ParsePurpose(req.Purpose)
	if err != nil {
		return nil, err
	}
	country, err := s.engine.Rates().NormalizeCountry(req.Country)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Quote(*req.AmountCents, country, purpose)
	if err != nil {
		return nil, err
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("fee result for payment %s: %w", paymentID, err)
	}

	snap := model.NewFeeSnapshot(paymentID, country, result)
	if err := s.store.Insert(ctx, snap); err != nil {
		return nil, fmt.Errorf("insert fee snapshot: %w", err)
	}

	log.Info().
		Str("payment_id", paymentID).
		Str("country", country).
		Int64("fee_cents", snap.FeeCents).
		Msg("recorded fee snapshot")
	return snap, nil
}

func (s *SnapshotService) Get(ctx context.Context, paymentID string) (*model.FeeSnapshot, error) {
	snap, err := s.store.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("find fee snapshot: %w", err)
	}
	return snap, nil
}
