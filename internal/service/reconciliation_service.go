package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/creator-fee-engine/internal/dto"
	"github.com/anyulbade/creator-fee-engine/internal/model"
	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

const (
	IssueIdentity       = "identity_violation"
	IssueRecomputeDrift = "recompute_drift"
	IssueUnknownCountry = "unknown_country"
)

type ReconciliationIssue struct {
	PaymentID string `json:"payment_id"`
	Type      string `json:"type"`
	Detail    string `json:"detail"`
	// Expected is the fee under the current rate table, when it differs.
	Expected *pricing.FeeResult `json:"expected,omitempty"`
}

type ReconciliationReport struct {
	Checked    int                    `json:"checked"`
	Issues     []ReconciliationIssue  `json:"issues"`
	Totals     []model.CurrencyTotals `json:"totals"`
	Pagination dto.Pagination         `json:"pagination"`
}

type ReconciliationService struct {
	engine *pricing.Engine
	store  SnapshotStore
}

func NewReconciliationService(engine *pricing.Engine, store SnapshotStore) *ReconciliationService {
	return &ReconciliationService{engine: engine, store: store}
}

// Reconcile checks one page of stored snapshots against the fee identities
// and against a fresh quote under the current rate table.
func (s *ReconciliationService) Reconcile(ctx context.Context, p dto.PaginationParams) (*ReconciliationReport, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		snaps  []*model.FeeSnapshot
		totals []model.CurrencyTotals
		count  int
	)
	g.Go(func() error {
		var err error
		snaps, err = s.store.List(gctx, p.PageSize, p.Offset)
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totals, err = s.store.TotalsByCurrency(gctx)
		if err != nil {
			return fmt.Errorf("currency totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		count, err = s.store.Count(gctx)
		if err != nil {
			return fmt.Errorf("count snapshots: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		Checked:    len(snaps),
		Issues:     []ReconciliationIssue{},
		Totals:     totals,
		Pagination: dto.NewPagination(p.Page, p.PageSize, count),
	}
	if report.Totals == nil {
		report.Totals = []model.CurrencyTotals{}
	}
	for _, snap := range snaps {
		report.Issues = append(report.Issues, s.check(snap)...)
	}
	return report, nil
}

func (s *ReconciliationService) check(snap *model.FeeSnapshot) []ReconciliationIssue {
	var issues []ReconciliationIssue
	stored := snap.FeeResult()

	if err := stored.Validate(); err != nil {
		issues = append(issues, ReconciliationIssue{
			PaymentID: snap.PaymentID,
			Type:      IssueIdentity,
			Detail:    err.Error(),
		})
	}

	want, err := s.engine.Quote(snap.BaseCents, snap.CountryCode, stored.Purpose)
	if errors.Is(err, pricing.ErrUnknownCountry) {
		return append(issues, ReconciliationIssue{
			PaymentID: snap.PaymentID,
			Type:      IssueUnknownCountry,
			Detail:    fmt.Sprintf("country %q is no longer configured", snap.CountryCode),
		})
	}
	if err != nil {
		return append(issues, ReconciliationIssue{
			PaymentID: snap.PaymentID,
			Type:      IssueRecomputeDrift,
			Detail:    err.Error(),
		})
	}

	if want.SubscriberFeeCents != stored.SubscriberFeeCents ||
		want.CreatorFeeCents != stored.CreatorFeeCents ||
		want.Currency != stored.Currency {
		issues = append(issues, ReconciliationIssue{
			PaymentID: snap.PaymentID,
			Type:      IssueRecomputeDrift,
			Detail: fmt.Sprintf("stored fee %d %s, current table gives %d %s",
				stored.FeeCents, stored.Currency, want.FeeCents, want.Currency),
			Expected: &want,
		})
	}
	return issues
}
