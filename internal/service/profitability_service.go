package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

var DefaultSubscriberCounts = []int{1, 5, 20, 100}

type ProfitabilityRow struct {
	Country   string                   `json:"country"`
	Breakdown pricing.FeeBreakdown     `json:"breakdown"`
	Minimums  []pricing.DynamicMinimum `json:"minimums"`
	Error     string                   `json:"error,omitempty"`
}

type ProfitabilityReport struct {
	SubscriberCounts []int              `json:"subscriber_counts"`
	Rows             []ProfitabilityRow `json:"rows"`
	Unprofitable     []string           `json:"unprofitable"`
}

type ProfitabilityService struct {
	engine *pricing.Engine
}

func NewProfitabilityService(engine *pricing.Engine) *ProfitabilityService {
	return &ProfitabilityService{engine: engine}
}

// Report computes the breakdown and minimum ladder for every configured
// country. Countries whose fees exceed the platform rate are listed rather
// than failing the whole report.
func (s *ProfitabilityService) Report(ctx context.Context, subscriberCounts []int) (*ProfitabilityReport, error) {
	if len(subscriberCounts) == 0 {
		subscriberCounts = DefaultSubscriberCounts
	}
	for _, n := range subscriberCounts {
		if n < 0 {
			return nil, fmt.Errorf("%w: %d", pricing.ErrInvalidSubscriberCount, n)
		}
	}

	countries := s.engine.Rates().Countries()
	rows := make([]ProfitabilityRow, len(countries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, code := range countries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := s.row(code, subscriberCounts)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &ProfitabilityReport{
		SubscriberCounts: subscriberCounts,
		Rows:             rows,
		Unprofitable:     []string{},
	}
	for _, r := range rows {
		if !r.Breakdown.Profitable() {
			report.Unprofitable = append(report.Unprofitable, r.Country)
		}
	}
	return report, nil
}

func (s *ProfitabilityService) row(code string, subscriberCounts []int) (ProfitabilityRow, error) {
	b, err := s.engine.FeeBreakdown(code)
	if err != nil {
		return ProfitabilityRow{}, err
	}
	row := ProfitabilityRow{Country: code, Breakdown: b, Minimums: []pricing.DynamicMinimum{}}

	mins, err := s.engine.Minimums(code, subscriberCounts...)
	if errors.Is(err, pricing.ErrUnprofitableConfiguration) {
		log.Error().
			Err(err).
			Str("country", code).
			Float64("net_margin_rate", b.NetMarginRate).
			Msg("country fees exceed platform rate")
		row.Error = err.Error()
		return row, nil
	}
	if err != nil {
		return ProfitabilityRow{}, err
	}
	row.Minimums = mins
	return row, nil
}
