package pricing

import "github.com/shopspring/decimal"

// MarginAssessment estimates what the platform keeps from a transaction
// after the payment processor's cut.
type MarginAssessment struct {
	ProcessorCostCents int64 `json:"processor_cost_cents"`
	PlatformNetCents   int64 `json:"platform_net_cents"`
	MinMarginCents     int64 `json:"min_margin_cents"`
	BelowMinMargin     bool  `json:"below_min_margin"`
	FallbackRates      bool  `json:"fallback_rates"`
}

// AssessMargin charges the processor fee of the result's currency against
// the gross amount. When the currency is not in the rate table the default
// estimates are used, FallbackRates is set and the ErrUnknownCurrency error
// is returned alongside the otherwise usable assessment.
func (e *Engine) AssessMargin(r FeeResult) (MarginAssessment, error) {
	fee, feeErr := e.rates.ProcessorFee(r.Currency)
	minMargin, _ := e.rates.MinMargin(r.Currency)

	variable := decimal.NewFromInt(r.GrossCents).Mul(decimal.NewFromFloat(fee.PercentRate)).Round(0).IntPart()
	cost := variable + fee.FixedMinor
	if r.GrossCents == 0 {
		cost = 0
	}
	net := r.FeeCents - cost

	return MarginAssessment{
		ProcessorCostCents: cost,
		PlatformNetCents:   net,
		MinMarginCents:     minMargin,
		BelowMinMargin:     net < minMargin,
		FallbackRates:      feeErr != nil,
	}, feeErr
}
