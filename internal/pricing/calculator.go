package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Engine computes fees, breakdowns and minimum prices from a RateTable.
// It holds no mutable state.
type Engine struct {
	rates *RateTable
}

func NewEngine(rates *RateTable) *Engine {
	return &Engine{rates: rates}
}

func (e *Engine) Rates() *RateTable {
	return e.rates
}

// FeeResult is the per-transaction fee split. All amounts are in minor
// units of Currency and satisfy:
//
//	SubscriberFeeCents + CreatorFeeCents == FeeCents
//	GrossCents - NetCents == FeeCents
//	BaseCents + SubscriberFeeCents == GrossCents
//	BaseCents - CreatorFeeCents == NetCents
type FeeResult struct {
	BaseCents          int64   `json:"base_cents"`
	GrossCents         int64   `json:"gross_cents"`
	NetCents           int64   `json:"net_cents"`
	FeeCents           int64   `json:"fee_cents"`
	SubscriberFeeCents int64   `json:"subscriber_fee_cents"`
	CreatorFeeCents    int64   `json:"creator_fee_cents"`
	Currency           string  `json:"currency"`
	Purpose            Purpose `json:"purpose"`
	CrossBorder        bool    `json:"cross_border"`
	FeeRate            float64 `json:"fee_rate"`
	FeeModel           string  `json:"fee_model"`
	FeeMode            string  `json:"fee_mode"`
}

// Validate reports the first violated identity, if any.
func (r FeeResult) Validate() error {
	switch {
	case r.BaseCents < 0:
		return fmt.Errorf("%w: negative base %d", ErrInvalidAmount, r.BaseCents)
	case r.SubscriberFeeCents+r.CreatorFeeCents != r.FeeCents:
		return fmt.Errorf("subscriber fee %d + creator fee %d != fee %d", r.SubscriberFeeCents, r.CreatorFeeCents, r.FeeCents)
	case r.GrossCents-r.NetCents != r.FeeCents:
		return fmt.Errorf("gross %d - net %d != fee %d", r.GrossCents, r.NetCents, r.FeeCents)
	case r.BaseCents+r.SubscriberFeeCents != r.GrossCents:
		return fmt.Errorf("base %d + subscriber fee %d != gross %d", r.BaseCents, r.SubscriberFeeCents, r.GrossCents)
	case r.BaseCents-r.CreatorFeeCents != r.NetCents:
		return fmt.Errorf("base %d - creator fee %d != net %d", r.BaseCents, r.CreatorFeeCents, r.NetCents)
	}
	return nil
}

// CalculateServiceFee splits the platform fee between subscriber and
// creator. Each side is charged half of the purpose rate, plus half of the
// cross-border buffer when crossBorder is set. The currency is recorded on
// the result but does not affect the arithmetic.
func (e *Engine) CalculateServiceFee(baseCents int64, currency string, purpose Purpose, crossBorder bool) (FeeResult, error) {
	if baseCents < 0 || baseCents > maxAmountMinor {
		return FeeResult{}, fmt.Errorf("%w: %d", ErrInvalidAmount, baseCents)
	}
	purpose, err := ParsePurpose(string(purpose))
	if err != nil {
		return FeeResult{}, err
	}

	total := decimal.NewFromFloat(e.rates.PurposeRate(purpose))
	if crossBorder {
		total = total.Add(decimal.NewFromFloat(e.rates.crossBorderBuffer))
	}
	side := total.Div(decimal.NewFromInt(2))

	base := decimal.NewFromInt(baseCents)
	subscriberFee := base.Mul(side).Round(0).IntPart()
	creatorFee := base.Mul(side).Round(0).IntPart()
	fee := subscriberFee + creatorFee

	feeRate, _ := total.Float64()
	return FeeResult{
		BaseCents:          baseCents,
		GrossCents:         baseCents + subscriberFee,
		NetCents:           baseCents - creatorFee,
		FeeCents:           fee,
		SubscriberFeeCents: subscriberFee,
		CreatorFeeCents:    creatorFee,
		Currency:           strings.ToUpper(strings.TrimSpace(currency)),
		Purpose:            purpose,
		CrossBorder:        crossBorder,
		FeeRate:            feeRate,
		FeeModel:           e.rates.feeModel,
		FeeMode:            FeeModeSplit,
	}, nil
}

// Quote resolves country to its currency and cross-border status and
// calculates the fee in that currency.
func (e *Engine) Quote(baseCents int64, country string, purpose Purpose) (FeeResult, error) {
	code, err := e.rates.NormalizeCountry(country)
	if err != nil {
		return FeeResult{}, err
	}
	c := e.rates.countries[code]
	return e.CalculateServiceFee(baseCents, c.Currency, purpose, e.rates.IsCrossBorderCountry(code))
}
