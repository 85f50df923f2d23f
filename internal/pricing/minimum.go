package pricing

import (
	"fmt"
	"math"
)

// DynamicMinimum is the lowest page price the platform accepts for a
// creator, in whole USD and whole units of the local currency.
type DynamicMinimum struct {
	Country         string  `json:"country"`
	Currency        string  `json:"currency"`
	SubscriberCount int     `json:"subscriber_count"`
	CrossBorder     bool    `json:"cross_border"`
	MinimumUSD      int64   `json:"minimum_usd"`
	MinimumLocal    int64   `json:"minimum_local"`
	FixedCents      float64 `json:"fixed_cents"`
	NetMarginRate   float64 `json:"net_margin_rate"`
	RawMinimumUSD   float64 `json:"raw_minimum_usd"`
	FloorUSD        int64   `json:"floor_usd"`
	FloorApplied    bool    `json:"floor_applied"`
}

// roundingSlack absorbs float noise so an exact multiple of the step does
// not round up to the next one.
const roundingSlack = 1e-9

// DynamicMinimum solves for the price at which the platform's net margin
// covers the fixed per-transaction costs, with the creator's monthly
// account fee spread across subscriberCount subscribers. A count of zero is
// treated as one subscriber.
//
// Cross-border countries always get the flat cross-border floor; domestic
// countries get the computed value rounded up to the minimum step, but
// never less than the domestic floor.
func (e *Engine) DynamicMinimum(country string, subscriberCount int) (DynamicMinimum, error) {
	if subscriberCount < 0 {
		return DynamicMinimum{}, fmt.Errorf("%w: %d", ErrInvalidSubscriberCount, subscriberCount)
	}
	b, err := e.FeeBreakdown(country)
	if err != nil {
		return DynamicMinimum{}, err
	}
	if !b.Profitable() {
		return DynamicMinimum{}, fmt.Errorf("%w: %s net margin rate %.4f (platform %.4f, fees %.4f)",
			ErrUnprofitableConfiguration, b.Country, b.NetMarginRate, b.PlatformFeeRate, b.TotalPercentFees)
	}

	subs := max(subscriberCount, 1)
	perSub := float64(b.MonthlyAccountFeeCents) / float64(subs)
	fixed := b.ProcessingFixedCents + float64(b.PayoutFixedCents) + perSub

	rawUSD := fixed / b.NetMarginRate / 100
	step := float64(e.rates.minimumStepUSD)
	rounded := int64(math.Ceil(rawUSD/step-roundingSlack)) * e.rates.minimumStepUSD

	m := DynamicMinimum{
		Country:         b.Country,
		Currency:        b.Currency,
		SubscriberCount: subscriberCount,
		CrossBorder:     b.CrossBorder,
		FixedCents:      fixed,
		NetMarginRate:   b.NetMarginRate,
		RawMinimumUSD:   rawUSD,
	}
	if b.CrossBorder {
		m.FloorUSD = e.rates.crossBorderFloorUSD
		m.MinimumUSD = m.FloorUSD
		m.FloorApplied = true
	} else {
		m.FloorUSD = e.rates.domesticFloorUSD
		m.MinimumUSD = max(rounded, m.FloorUSD)
		m.FloorApplied = rounded < m.FloorUSD
	}

	cur := e.rates.currencies[b.Currency]
	local := float64(m.MinimumUSD) * cur.PerUSD
	m.MinimumLocal = int64(math.Ceil(local/float64(cur.DisplayStep)-roundingSlack)) * cur.DisplayStep
	return m, nil
}

// Minimums computes a ladder of minimums for one country.
func (e *Engine) Minimums(country string, subscriberCounts ...int) ([]DynamicMinimum, error) {
	out := make([]DynamicMinimum, 0, len(subscriberCounts))
	for _, n := range subscriberCounts {
		m, err := e.DynamicMinimum(country, n)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
