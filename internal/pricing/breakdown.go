package pricing

// FeeBreakdown decomposes the estimated variable costs of taking a payment
// for a creator in one country. Percentages are fractions of the gross
// amount; fixed amounts are USD cents.
type FeeBreakdown struct {
	Country                string  `json:"country"`
	CountryName            string  `json:"country_name"`
	Currency               string  `json:"currency"`
	CrossBorder            bool    `json:"cross_border"`
	PlatformFeeRate        float64 `json:"platform_fee_rate"`
	ProcessingPercent      float64 `json:"processing_percent"`
	BillingPercent         float64 `json:"billing_percent"`
	PayoutPercent          float64 `json:"payout_percent"`
	CrossBorderPercent     float64 `json:"cross_border_percent"`
	IntlCardPercent        float64 `json:"intl_card_percent"`
	FXPercent              float64 `json:"fx_percent"`
	TotalPercentFees       float64 `json:"total_percent_fees"`
	NetMarginRate          float64 `json:"net_margin_rate"`
	ProcessingFixedCents   float64 `json:"processing_fixed_cents"`
	PayoutFixedCents       int64   `json:"payout_fixed_cents"`
	MonthlyAccountFeeCents int64   `json:"monthly_account_fee_cents"`
	IntlMix                float64 `json:"intl_mix"`
}

// Profitable reports whether the platform keeps anything after percent fees.
func (b FeeBreakdown) Profitable() bool {
	return b.NetMarginRate > 0
}

// FeeBreakdown resolves the cost assumptions for a country given by ISO
// code or name. The net margin may be zero or negative for loss-making
// configurations; that is reported, not rejected, here.
func (e *Engine) FeeBreakdown(country string) (FeeBreakdown, error) {
	code, err := e.rates.NormalizeCountry(country)
	if err != nil {
		return FeeBreakdown{}, err
	}
	c := e.rates.countries[code]
	cur := e.rates.currencies[c.Currency]

	crossBorder := e.rates.IsCrossBorderCountry(code)
	platformRate := e.rates.platformFeeRate
	if crossBorder {
		platformRate = e.rates.CrossBorderRate()
	}

	intlCard := e.rates.intlCardRate * c.IntlMix
	fx := e.rates.fxRate * c.IntlMix
	total := cur.ProcessorFee.PercentRate + c.BillingPercent + c.PayoutPercent + c.CrossBorderPercent + intlCard + fx

	return FeeBreakdown{
		Country:                code,
		CountryName:            c.Name,
		Currency:               c.Currency,
		CrossBorder:            crossBorder,
		PlatformFeeRate:        platformRate,
		ProcessingPercent:      cur.ProcessorFee.PercentRate,
		BillingPercent:         c.BillingPercent,
		PayoutPercent:          c.PayoutPercent,
		CrossBorderPercent:     c.CrossBorderPercent,
		IntlCardPercent:        intlCard,
		FXPercent:              fx,
		TotalPercentFees:       total,
		NetMarginRate:          platformRate - total,
		ProcessingFixedCents:   toUSDCents(cur.ProcessorFee.FixedMinor, cur),
		PayoutFixedCents:       c.PayoutFixedCents,
		MonthlyAccountFeeCents: c.MonthlyAccountFeeCents,
		IntlMix:                c.IntlMix,
	}, nil
}

func toUSDCents(minor int64, cur CurrencyConfig) float64 {
	scale := 1.0
	for i := int32(0); i < cur.MinorExponent; i++ {
		scale *= 10
	}
	return float64(minor) * 100 / (scale * cur.PerUSD)
}
