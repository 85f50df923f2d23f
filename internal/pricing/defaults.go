package pricing

const (
	FeeModelSplitV1 = "split_v1"
	FeeModeSplit    = "split"
)

// DefaultRateConfig returns the built-in rate table. Callers may modify the
// returned value before passing it to NewRateTable; every call returns a
// fresh copy.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		PlatformFeeRate:   0.09,
		CrossBorderBuffer: 0.015,
		IntlCardRate:      0.015,
		FXRate:            0.02,
		PurposeRates:      map[string]float64{},
		CrossBorderCountries: []string{
			"NG", "GH", "KE", "ZA", "CI",
		},
		DefaultProcessorFee:   ProcessorFee{PercentRate: 0.029, FixedMinor: 30},
		DefaultMinMarginMinor: 50,
		MinimumStepUSD:        5,
		DomesticFloorUSD:      5,
		CrossBorderFloorUSD:   45,
		FeeModel:              FeeModelSplitV1,
		Currencies: map[string]CurrencyConfig{
			"USD": {ProcessorFee: ProcessorFee{PercentRate: 0.029, FixedMinor: 30}, MinMarginMinor: 50, MinorExponent: 2, PerUSD: 1, DisplayStep: 5},
			"CAD": {ProcessorFee: ProcessorFee{PercentRate: 0.029, FixedMinor: 30}, MinMarginMinor: 70, MinorExponent: 2, PerUSD: 1.35, DisplayStep: 5},
			"GBP": {ProcessorFee: ProcessorFee{PercentRate: 0.015, FixedMinor: 20}, MinMarginMinor: 40, MinorExponent: 2, PerUSD: 0.79, DisplayStep: 5},
			"EUR": {ProcessorFee: ProcessorFee{PercentRate: 0.015, FixedMinor: 25}, MinMarginMinor: 50, MinorExponent: 2, PerUSD: 0.92, DisplayStep: 5},
			"AUD": {ProcessorFee: ProcessorFee{PercentRate: 0.0175, FixedMinor: 30}, MinMarginMinor: 75, MinorExponent: 2, PerUSD: 1.52, DisplayStep: 5},
			"NGN": {ProcessorFee: ProcessorFee{PercentRate: 0.015, FixedMinor: 10000}, MinMarginMinor: 50000, MinorExponent: 2, PerUSD: 1550, DisplayStep: 500},
			"GHS": {ProcessorFee: ProcessorFee{PercentRate: 0.0195, FixedMinor: 0}, MinMarginMinor: 500, MinorExponent: 2, PerUSD: 15.5, DisplayStep: 10},
			"KES": {ProcessorFee: ProcessorFee{PercentRate: 0.029, FixedMinor: 0}, MinMarginMinor: 5000, MinorExponent: 2, PerUSD: 129, DisplayStep: 100},
			"ZAR": {ProcessorFee: ProcessorFee{PercentRate: 0.029, FixedMinor: 100}, MinMarginMinor: 800, MinorExponent: 2, PerUSD: 18.2, DisplayStep: 10},
			"XOF": {ProcessorFee: ProcessorFee{PercentRate: 0.032, FixedMinor: 0}, MinMarginMinor: 300, MinorExponent: 0, PerUSD: 605, DisplayStep: 500},
		},
		Countries: map[string]CountryConfig{
			"US": {Name: "United States", Aliases: []string{"USA", "U.S.", "United States of America"}, Currency: "USD",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, IntlMix: 0.2, MonthlyAccountFeeCents: 200},
			"CA": {Name: "Canada", Currency: "CAD",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, IntlMix: 0.25, MonthlyAccountFeeCents: 200},
			"GB": {Name: "United Kingdom", Aliases: []string{"UK", "Great Britain", "England"}, Currency: "GBP",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, IntlMix: 0.3, MonthlyAccountFeeCents: 200},
			"IE": {Name: "Ireland", Currency: "EUR",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, IntlMix: 0.3, MonthlyAccountFeeCents: 200},
			"DE": {Name: "Germany", Currency: "EUR",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, IntlMix: 0.3, MonthlyAccountFeeCents: 200},
			"FR": {Name: "France", Currency: "EUR",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, IntlMix: 0.3, MonthlyAccountFeeCents: 200},
			"NL": {Name: "Netherlands", Aliases: []string{"Holland", "The Netherlands"}, Currency: "EUR",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, IntlMix: 0.3, MonthlyAccountFeeCents: 200},
			"AU": {Name: "Australia", Currency: "AUD",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, IntlMix: 0.25, MonthlyAccountFeeCents: 200},
			"NG": {Name: "Nigeria", Currency: "NGN",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, CrossBorderPercent: 0.01, IntlMix: 1, MonthlyAccountFeeCents: 200},
			"GH": {Name: "Ghana", Currency: "GHS",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, CrossBorderPercent: 0.01, IntlMix: 1, MonthlyAccountFeeCents: 200},
			"KE": {Name: "Kenya", Currency: "KES",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, CrossBorderPercent: 0.01, IntlMix: 1, MonthlyAccountFeeCents: 200},
			"ZA": {Name: "South Africa", Aliases: []string{"RSA"}, Currency: "ZAR",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, CrossBorderPercent: 0.01, IntlMix: 1, MonthlyAccountFeeCents: 200},
			"CI": {Name: "Côte d'Ivoire", Aliases: []string{"Ivory Coast"}, Currency: "XOF",
				BillingPercent: 0.007, PayoutPercent: 0.0025, PayoutFixedCents: 25, CrossBorderPercent: 0.01, IntlMix: 1, MonthlyAccountFeeCents: 200},
		},
	}
}
