package pricing

import (
	"fmt"
	"sort"
	"strings"
)

type ProcessorFee struct {
	PercentRate float64 `mapstructure:"percent_rate" json:"percent_rate"`
	FixedMinor  int64   `mapstructure:"fixed_minor" json:"fixed_minor"`
}

type CurrencyConfig struct {
	ProcessorFee   ProcessorFee `mapstructure:"processor_fee" json:"processor_fee"`
	MinMarginMinor int64        `mapstructure:"min_margin_minor" json:"min_margin_minor"`
	MinorExponent  int32        `mapstructure:"minor_exponent" json:"minor_exponent"`
	// PerUSD is a display exchange rate: units of this currency per one USD.
	PerUSD      float64 `mapstructure:"per_usd" json:"per_usd"`
	DisplayStep int64   `mapstructure:"display_step" json:"display_step"`
}

// CountryConfig holds the per-country cost assumptions. Fixed amounts are
// in USD cents; the processing percent and fixed fee come from the
// country's currency entry.
type CountryConfig struct {
	Name                   string   `mapstructure:"name" json:"name"`
	Aliases                []string `mapstructure:"aliases" json:"aliases,omitempty"`
	Currency               string   `mapstructure:"currency" json:"currency"`
	BillingPercent         float64  `mapstructure:"billing_percent" json:"billing_percent"`
	PayoutPercent          float64  `mapstructure:"payout_percent" json:"payout_percent"`
	PayoutFixedCents       int64    `mapstructure:"payout_fixed_cents" json:"payout_fixed_cents"`
	CrossBorderPercent     float64  `mapstructure:"cross_border_percent" json:"cross_border_percent"`
	IntlMix                float64  `mapstructure:"intl_mix" json:"intl_mix"`
	MonthlyAccountFeeCents int64    `mapstructure:"monthly_account_fee_cents" json:"monthly_account_fee_cents"`
}

// RateConfig is the plain-data form of a RateTable, suitable for decoding
// from configuration files.
type RateConfig struct {
	PlatformFeeRate       float64                   `mapstructure:"platform_fee_rate"`
	CrossBorderBuffer     float64                   `mapstructure:"cross_border_buffer"`
	IntlCardRate          float64                   `mapstructure:"intl_card_rate"`
	FXRate                float64                   `mapstructure:"fx_rate"`
	PurposeRates          map[string]float64        `mapstructure:"purpose_rates"`
	CrossBorderCountries  []string                  `mapstructure:"cross_border_countries"`
	DefaultProcessorFee   ProcessorFee              `mapstructure:"default_processor_fee"`
	DefaultMinMarginMinor int64                     `mapstructure:"default_min_margin_minor"`
	MinimumStepUSD        int64                     `mapstructure:"minimum_step_usd"`
	DomesticFloorUSD      int64                     `mapstructure:"domestic_floor_usd"`
	CrossBorderFloorUSD   int64                     `mapstructure:"cross_border_floor_usd"`
	FeeModel              string                    `mapstructure:"fee_model"`
	Currencies            map[string]CurrencyConfig `mapstructure:"currencies"`
	Countries             map[string]CountryConfig  `mapstructure:"countries"`
}

// RateTable is the immutable, validated rate table. It is safe for
// concurrent use.
type RateTable struct {
	platformFeeRate     float64
	crossBorderBuffer   float64
	intlCardRate        float64
	fxRate              float64
	purposeRates        map[Purpose]float64
	crossBorder         map[string]struct{}
	defaultProcessorFee ProcessorFee
	defaultMinMargin    int64
	minimumStepUSD      int64
	domesticFloorUSD    int64
	crossBorderFloorUSD int64
	feeModel            string
	currencies          map[string]CurrencyConfig
	countries           map[string]CountryConfig
	names               map[string]string
}

func NewRateTable(cfg RateConfig) (*RateTable, error) {
	rt := &RateTable{
		platformFeeRate:     cfg.PlatformFeeRate,
		crossBorderBuffer:   cfg.CrossBorderBuffer,
		intlCardRate:        cfg.IntlCardRate,
		fxRate:              cfg.FXRate,
		purposeRates:        make(map[Purpose]float64, len(cfg.PurposeRates)),
		crossBorder:         make(map[string]struct{}, len(cfg.CrossBorderCountries)),
		defaultProcessorFee: cfg.DefaultProcessorFee,
		defaultMinMargin:    cfg.DefaultMinMarginMinor,
		minimumStepUSD:      cfg.MinimumStepUSD,
		domesticFloorUSD:    cfg.DomesticFloorUSD,
		crossBorderFloorUSD: cfg.CrossBorderFloorUSD,
		feeModel:            cfg.FeeModel,
		currencies:          make(map[string]CurrencyConfig, len(cfg.Currencies)),
		countries:           make(map[string]CountryConfig, len(cfg.Countries)),
		names:               make(map[string]string),
	}
	if rt.feeModel == "" {
		rt.feeModel = FeeModelSplitV1
	}

	var problems []string
	addProblem := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if !isRate(cfg.PlatformFeeRate) {
		addProblem("platform_fee_rate %v must be in (0,1)", cfg.PlatformFeeRate)
	}
	if cfg.CrossBorderBuffer < 0 || cfg.PlatformFeeRate+cfg.CrossBorderBuffer >= 1 {
		addProblem("cross_border_buffer %v out of range", cfg.CrossBorderBuffer)
	}
	if cfg.IntlCardRate < 0 || cfg.FXRate < 0 {
		addProblem("intl_card_rate and fx_rate must not be negative")
	}
	if cfg.MinimumStepUSD <= 0 {
		addProblem("minimum_step_usd must be positive")
	}
	if cfg.DomesticFloorUSD <= 0 || cfg.CrossBorderFloorUSD <= 0 {
		addProblem("minimum floors must be positive")
	}
	if !isRate(cfg.DefaultProcessorFee.PercentRate) || cfg.DefaultProcessorFee.FixedMinor < 0 {
		addProblem("default_processor_fee is invalid")
	}

	for name, rate := range cfg.PurposeRates {
		p, err := ParsePurpose(name)
		if err != nil {
			addProblem("purpose_rates: %v", err)
			continue
		}
		if !isRate(rate) {
			addProblem("purpose_rates[%s] %v must be in (0,1)", p, rate)
			continue
		}
		rt.purposeRates[p] = rate
	}

	for code, c := range cfg.Currencies {
		code = strings.ToUpper(strings.TrimSpace(code))
		if !isRate(c.ProcessorFee.PercentRate) || c.ProcessorFee.FixedMinor < 0 {
			addProblem("currency %s: invalid processor fee", code)
		}
		if c.PerUSD <= 0 {
			addProblem("currency %s: per_usd must be positive", code)
		}
		if c.DisplayStep <= 0 {
			addProblem("currency %s: display_step must be positive", code)
		}
		if c.MinorExponent < 0 || c.MinorExponent > 4 {
			addProblem("currency %s: minor_exponent %d out of range", code, c.MinorExponent)
		}
		rt.currencies[code] = c
	}

	for code, c := range cfg.Countries {
		code = strings.ToUpper(strings.TrimSpace(code))
		c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
		if len(code) != 2 {
			addProblem("country %q: expected ISO 3166-1 alpha-2 code", code)
		}
		if _, ok := rt.currencies[c.Currency]; !ok {
			addProblem("country %s: currency %q not in currency table", code, c.Currency)
		}
		if c.IntlMix < 0 || c.IntlMix > 1 {
			addProblem("country %s: intl_mix %v must be in [0,1]", code, c.IntlMix)
		}
		if c.BillingPercent < 0 || c.PayoutPercent < 0 || c.CrossBorderPercent < 0 {
			addProblem("country %s: percent fees must not be negative", code)
		}
		if c.PayoutFixedCents < 0 || c.MonthlyAccountFeeCents < 0 {
			addProblem("country %s: fixed fees must not be negative", code)
		}
		rt.countries[code] = c
		addName := func(name string) {
			key := foldName(name)
			if prev, ok := rt.names[key]; ok && prev != code {
				addProblem("country %s: name %q already maps to %s", code, name, prev)
				return
			}
			rt.names[key] = code
		}
		addName(code)
		if c.Name != "" {
			addName(c.Name)
		}
		for _, alias := range c.Aliases {
			addName(alias)
		}
	}

	for _, code := range cfg.CrossBorderCountries {
		code = strings.ToUpper(strings.TrimSpace(code))
		if _, ok := rt.countries[code]; !ok {
			addProblem("cross-border country %q is not configured", code)
			continue
		}
		rt.crossBorder[code] = struct{}{}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, fmt.Errorf("%w: %s", ErrInvalidRateTable, strings.Join(problems, "; "))
	}
	return rt, nil
}

// MustDefaultRateTable builds the built-in table and panics if it does not
// validate.
func MustDefaultRateTable() *RateTable {
	rt, err := NewRateTable(DefaultRateConfig())
	if err != nil {
		panic(err)
	}
	return rt
}

func isRate(v float64) bool {
	return v > 0 && v < 1
}

func (rt *RateTable) PlatformFeeRate() float64 { return rt.platformFeeRate }

// SplitRate is the share charged to each side of a domestic transaction.
func (rt *RateTable) SplitRate() float64 { return rt.platformFeeRate / 2 }

func (rt *RateTable) CrossBorderBuffer() float64 { return rt.crossBorderBuffer }

func (rt *RateTable) CrossBorderRate() float64 { return rt.platformFeeRate + rt.crossBorderBuffer }

func (rt *RateTable) FeeModel() string { return rt.feeModel }

// PurposeRate returns the total platform rate for a purpose tier, falling
// back to the platform fee rate when the tier has no override.
func (rt *RateTable) PurposeRate(p Purpose) float64 {
	if r, ok := rt.purposeRates[p]; ok {
		return r
	}
	return rt.platformFeeRate
}

// IsCrossBorderCountry accepts an ISO code, display name or alias.
func (rt *RateTable) IsCrossBorderCountry(country string) bool {
	if _, ok := rt.crossBorder[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return true
	}
	code, ok := rt.names[foldName(country)]
	if !ok {
		return false
	}
	_, ok = rt.crossBorder[code]
	return ok
}

func (rt *RateTable) CrossBorderCountries() []string {
	out := make([]string, 0, len(rt.crossBorder))
	for code := range rt.crossBorder {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Countries returns the configured ISO codes in sorted order.
func (rt *RateTable) Countries() []string {
	out := make([]string, 0, len(rt.countries))
	for code := range rt.countries {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func (rt *RateTable) Country(code string) (CountryConfig, bool) {
	c, ok := rt.countries[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

func (rt *RateTable) Currency(code string) (CurrencyConfig, bool) {
	c, ok := rt.currencies[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// ProcessorFee returns the processor fee estimate for a currency. For an
// unknown currency it returns the default estimate together with an error
// wrapping ErrUnknownCurrency, so callers can decide whether to proceed.
func (rt *RateTable) ProcessorFee(currency string) (ProcessorFee, error) {
	if c, ok := rt.Currency(currency); ok {
		return c.ProcessorFee, nil
	}
	return rt.defaultProcessorFee, fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
}

// MinMargin follows the same fallback contract as ProcessorFee.
func (rt *RateTable) MinMargin(currency string) (int64, error) {
	if c, ok := rt.Currency(currency); ok {
		return c.MinMarginMinor, nil
	}
	return rt.defaultMinMargin, fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
}

// RatesView is the read-only document served to clients that display
// fee information.
type RatesView struct {
	FeeModel             string             `json:"fee_model"`
	FeeMode              string             `json:"fee_mode"`
	PlatformFeeRate      float64            `json:"platform_fee_rate"`
	SplitRate            float64            `json:"split_rate"`
	CrossBorderBuffer    float64            `json:"cross_border_buffer"`
	CrossBorderRate      float64            `json:"cross_border_rate"`
	CrossBorderSplitRate float64            `json:"cross_border_split_rate"`
	PurposeRates         map[string]float64 `json:"purpose_rates"`
	CrossBorderCountries []string           `json:"cross_border_countries"`
	MinimumStepUSD       int64              `json:"minimum_step_usd"`
	DomesticFloorUSD     int64              `json:"domestic_floor_usd"`
	CrossBorderFloorUSD  int64              `json:"cross_border_floor_usd"`
}

func (rt *RateTable) View() RatesView {
	purposes := make(map[string]float64, len(Purposes))
	for _, p := range Purposes {
		purposes[string(p)] = rt.PurposeRate(p)
	}
	return RatesView{
		FeeModel:             rt.feeModel,
		FeeMode:              FeeModeSplit,
		PlatformFeeRate:      rt.platformFeeRate,
		SplitRate:            rt.SplitRate(),
		CrossBorderBuffer:    rt.crossBorderBuffer,
		CrossBorderRate:      rt.CrossBorderRate(),
		CrossBorderSplitRate: rt.CrossBorderRate() / 2,
		PurposeRates:         purposes,
		CrossBorderCountries: rt.CrossBorderCountries(),
		MinimumStepUSD:       rt.minimumStepUSD,
		DomesticFloorUSD:     rt.domesticFloorUSD,
		CrossBorderFloorUSD:  rt.crossBorderFloorUSD,
	}
}
