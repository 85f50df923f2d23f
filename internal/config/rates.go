package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/anyulbade/creator-fee-engine/internal/pricing"
)

// LoadRates builds the rate table. With an empty path the built-in table is
// used; otherwise keys present in the YAML (or JSON/TOML) file override the
// built-in values. Currency and country entries are replaced whole, so an
// overridden country must list all of its fields.
func LoadRates(path string) (*pricing.RateTable, error) {
	cfg := pricing.DefaultRateConfig()
	if path == "" {
		return pricing.NewRateTable(cfg)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rates file: %w", err)
	}

	var override pricing.RateConfig
	if err := v.Unmarshal(&override); err != nil {
		return nil, fmt.Errorf("decode rates file: %w", err)
	}
	mergeRates(&cfg, &override, v)

	rt, err := pricing.NewRateTable(cfg)
	if err != nil {
		return nil, fmt.Errorf("rates file %s: %w", path, err)
	}
	return rt, nil
}

func mergeRates(dst, src *pricing.RateConfig, v *viper.Viper) {
	if v.IsSet("platform_fee_rate") {
		dst.PlatformFeeRate = src.PlatformFeeRate
	}
	if v.IsSet("cross_border_buffer") {
		dst.CrossBorderBuffer = src.CrossBorderBuffer
	}
	if v.IsSet("intl_card_rate") {
		dst.IntlCardRate = src.IntlCardRate
	}
	if v.IsSet("fx_rate") {
		dst.FXRate = src.FXRate
	}
	if v.IsSet("cross_border_countries") {
		dst.CrossBorderCountries = src.CrossBorderCountries
	}
	if v.IsSet("default_processor_fee") {
		dst.DefaultProcessorFee = src.DefaultProcessorFee
	}
	if v.IsSet("default_min_margin_minor") {
		dst.DefaultMinMarginMinor = src.DefaultMinMarginMinor
	}
	if v.IsSet("minimum_step_usd") {
		dst.MinimumStepUSD = src.MinimumStepUSD
	}
	if v.IsSet("domestic_floor_usd") {
		dst.DomesticFloorUSD = src.DomesticFloorUSD
	}
	if v.IsSet("cross_border_floor_usd") {
		dst.CrossBorderFloorUSD = src.CrossBorderFloorUSD
	}
	if v.IsSet("fee_model") {
		dst.FeeModel = src.FeeModel
	}

	for name, rate := range src.PurposeRates {
		dst.PurposeRates[strings.ToLower(name)] = rate
	}
	for code, c := range src.Currencies {
		dst.Currencies[strings.ToUpper(code)] = c
	}
	for code, c := range src.Countries {
		dst.Countries[strings.ToUpper(code)] = c
	}
}
