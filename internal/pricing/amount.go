package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a major-unit amount such as "45.00" into minor units
// of currency. Unknown currencies are assumed to have two decimal places.
func (rt *RateTable) ParseAmount(s, currency string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxAmountLen {
		return 0, fmt.Errorf("%w: input longer than %d characters", ErrInvalidAmount, maxAmountLen)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	// Shift and Truncate allocate proportionally to the exponent.
	if e := d.Exponent(); e < -maxAmountExp || e > maxAmountExp {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}

	exp := int32(2)
	if c, ok := rt.Currency(currency); ok {
		exp = c.MinorExponent
	}
	minor := d.Shift(exp)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, exp)
	}
	if !minor.LessThanOrEqual(decimal.NewFromInt(maxAmountMinor)) {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}
	return minor.IntPart(), nil
}

// FormatAmount renders minor units as a major-unit string.
func (rt *RateTable) FormatAmount(minor int64, currency string) string {
	exp := int32(2)
	if c, ok := rt.Currency(currency); ok {
		exp = c.MinorExponent
	}
	return decimal.New(minor, -exp).StringFixed(exp)
}

const (
	maxAmountMinor = 1 << 53
	maxAmountLen   = 64
	maxAmountExp   = 18
)
