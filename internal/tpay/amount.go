package tpay

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// FormatAmount rounds amount to the nearest cent and renders it with exactly two
// fractional digits and a dot separator. The result is the string that is signed
// and sent to the gateway, so it must not be reformatted afterwards.
// The result carries no sign; callers reject non-positive amounts before formatting.
// Non-finite amounts format as an empty string.
func FormatAmount(amount float64) string {
	if !isFinite(amount) {
		return ""
	}

	return FormatDecimal(decimal.NewFromFloat(amount).Abs())
}

func FormatDecimal(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}

// ParseAmount parses a gateway amount string.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}

	return d, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
