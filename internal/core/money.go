package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundCurrency rounds v to cents. Every emitted balance and bucket sum
// passes through here so float drift never reaches the caller.
func RoundCurrency(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatAmount renders v with exactly two decimals, e.g. "-12.50".
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// ParseAmount converts a stored amount cell to a float. Blank cells are
// zero. Dot and comma decimal separators are accepted, as is a leading
// currency symbol. Negative values are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "$€£")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, nil
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		// thousands separators
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}
	f, _ := d.Float64()
	return f, nil
}
