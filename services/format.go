package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEUR formats a monetary amount for display in French notation:
// thousands grouped with narrow no-break spaces, comma decimal
// separator, trailing euro sign (e.g. "1 234,56 €"). The amount is
// rounded half-even to exactly 2 decimals here, at the display
// boundary, never earlier.
func FormatEUR(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	raw := amount.Abs().StringFixedBank(2)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := applyFrenchGrouping(intPart) + "," + decPart + " €"
	if negative {
		result = "-" + result
	}
	return result
}

// applyFrenchGrouping inserts a narrow no-break space every 3 digits
// from the right.
func applyFrenchGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + " " + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + " " + result
}

// FormatHours renders an hour meter: whole numbers without decimals,
// fractional values with one decimal (half-hours are the usual step).
func FormatHours(h float64) string {
	d := decimal.NewFromFloat(h)
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(0) + "h"
	}
	return d.StringFixed(1) + "h"
}
