package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of fractional digits used for every amount in a report.
const DisplayPlaces int32 = 2

// ParseAmount parses an amount as written in a bank export, where ',' is the
// decimal separator. Surrounding whitespace is ignored.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(raw)
	amount = strings.ReplaceAll(amount, ",", ".")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", raw, err)
	}
	return dec, nil
}

// FormatSigned renders an amount with an explicit sign and two decimals,
// e.g. "+200.00" or "-8.46". Zero renders as "+0.00". The sign is taken
// before rounding, so -0.004 renders as "-0.00".
func FormatSigned(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + d.Abs().StringFixed(DisplayPlaces)
	}
	return "+" + d.StringFixed(DisplayPlaces)
}

// FormatPlain renders an amount with two decimals and a sign only when negative.
func FormatPlain(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + d.Abs().StringFixed(DisplayPlaces)
	}
	return d.StringFixed(DisplayPlaces)
}
