// Package dateutils provides the date handling shared by the report and export code.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts used by bank exports.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	MonthLayout        = "01.2006"
)

// ParseEntryDate parses a DD.MM.YYYY entry date.
func ParseEntryDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutEuropean, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
	}
	return t, nil
}

// ParseMonth parses an MM.YYYY month key.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse month: %s", month)
	}
	return t, nil
}

// ToISODate converts a DD.MM.YYYY date to YYYY-MM-DD. Dates that do not parse
// are returned unchanged.
func ToISODate(dateStr string) string {
	t, err := ParseEntryDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(DateLayoutISO)
}

// CompareMonths orders two MM.YYYY keys chronologically:
//
//	-1 if a is before b
//	 0 if a equals b
//	 1 if a is after b
//
// Keys that do not parse sort before every valid month, among themselves by
// string value.
func CompareMonths(a, b string) int {
	ta, errA := ParseMonth(a)
	tb, errB := ParseMonth(b)

	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	default:
		return 0
	}
}
