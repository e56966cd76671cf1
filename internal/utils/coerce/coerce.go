// Package coerce converts raw cell values into typed domain values: integer
// minor currency units, plain quantities, and calendar dates. All functions
// are pure and total; malformed input degrades to zero/absent and is signaled
// through the ok return so callers can count fallbacks instead of guessing.
package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ToMinorUnits converts a raw monetary value into integer minor units
// (cents). Numeric input is multiplied by 100 and rounded half away from
// zero. Textual input has comma decimal separators replaced by periods before
// parsing. The second return is false when a non-empty value could not be
// parsed and degraded to zero.
func ToMinorUnits(value any) (int64, bool) {
	d, ok := toDecimal(value)
	if !ok {
		return 0, false
	}
	return d.Mul(oneHundred).Round(0).IntPart(), true
}

// ToQuantity converts a raw value into a plain decimal quantity (kilograms,
// percentages) with the same comma tolerance as ToMinorUnits but without the
// minor-unit shift.
func ToQuantity(value any) (decimal.Decimal, bool) {
	return toDecimal(value)
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, true
	case decimal.Decimal:
		return v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Zero, true
		}
		s = strings.ReplaceAll(s, ",", ".")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		d, err := decimal.NewFromString(fmt.Sprintf("%v", v))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
}

// ToDate converts a raw value into a calendar date. ISO-like formats are
// tried first, then day/month/year with 2-digit years expanded to 20YY. A nil
// result means the date is absent; the second return is false only when a
// non-empty value failed every parse attempt.
func ToDate(value any) (*time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case time.Time:
		if v.IsZero() {
			return nil, true
		}
		return &v, true
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil, true
		}
		return v, true
	}

	s := strings.TrimSpace(fmt.Sprintf("%v", value))
	if s == "" {
		return nil, true
	}

	for _, layout := range []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, true
		}
	}

	if t, ok := parseSlashDate(s); ok {
		return &t, true
	}
	return nil, false
}

// parseSlashDate handles day/month/year, including "5/3/24" style input.
func parseSlashDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	dayStr, monthStr, yearStr := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
	if dayStr == "" || monthStr == "" || yearStr == "" {
		return time.Time{}, false
	}
	if len(yearStr) == 2 {
		yearStr = "20" + yearStr
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// reject overflow like 31/02/2024, which time.Date would normalize
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}
