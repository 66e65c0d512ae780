package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISODate is the wire format for calendar dates throughout the API.
const ISODate = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD). Invalid input returns
// an explicit error rather than a zero value, so callers can reject bad form
// fields with a 400 instead of silently propagating a broken date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(ISODate, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

// FormatDate renders a date the way the client displays it, e.g. "Mar 15, 2026".
func FormatDate(date time.Time) string {
	return date.Format("Jan 2, 2006")
}

// FormatINR renders an amount of whole rupees with the Indian digit grouping
// used across the client, e.g. 120000 -> "₹1,20,000".
func FormatINR(amount int64) string {
	sign := ""
	// Take the magnitude in uint64 space so math.MinInt64 does not overflow.
	magnitude := uint64(amount)
	if amount < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	digits := strconv.FormatUint(magnitude, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	// Last group of three, then groups of two.
	groups := []string{digits[len(digits)-3:]}
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		groups = append([]string{rest[len(rest)-2:]}, groups...)
		rest = rest[:len(rest)-2]
	}
	if len(rest) > 0 {
		groups = append([]string{rest}, groups...)
	}

	return sign + "₹" + strings.Join(groups, ",")
}
