package utils

import (
	"fmt"
	"strings"
	"time"

	"yultimate/constants"
)

var dateLayouts = []string{
	constants.DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a calendar date (YYYY-MM-DD) or a timestamp and returns it in UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// StartOfDay truncates t to midnight UTC of the same calendar day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange returns the half-open interval [start, end) covering the UTC day of t.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// FormatDate renders t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(constants.DateLayout)
}
