package services

import (
	"fmt"
	"time"
)

// DayFormat is the canonical calendar-day layout used across the app
const DayFormat = "2006-01-02"

// ParseDate parses a date string in typical formats (YYYY-MM-DD)
// It enforces strict checks but centralizes the logic for future format additions
func ParseDate(dateStr string) (time.Time, error) {
	// Primary format: ISO 8601 (standard for HTML5 date inputs)
	parsedTime, err := time.Parse(DayFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}

// Day normalizes a timestamp to its calendar day (midnight UTC).
// All availability reasoning happens at day granularity; time-of-day is
// irrelevant and must be stripped before any comparison.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats a timestamp as its canonical YYYY-MM-DD day key
func DayKey(t time.Time) string {
	return Day(t).Format(DayFormat)
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// DaysBetween returns the whole number of days from a to b (b - a)
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}
