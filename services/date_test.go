package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-10")
	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 10, parsed.Day())

	_, err = ParseDate("06/10/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-40")
	assert.Error(t, err)
}

func TestDay(t *testing.T) {
	ts := time.Date(2024, 6, 10, 15, 30, 45, 123, time.UTC)
	d := Day(ts)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), d)
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-10", DayKey(ts))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 10, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC)
	c := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 13, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}
