package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("10.06.2024")
	assert.Error(t, err)
}

func TestStartOfDay_UsesLocation(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)

	// 23:30 UTC 9 июня = 01:30 10 июня в Берлине
	now := time.Date(2024, 6, 9, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), StartOfDay(now, berlin))
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), StartOfDay(now, nil))
}

func TestEachDay(t *testing.T) {
	start := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	days := EachDay(start, end)
	require.Len(t, days, 4)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), days[2])
	assert.Equal(t, end, days[3])

	assert.Nil(t, EachDay(end, start))
	assert.Len(t, EachDay(start, start), 1)
}

func TestFormatDate(t *testing.T) {
	assert.Nil(t, FormatDate(nil))

	d := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	got := FormatDate(&d)
	require.NotNil(t, got)
	assert.Equal(t, "2024-06-10", *got)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, DaysBetween(a, b))
	assert.Equal(t, -5, DaysBetween(b, a))
}
