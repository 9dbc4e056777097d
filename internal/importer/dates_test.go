package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"25/12/2026", "2026-12-25"},
		{"5/6/26", "2026-06-05"},
		{"05/06/26", "2026-06-05"},
		{"05-06-2026", "2026-06-05"},
		{"05.06.2026", "2026-06-05"},
		{"2026-06-05", "2026-06-05"},
		{"5 Jun 2026", "2026-06-05"},
		{"05 June 2026", "2026-06-05"},
		{"June 5, 2026", "2026-06-05"},
		{" 25/12/2026 ", "2026-12-25"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			parsed, err := parseDate(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed.Format("2006-01-02"))
		})
	}
}

func TestParseDateTwoDigitYearPivot(t *testing.T) {
	// Two-digit years pivot at 50: 49 is 2049, 50 is 1950.
	parsed, err := parseDate("1/1/49")
	require.NoError(t, err)
	assert.Equal(t, 2049, parsed.Year())

	parsed, err = parseDate("1/1/50")
	require.NoError(t, err)
	assert.Equal(t, 1950, parsed.Year())

	parsed, err = parseDate("1/1/60")
	require.NoError(t, err)
	assert.Equal(t, 1960, parsed.Year())
}

func TestParseDateFourDigitYearNotPivoted(t *testing.T) {
	// A written four-digit year in the pivot window is taken as given.
	for _, value := range []string{"01/06/2055", "01-06-2055", "2055-06-01", "1 Jun 2055"} {
		parsed, err := parseDate(value)
		require.NoError(t, err, value)
		assert.Equal(t, 2055, parsed.Year(), value)
	}
}

func TestParseDateInvalid(t *testing.T) {
	_, err := parseDate("not a date")
	assert.Error(t, err)

	_, err = parseDate("")
	assert.Error(t, err)
}

func TestParseBool(t *testing.T) {
	for _, value := range []string{"yes", "Yes", "Y", "true", "TRUE", "1", "on", " yes "} {
		assert.True(t, parseBool(value), value)
	}
	for _, value := range []string{"", "no", "false", "0", "off", "maybe"} {
		assert.False(t, parseBool(value), value)
	}
}

func TestNextJobCreationDateCalendarDays(t *testing.T) {
	due := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC) // Monday

	got := nextJobCreationDate(due, 2, false)

	assert.Equal(t, time.Date(2026, 6, 6, 0, 0, 0, 0, time.UTC), got)
}

func TestNextJobCreationDateBusinessDays(t *testing.T) {
	due := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC) // Monday

	// Two business days back from Monday skips the weekend: Thursday.
	got := nextJobCreationDate(due, 2, true)

	assert.Equal(t, time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.Thursday, got.Weekday())
}

func TestNextJobCreationDateZeroNotice(t *testing.T) {
	due := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, due, nextJobCreationDate(due, 0, false))
	assert.Equal(t, due, nextJobCreationDate(due, 0, true))
}
