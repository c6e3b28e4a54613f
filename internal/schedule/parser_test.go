package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// ParseStartTime tests
// ---------------------------------------------------------------------------

func TestParseStartTime_DateOnly(t *testing.T) {
	result, err := ParseStartTime("2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, 2026, result.Year())
	assert.Equal(t, time.September, result.Month())
	assert.Equal(t, 1, result.Day())
	assert.Equal(t, 0, result.Hour())
	assert.Equal(t, 0, result.Minute())
}

func TestParseStartTime_DateTimeWithSpace(t *testing.T) {
	result, err := ParseStartTime("2026-09-01 08:45")
	require.NoError(t, err)

	assert.Equal(t, 2026, result.Year())
	assert.Equal(t, time.September, result.Month())
	assert.Equal(t, 1, result.Day())
	assert.Equal(t, 8, result.Hour())
	assert.Equal(t, 45, result.Minute())
}

func TestParseStartTime_ISO8601(t *testing.T) {
	result, err := ParseStartTime("2026-09-01T08:45")
	require.NoError(t, err)

	assert.Equal(t, 2026, result.Year())
	assert.Equal(t, 8, result.Hour())
	assert.Equal(t, 45, result.Minute())
}

func TestParseStartTime_TimeOnly_FutureStaysToday(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)

	result, err := ParseStartTime(future.Format("15:04"))
	require.NoError(t, err)

	assert.Equal(t, now.Day(), result.Day())
	assert.Equal(t, future.Hour(), result.Hour())
	assert.Equal(t, future.Minute(), result.Minute())
	assert.True(t, result.After(now))
}

func TestParseStartTime_TimeOnly_PastRollsToTomorrow(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	result, err := ParseStartTime(past.Format("15:04"))
	require.NoError(t, err)

	tomorrow := now.AddDate(0, 0, 1)
	assert.Equal(t, tomorrow.Day(), result.Day())
	assert.Equal(t, past.Hour(), result.Hour())
	assert.True(t, result.After(now))
}

func TestParseStartTime_LocalTimezone(t *testing.T) {
	result, err := ParseStartTime("2026-09-01 08:45")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Location(), result.Location())
}

func TestParseStartTime_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"random text", "soon"},
		{"slashes", "2026/09/01"},
		{"bare hour", "14"},
		{"out of range time", "25:99"},
		{"out of range date", "2026-13-45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStartTime(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid start time")
		})
	}
}
