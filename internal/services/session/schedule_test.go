package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheduleWindow(t *testing.T) {
	now := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	start, end, err := ParseScheduleWindow("25/12/2025", "14:30", "16:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 25, 14, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 12, 25, 16, 0, 0, 0, time.UTC), end)

	start, end, err = ParseScheduleWindow("3/6/2025", "23:00", "01:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 3, 23, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 4, 1, 0, 0, 0, time.UTC), end)

	_, end, err = ParseScheduleWindow("03/06/2025", "18:00", "18:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC), end)
}

func TestParseScheduleWindowErrors(t *testing.T) {
	now := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		date, start, end string
		expected         error
	}{
		{name: "past start", date: "02/06/2025", start: "13:59", end: "15:00", expected: ErrSessionInPast},
		{name: "american date", date: "2025-06-03", start: "14:00", end: "15:00", expected: ErrInvalidSchedule},
		{name: "impossible date", date: "31/02/2026", start: "14:00", end: "15:00", expected: ErrInvalidSchedule},
		{name: "bad hour", date: "03/06/2025", start: "24:00", end: "15:00", expected: ErrInvalidSchedule},
		{name: "bad minute", date: "03/06/2025", start: "14:00", end: "15:60", expected: ErrInvalidSchedule},
		{name: "words", date: "tomorrow", start: "noon", end: "later", expected: ErrInvalidSchedule},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseScheduleWindow(tc.date, tc.start, tc.end, now)
			assert.True(t, errors.Is(err, tc.expected), "got %v", err)
		})
	}
}

func TestParseStartWindow(t *testing.T) {
	now := time.Date(2025, 6, 2, 14, 7, 42, 0, time.UTC)

	start, end, err := ParseStartWindow("15:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 14, 7, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC), end)

	_, end, err = ParseStartWindow("01:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC), end)

	_, _, err = ParseStartWindow("1pm", now)
	assert.True(t, errors.Is(err, ErrInvalidSchedule))
}
