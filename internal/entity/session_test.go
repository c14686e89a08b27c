package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDurationMinutes(t *testing.T) {
	start := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 15, 45, 0, 0, time.UTC)

	s := Session{StartTime: start, EndTime: &end}

	require.NotNil(t, s.DurationMinutes())
	assert.Equal(t, 75, *s.DurationMinutes())
	assert.False(t, s.IsActive())
}

func TestSessionActive(t *testing.T) {
	s := Session{StartTime: time.Now()}

	assert.True(t, s.IsActive())
	assert.Nil(t, s.DurationMinutes())
}

func TestSessionDurationTruncatesToWholeMinutes(t *testing.T) {
	start := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(12*time.Minute + 59*time.Second)

	s := Session{StartTime: start, EndTime: &end}

	assert.Equal(t, 12, *s.DurationMinutes())
}

func TestSessionDurationNegativeWhenEndBeforeStart(t *testing.T) {
	// End before start is not rejected anywhere; the duration just goes
	// negative.
	start := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	end := start.Add(-30 * time.Minute)

	s := Session{StartTime: start, EndTime: &end}

	assert.Equal(t, -30, *s.DurationMinutes())
}
