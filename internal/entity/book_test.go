package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySession_StartsReading(t *testing.T) {
	start := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	book := Book{TotalPages: 464, Status: StatusWantToRead}

	book.ApplySession(25, start)

	assert.Equal(t, 25, book.CurrentPage)
	assert.Equal(t, StatusReading, book.Status)
	require.NotNil(t, book.DateStarted)
	assert.Equal(t, start, *book.DateStarted)
	assert.Nil(t, book.DateFinished)
}

func TestApplySession_DateStartedSetOnce(t *testing.T) {
	first := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	book := Book{TotalPages: 464, Status: StatusWantToRead}

	book.ApplySession(25, first)
	book.ApplySession(25, second)

	assert.Equal(t, 50, book.CurrentPage)
	require.NotNil(t, book.DateStarted)
	assert.Equal(t, first, *book.DateStarted)
}

func TestApplySession_PagesAccumulate(t *testing.T) {
	start := time.Now()
	book := Book{TotalPages: 1000, Status: StatusReading}

	for i := 0; i < 4; i++ {
		book.ApplySession(30, start)
	}

	assert.Equal(t, 120, book.CurrentPage)
	assert.Equal(t, StatusReading, book.Status)
}

func TestApplySession_Completes(t *testing.T) {
	start := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	book := Book{TotalPages: 464, CurrentPage: 25, Status: StatusReading}

	book.ApplySession(439, start)

	assert.Equal(t, 464, book.CurrentPage)
	assert.Equal(t, StatusCompleted, book.Status)
	require.NotNil(t, book.DateFinished)
	assert.Equal(t, start, *book.DateFinished)
}

func TestApplySession_OvershootCompletes(t *testing.T) {
	book := Book{TotalPages: 100, CurrentPage: 90, Status: StatusReading}

	book.ApplySession(50, time.Now())

	assert.Equal(t, 140, book.CurrentPage)
	assert.Equal(t, StatusCompleted, book.Status)
}

func TestApplySession_DateFinishedNotOverwritten(t *testing.T) {
	finished := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	book := Book{TotalPages: 100, CurrentPage: 100, Status: StatusCompleted, DateFinished: &finished}

	book.ApplySession(10, time.Now())

	require.NotNil(t, book.DateFinished)
	assert.Equal(t, finished, *book.DateFinished)
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        float64
	}{
		{"zero progress", 0, 464, 0},
		{"half way", 232, 464, 50},
		{"complete", 464, 464, 100},
		{"overshoot clamps to 100", 600, 464, 100},
		{"zero total pages", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Book{CurrentPage: tt.currentPage, TotalPages: tt.totalPages}
			assert.InDelta(t, tt.want, b.ProgressPercent(), 0.001)
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusWantToRead.Valid())
	assert.True(t, StatusReading.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("finished").Valid())
	assert.False(t, Status("").Valid())
}
