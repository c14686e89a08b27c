package entity

import "time"

// Status is the reading lifecycle state of a book.
type Status string

const (
	StatusWantToRead Status = "want_to_read"
	StatusReading    Status = "reading"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusCompleted:
		return true
	}
	return false
}

// Book represents a tracked book and its reading progress.
type Book struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	ISBN         *string    `json:"isbn"`
	TotalPages   int        `json:"total_pages"`
	CurrentPage  int        `json:"current_page"`
	Status       Status     `json:"status"`
	DateAdded    time.Time  `json:"date_added"`
	DateStarted  *time.Time `json:"date_started"`
	DateFinished *time.Time `json:"date_finished"`
	Rating       *int       `json:"rating"`
	Notes        *string    `json:"notes"`
}

// ProgressPercent returns reading progress as a percentage, clamped to 100.
// Only the displayed percentage is clamped, never the stored page count.
func (b Book) ProgressPercent() float64 {
	if b.TotalPages <= 0 {
		return 0
	}
	pct := float64(b.CurrentPage) / float64(b.TotalPages) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// ApplySession mutates the book for a newly logged reading session: pages
// accumulate additively, a want_to_read book starts reading, and reaching
// total_pages completes it. date_started and date_finished come from the
// session's start time and are set only when still null, so repeat sessions
// never overwrite them.
func (b *Book) ApplySession(pagesRead int, startTime time.Time) {
	b.CurrentPage += pagesRead

	if b.Status == StatusWantToRead {
		b.Status = StatusReading
		if b.DateStarted == nil {
			t := startTime
			b.DateStarted = &t
		}
	}

	if b.CurrentPage >= b.TotalPages {
		b.Status = StatusCompleted
		if b.DateFinished == nil {
			t := startTime
			b.DateFinished = &t
		}
	}
}
