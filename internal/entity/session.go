package entity

import "time"

// Session is a single logged reading session against a book.
type Session struct {
	ID        int64      `json:"id"`
	BookID    int64      `json:"book_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	PagesRead int        `json:"pages_read"`
	Notes     *string    `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsActive reports whether the session is still ongoing (no end time).
func (s Session) IsActive() bool {
	return s.EndTime == nil
}

// DurationMinutes returns the session length in whole minutes, or nil while
// the session is still active. An end time before the start time is not
// rejected anywhere, so the result can be negative.
func (s Session) DurationMinutes() *int {
	if s.EndTime == nil {
		return nil
	}
	minutes := int(s.EndTime.Sub(s.StartTime).Minutes())
	return &minutes
}

// SessionWithBook pairs a session with its owning book for reads that
// surface both.
type SessionWithBook struct {
	Session Session
	Book    Book
}
