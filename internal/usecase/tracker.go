package usecase

import (
	"context"
	"time"

	"github.com/zingozingo/reading-tracker/internal/entity"
)

// TrackerRepository is the transactional port for the one multi-entity
// operation in the system: inserting a session and updating its book must
// commit or fail as a unit.
type TrackerRepository interface {
	// LogSession loads the book under a row lock, inserts the draft
	// session, applies the session-driven transition rules to the book
	// and saves it, all in one transaction. The lock makes concurrent
	// logs against the same book serialize instead of losing a page
	// increment. Returns ErrNotFound when the book does not exist; on
	// success the updated book is returned and the draft carries its
	// assigned id and created_at.
	LogSession(ctx context.Context, bookID int64, draft *entity.Session) (entity.Book, error)
}

// LogSessionInput carries the fields accepted when logging a session.
type LogSessionInput struct {
	StartTime time.Time
	PagesRead int
	Notes     *string
}

// TrackerService orchestrates "create session, update book" against the
// state machine rules.
type TrackerService struct {
	repo TrackerRepository
}

func NewTrackerService(repo TrackerRepository) *TrackerService {
	return &TrackerService{repo: repo}
}

// LogSession records a reading session for a book and applies the automatic
// transitions: want_to_read starts reading, and reaching total_pages
// completes the book. The page increment is additive, so identical logs
// accumulate. The returned session is active with no duration yet.
func (s *TrackerService) LogSession(ctx context.Context, bookID int64, in LogSessionInput) (entity.Session, error) {
	if in.StartTime.IsZero() {
		return entity.Session{}, &ValidationError{Field: "start_time", Message: "is required"}
	}
	if in.PagesRead < 0 {
		return entity.Session{}, &ValidationError{Field: "pages_read", Message: "must be 0 or greater"}
	}

	draft := entity.Session{
		BookID:    bookID,
		StartTime: in.StartTime,
		PagesRead: in.PagesRead,
		Notes:     in.Notes,
	}
	if _, err := s.repo.LogSession(ctx, bookID, &draft); err != nil {
		return entity.Session{}, err
	}
	return draft, nil
}
