package usecase

import (
	"context"
	"time"

	"github.com/zingozingo/reading-tracker/internal/entity"
)

// SessionRepository defines the contract for reading-session storage.
// Sessions are only ever created through TrackerRepository.LogSession, so
// there is no standalone Create here.
type SessionRepository interface {
	Get(ctx context.Context, id int64) (entity.Session, error)
	// GetWithBook also loads the owning book for single-resource reads.
	GetWithBook(ctx context.Context, id int64) (entity.SessionWithBook, error)
	List(ctx context.Context, p SessionListParams) ([]entity.Session, error)
	ListWithBook(ctx context.Context, p SessionListParams) ([]entity.SessionWithBook, error)
	// End sets the end time on a still-active session. A missing or
	// already-ended session yields ErrNotFound.
	End(ctx context.Context, id int64, endTime time.Time) (entity.Session, error)
	Update(ctx context.Context, s *entity.Session) error
}

// UpdateSessionInput is a partial session update: nil fields are left
// untouched. Updating a session never re-runs book progress rules.
type UpdateSessionInput struct {
	EndTime   *time.Time
	PagesRead *int
	Notes     *string
}

// SessionService is the ledger over logged reading sessions.
type SessionService struct {
	repo SessionRepository
	now  func() time.Time
}

func NewSessionService(repo SessionRepository) *SessionService {
	return &SessionService{repo: repo, now: time.Now}
}

func (s *SessionService) Get(ctx context.Context, id int64) (entity.SessionWithBook, error) {
	return s.repo.GetWithBook(ctx, id)
}

func (s *SessionService) List(ctx context.Context, p SessionListParams) ([]entity.Session, error) {
	p.Page = p.Page.Normalize()
	return s.repo.List(ctx, p)
}

func (s *SessionService) ListWithBook(ctx context.Context, p SessionListParams) ([]entity.SessionWithBook, error) {
	p.Page = p.Page.Normalize()
	return s.repo.ListWithBook(ctx, p)
}

// End closes an active session. When endTime is nil the current time is
// used. Ending twice reports ErrNotFound on the second call.
func (s *SessionService) End(ctx context.Context, id int64, endTime *time.Time) (entity.Session, error) {
	t := s.now()
	if endTime != nil {
		t = *endTime
	}
	return s.repo.End(ctx, id, t)
}

// Update applies only the fields present in the input.
func (s *SessionService) Update(ctx context.Context, id int64, in UpdateSessionInput) (entity.Session, error) {
	if in.PagesRead != nil && *in.PagesRead < 0 {
		return entity.Session{}, &ValidationError{Field: "pages_read", Message: "must be 0 or greater"}
	}

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return entity.Session{}, err
	}

	if in.EndTime != nil {
		session.EndTime = in.EndTime
	}
	if in.PagesRead != nil {
		session.PagesRead = *in.PagesRead
	}
	if in.Notes != nil {
		session.Notes = in.Notes
	}

	if err := s.repo.Update(ctx, &session); err != nil {
		return entity.Session{}, err
	}
	return session, nil
}
