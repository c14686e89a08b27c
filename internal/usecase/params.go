package usecase

import "github.com/zingozingo/reading-tracker/internal/entity"

const (
	defaultLimit = 100
	maxLimit     = 100
)

// Page holds the skip/limit window shared by every list operation.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps the window to the contract surfaced outward:
// skip >= 0 (default 0), limit 1..100 (default 100).
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 || p.Limit > maxLimit {
		p.Limit = defaultLimit
	}
	return p
}

// BookListParams filters and paginates book listings.
type BookListParams struct {
	Status entity.Status // empty means no status filter
	Page
}

// SessionListParams filters and paginates session listings.
type SessionListParams struct {
	BookID     int64 // 0 means all books
	ActiveOnly bool  // restrict to sessions with no end time
	Page
}
