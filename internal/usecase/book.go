package usecase

import (
	"context"
	"time"

	"github.com/zingozingo/reading-tracker/internal/entity"
)

// BookRepository defines the contract for book storage.
type BookRepository interface {
	Create(ctx context.Context, b *entity.Book) error
	Get(ctx context.Context, id int64) (entity.Book, error)
	List(ctx context.Context, p BookListParams) ([]entity.Book, error)
	Update(ctx context.Context, b *entity.Book) error
	// Delete removes the book and, by cascade, all of its sessions. It
	// returns the pre-deletion snapshot.
	Delete(ctx context.Context, id int64) (entity.Book, error)
}

// CreateBookInput carries the fields accepted when adding a book. Status,
// current page and the date fields may be supplied explicitly; otherwise the
// service fills the defaults.
type CreateBookInput struct {
	Title        string
	Author       string
	ISBN         *string
	TotalPages   int
	CurrentPage  int
	Status       entity.Status
	DateStarted  *time.Time
	DateFinished *time.Time
	Rating       *int
	Notes        *string
}

// UpdateBookInput is a partial update: nil fields are left untouched.
// No cross-field derivation happens here; setting status to completed by
// hand does not set date_finished.
type UpdateBookInput struct {
	Title        *string
	Author       *string
	ISBN         *string
	TotalPages   *int
	CurrentPage  *int
	Status       *entity.Status
	DateStarted  *time.Time
	DateFinished *time.Time
	Rating       *int
	Notes        *string
}

// BookService owns the book entity and its direct (non session-driven)
// mutations.
type BookService struct {
	repo BookRepository
}

func NewBookService(repo BookRepository) *BookService {
	return &BookService{repo: repo}
}

// Create adds a book. New books default to want_to_read with zero pages read
// unless the caller explicitly provides otherwise.
func (s *BookService) Create(ctx context.Context, in CreateBookInput) (entity.Book, error) {
	if in.Title == "" {
		return entity.Book{}, &ValidationError{Field: "title", Message: "is required"}
	}
	if in.Author == "" {
		return entity.Book{}, &ValidationError{Field: "author", Message: "is required"}
	}
	if in.TotalPages <= 0 {
		return entity.Book{}, &ValidationError{Field: "total_pages", Message: "must be greater than 0"}
	}
	if in.CurrentPage < 0 {
		return entity.Book{}, &ValidationError{Field: "current_page", Message: "must be 0 or greater"}
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return entity.Book{}, &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}

	status := in.Status
	if status == "" {
		status = entity.StatusWantToRead
	}
	if !status.Valid() {
		return entity.Book{}, &ValidationError{Field: "status", Message: "is not a valid status"}
	}

	book := entity.Book{
		Title:        in.Title,
		Author:       in.Author,
		ISBN:         in.ISBN,
		TotalPages:   in.TotalPages,
		CurrentPage:  in.CurrentPage,
		Status:       status,
		DateStarted:  in.DateStarted,
		DateFinished: in.DateFinished,
		Rating:       in.Rating,
		Notes:        in.Notes,
	}
	if err := s.repo.Create(ctx, &book); err != nil {
		return entity.Book{}, err
	}
	return book, nil
}

func (s *BookService) Get(ctx context.Context, id int64) (entity.Book, error) {
	return s.repo.Get(ctx, id)
}

func (s *BookService) List(ctx context.Context, p BookListParams) ([]entity.Book, error) {
	p.Page = p.Page.Normalize()
	return s.repo.List(ctx, p)
}

// Update applies only the fields present in the input. The automatic
// transition rules do not run here; they belong to the session-driven path.
func (s *BookService) Update(ctx context.Context, id int64, in UpdateBookInput) (entity.Book, error) {
	if in.Status != nil && !in.Status.Valid() {
		return entity.Book{}, &ValidationError{Field: "status", Message: "is not a valid status"}
	}
	if in.TotalPages != nil && *in.TotalPages <= 0 {
		return entity.Book{}, &ValidationError{Field: "total_pages", Message: "must be greater than 0"}
	}
	if in.CurrentPage != nil && *in.CurrentPage < 0 {
		return entity.Book{}, &ValidationError{Field: "current_page", Message: "must be 0 or greater"}
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return entity.Book{}, &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}

	book, err := s.repo.Get(ctx, id)
	if err != nil {
		return entity.Book{}, err
	}

	if in.Title != nil {
		book.Title = *in.Title
	}
	if in.Author != nil {
		book.Author = *in.Author
	}
	if in.ISBN != nil {
		book.ISBN = in.ISBN
	}
	if in.TotalPages != nil {
		book.TotalPages = *in.TotalPages
	}
	if in.CurrentPage != nil {
		book.CurrentPage = *in.CurrentPage
	}
	if in.Status != nil {
		book.Status = *in.Status
	}
	if in.DateStarted != nil {
		book.DateStarted = in.DateStarted
	}
	if in.DateFinished != nil {
		book.DateFinished = in.DateFinished
	}
	if in.Rating != nil {
		book.Rating = in.Rating
	}
	if in.Notes != nil {
		book.Notes = in.Notes
	}

	if err := s.repo.Update(ctx, &book); err != nil {
		return entity.Book{}, err
	}
	return book, nil
}

// Delete removes a book and all of its sessions, returning the snapshot
// from just before deletion.
func (s *BookService) Delete(ctx context.Context, id int64) (entity.Book, error) {
	return s.repo.Delete(ctx, id)
}
