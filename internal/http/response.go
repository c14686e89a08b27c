package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/zingozingo/reading-tracker/internal/entity"
	"github.com/zingozingo/reading-tracker/internal/httpx"
	"github.com/zingozingo/reading-tracker/internal/usecase"
)

// bookResponse is the wire shape of a book, with the derived progress
// percentage computed at read time.
type bookResponse struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Author          string        `json:"author"`
	ISBN            *string       `json:"isbn"`
	TotalPages      int           `json:"total_pages"`
	CurrentPage     int           `json:"current_page"`
	Status          entity.Status `json:"status"`
	ProgressPercent float64       `json:"progress_percent"`
	DateAdded       time.Time     `json:"date_added"`
	DateStarted     *time.Time    `json:"date_started"`
	DateFinished    *time.Time    `json:"date_finished"`
	Rating          *int          `json:"rating"`
	Notes           *string       `json:"notes"`
}

func newBookResponse(b entity.Book) bookResponse {
	return bookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		TotalPages:      b.TotalPages,
		CurrentPage:     b.CurrentPage,
		Status:          b.Status,
		ProgressPercent: b.ProgressPercent(),
		DateAdded:       b.DateAdded,
		DateStarted:     b.DateStarted,
		DateFinished:    b.DateFinished,
		Rating:          b.Rating,
		Notes:           b.Notes,
	}
}

func newBookResponses(books []entity.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, newBookResponse(b))
	}
	return out
}

// sessionResponse is the wire shape of a reading session, with the derived
// duration and active flag computed at read time. Book is only present on
// reads that attach the owning book.
type sessionResponse struct {
	ID              int64         `json:"id"`
	BookID          int64         `json:"book_id"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         *time.Time    `json:"end_time"`
	PagesRead       int           `json:"pages_read"`
	Notes           *string       `json:"notes"`
	CreatedAt       time.Time     `json:"created_at"`
	DurationMinutes *int          `json:"duration_minutes"`
	IsActive        bool          `json:"is_active"`
	Book            *bookResponse `json:"book,omitempty"`
}

func newSessionResponse(s entity.Session) sessionResponse {
	return sessionResponse{
		ID:              s.ID,
		BookID:          s.BookID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		PagesRead:       s.PagesRead,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		DurationMinutes: s.DurationMinutes(),
		IsActive:        s.IsActive(),
	}
}

func newSessionWithBookResponse(sw entity.SessionWithBook) sessionResponse {
	resp := newSessionResponse(sw.Session)
	book := newBookResponse(sw.Book)
	resp.Book = &book
	return resp
}

func newSessionResponses(sessions []entity.Session) []sessionResponse {
	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, newSessionResponse(s))
	}
	return out
}

func newSessionWithBookResponses(sessions []entity.SessionWithBook) []sessionResponse {
	out := make([]sessionResponse, 0, len(sessions))
	for _, sw := range sessions {
		out = append(out, newSessionWithBookResponse(sw))
	}
	return out
}

// writeDomainError maps the error taxonomy onto HTTP: validation failures
// are client errors with a machine-readable reason, missing records are a
// distinct client error, everything else is a server error.
func writeDomainError(w http.ResponseWriter, err error, notFoundMessage string) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		httpx.JSONError(w, http.StatusBadRequest, "validation_error", "Validation failed", []httpx.ErrorDetail{
			{Field: ve.Field, Message: ve.Field + " " + ve.Message},
		})
	case errors.Is(err, usecase.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", notFoundMessage, nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error", nil)
	}
}
