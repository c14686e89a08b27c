package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/zingozingo/reading-tracker/internal/httpx"
	"github.com/zingozingo/reading-tracker/internal/usecase"
)

type SessionHandler struct {
	sessions *usecase.SessionService
	tracker  *usecase.TrackerService
	books    *usecase.BookService
}

func NewSessionHandler(sessions *usecase.SessionService, tracker *usecase.TrackerService, books *usecase.BookService) *SessionHandler {
	return &SessionHandler{sessions: sessions, tracker: tracker, books: books}
}

type logSessionRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	PagesRead int       `json:"pages_read" validate:"gte=0"`
	Notes     *string   `json:"notes"`
}

type updateSessionRequest struct {
	EndTime   *time.Time `json:"end_time"`
	PagesRead *int       `json:"pages_read" validate:"omitempty,gte=0"`
	Notes     *string    `json:"notes"`
}

// @Summary Log reading session
// @Description Start a reading session for a book; the book's progress and status update in the same transaction
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id}/sessions [post]
func (h *SessionHandler) Log(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", "Book not found", nil)
		return
	}

	var req logSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", "Request body is not valid JSON", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_error", "Validation failed", details)
		return
	}

	session, err := h.tracker.LogSession(r.Context(), bookID, usecase.LogSessionInput{
		StartTime: req.StartTime,
		PagesRead: req.PagesRead,
		Notes:     req.Notes,
	})
	if err != nil {
		writeDomainError(w, err, "Book not found")
		return
	}

	httpx.JSONSuccessCreated(w, newSessionResponse(session))
}

// @Summary List sessions for a book
// @Tags sessions
// @Produce json
// @Param id path int true "Book ID"
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size, capped at 100" default(100)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id}/sessions [get]
func (h *SessionHandler) ListForBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", "Book not found", nil)
		return
	}

	// The book must exist even when it has no sessions yet.
	if _, err := h.books.Get(r.Context(), bookID); err != nil {
		writeDomainError(w, err, "Book not found")
		return
	}

	sessions, err := h.sessions.List(r.Context(), usecase.SessionListParams{
		BookID: bookID,
		Page:   pageFromQuery(r),
	})
	if err != nil {
		writeDomainError(w, err, "Book not found")
		return
	}

	httpx.JSONSuccess(w, newSessionResponses(sessions), map[string]interface{}{
		"count": len(sessions),
	})
}

// @Summary List all sessions
// @Description Get reading sessions across all books, each with its owning book attached
// @Tags sessions
// @Produce json
// @Param active_only query bool false "Only sessions without an end time"
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size, capped at 100" default(100)
// @Success 200 {object} httpx.SuccessResponse
// @Router /api/v1/sessions [get]
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	params := usecase.SessionListParams{
		ActiveOnly: r.URL.Query().Get("active_only") == "true",
		Page:       pageFromQuery(r),
	}

	sessions, err := h.sessions.ListWithBook(r.Context(), params)
	if err != nil {
		writeDomainError(w, err, "Reading session not found")
		return
	}

	httpx.JSONSuccess(w, newSessionWithBookResponses(sessions), map[string]interface{}{
		"count": len(sessions),
	})
}

// @Summary Get session
// @Description Get a reading session with its owning book attached
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", "Reading session not found", nil)
		return
	}

	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Reading session not found")
		return
	}

	httpx.JSONSuccess(w, newSessionWithBookResponse(session), nil)
}

// @Summary End session
// @Description Close an active session; end_time defaults to now. Ending twice reports not found.
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Param end_time query string false "End time (RFC 3339)"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/sessions/{id}/end [put]
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", "Reading session not found or already ended", nil)
		return
	}

	var endTime *time.Time
	if raw := r.URL.Query().Get("end_time"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "validation_error", "Validation failed", []httpx.ErrorDetail{
				{Field: "end_time", Message: "end_time must be an RFC 3339 timestamp"},
			})
			return
		}
		endTime = &t
	}

	session, err := h.sessions.End(r.Context(), id, endTime)
	if err != nil {
		writeDomainError(w, err, "Reading session not found or already ended")
		return
	}

	httpx.JSONSuccess(w, newSessionResponse(session), nil)
}

// @Summary Update session
// @Description Partially update a session; book progress is not recomputed
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/sessions/{id} [put]
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", "Reading session not found", nil)
		return
	}

	var req updateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", "Request body is not valid JSON", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_error", "Validation failed", details)
		return
	}

	session, err := h.sessions.Update(r.Context(), id, usecase.UpdateSessionInput{
		EndTime:   req.EndTime,
		PagesRead: req.PagesRead,
		Notes:     req.Notes,
	})
	if err != nil {
		writeDomainError(w, err, "Reading session not found")
		return
	}

	httpx.JSONSuccess(w, newSessionResponse(session), nil)
}
