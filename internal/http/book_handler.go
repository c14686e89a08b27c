package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/zingozingo/reading-tracker/internal/entity"
	"github.com/zingozingo/reading-tracker/internal/httpx"
	"github.com/zingozingo/reading-tracker/internal/usecase"
)

type BookHandler struct {
	books *usecase.BookService
}

func NewBookHandler(books *usecase.BookService) *BookHandler {
	return &BookHandler{books: books}
}

type createBookRequest struct {
	Title        string         `json:"title" validate:"required,max=200"`
	Author       string         `json:"author" validate:"required,max=200"`
	ISBN         *string        `json:"isbn" validate:"omitempty,isbn"`
	TotalPages   int            `json:"total_pages" validate:"required,gt=0"`
	CurrentPage  int            `json:"current_page" validate:"gte=0"`
	Status       *entity.Status `json:"status" validate:"omitempty,oneof=want_to_read reading completed"`
	DateStarted  *time.Time     `json:"date_started"`
	DateFinished *time.Time     `json:"date_finished"`
	Rating       *int           `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Notes        *string        `json:"notes"`
}

type updateBookRequest struct {
	Title        *string        `json:"title" validate:"omitempty,max=200"`
	Author       *string        `json:"author" validate:"omitempty,max=200"`
	ISBN         *string        `json:"isbn" validate:"omitempty,isbn"`
	TotalPages   *int           `json:"total_pages" validate:"omitempty,gt=0"`
	CurrentPage  *int           `json:"current_page" validate:"omitempty,gte=0"`
	Status       *entity.Status `json:"status" validate:"omitempty,oneof=want_to_read reading completed"`
	DateStarted  *time.Time     `json:"date_started"`
	DateFinished *time.Time     `json:"date_finished"`
	Rating       *int           `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Notes        *string        `json:"notes"`
}

// pathID extracts the {id} path value as an int64. A non-numeric id is
// treated like a missing record.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// pageFromQuery reads the skip/limit window from query parameters.
// Normalization happens in the service layer.
func pageFromQuery(r *http.Request) usecase.Page {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return usecase.Page{Skip: skip, Limit: limit}
}

// @Summary List books
// @Description Get all books, optionally filtered by status
// @Tags books
// @Produce json
// @Param status query string false "Filter by status (want_to_read, reading, completed)"
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size, capped at 100" default(100)
// @Success 200 {object} httpx.SuccessResponse
// @Router /api/v1/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	status := entity.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_error", "Validation failed", []httpx.ErrorDetail{
			{Field: "status", Message: "status must be one of: want_to_read reading completed"},
		})
		return
	}

	params := usecase.BookListParams{
		Status: status,
		Page:   pageFromQuery(r),
	}

	books, err := h.books.List(r.Context(), params)
	if err != nil {
		writeDomainError(w, err, "Book not found")
		return
	}

	httpx.JSONSuccess(w, newBookResponses(books), map[string]interface{}{
		"count": len(books),
	})
}

// @Summary Get book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", "Book not found", nil)
		return
	}

	book, err := h.books.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Book not found")
		return
	}

	httpx.JSONSuccess(w, newBookResponse(book), nil)
}

// @Summary Add book
// @Description Add a book to the tracker; new books start as want_to_read with no pages read
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/v1/books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", "Request body is not valid JSON", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_error", "Validation failed", details)
		return
	}

	in := usecase.CreateBookInput{
		Title:        req.Title,
		Author:       req.Author,
		ISBN:         req.ISBN,
		TotalPages:   req.TotalPages,
		CurrentPage:  req.CurrentPage,
		DateStarted:  req.DateStarted,
		DateFinished: req.DateFinished,
		Rating:       req.Rating,
		Notes:        req.Notes,
	}
	if req.Status != nil {
		in.Status = *req.Status
	}

	book, err := h.books.Create(r.Context(), in)
	if err != nil {
		writeDomainError(w, err, "Book not found")
		return
	}

	httpx.JSONSuccessCreated(w, newBookResponse(book))
}

// @Summary Update book
// @Description Partially update a book; absent fields are left untouched and no automatic transitions run
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", "Book not found", nil)
		return
	}

	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", "Request body is not valid JSON", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_error", "Validation failed", details)
		return
	}

	book, err := h.books.Update(r.Context(), id, usecase.UpdateBookInput{
		Title:        req.Title,
		Author:       req.Author,
		ISBN:         req.ISBN,
		TotalPages:   req.TotalPages,
		CurrentPage:  req.CurrentPage,
		Status:       req.Status,
		DateStarted:  req.DateStarted,
		DateFinished: req.DateFinished,
		Rating:       req.Rating,
		Notes:        req.Notes,
	})
	if err != nil {
		writeDomainError(w, err, "Book not found")
		return
	}

	httpx.JSONSuccess(w, newBookResponse(book), nil)
}

// @Summary Delete book
// @Description Delete a book and all of its reading sessions, returning the pre-deletion snapshot
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", "Book not found", nil)
		return
	}

	book, err := h.books.Delete(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Book not found")
		return
	}

	httpx.JSONSuccess(w, newBookResponse(book), nil)
}
