package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zingozingo/reading-tracker/internal/entity"
	"github.com/zingozingo/reading-tracker/internal/usecase"
)

const sessionColumns = `id, book_id, start_time, end_time, pages_read, notes, created_at`

// SessionPG is the Postgres implementation of usecase.SessionRepository.
type SessionPG struct {
	db *pgxpool.Pool
}

func NewSessionPG(db *pgxpool.Pool) *SessionPG {
	return &SessionPG{db: db}
}

func scanSession(row pgx.Row, s *entity.Session) error {
	return row.Scan(
		&s.ID,
		&s.BookID,
		&s.StartTime,
		&s.EndTime,
		&s.PagesRead,
		&s.Notes,
		&s.CreatedAt,
	)
}

func (r *SessionPG) Get(ctx context.Context, id int64) (entity.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM reading_sessions WHERE id = $1`

	var s entity.Session
	if err := scanSession(r.db.QueryRow(ctx, query, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, usecase.ErrNotFound
		}
		return entity.Session{}, err
	}
	return s, nil
}

func (r *SessionPG) GetWithBook(ctx context.Context, id int64) (entity.SessionWithBook, error) {
	const query = `
	SELECT s.id, s.book_id, s.start_time, s.end_time, s.pages_read, s.notes, s.created_at,
	       b.id, b.title, b.author, b.isbn, b.total_pages, b.current_page, b.status,
	       b.date_added, b.date_started, b.date_finished, b.rating, b.notes
	FROM reading_sessions s
	JOIN books b ON b.id = s.book_id
	WHERE s.id = $1
	`
	var sw entity.SessionWithBook
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sw.Session.ID,
		&sw.Session.BookID,
		&sw.Session.StartTime,
		&sw.Session.EndTime,
		&sw.Session.PagesRead,
		&sw.Session.Notes,
		&sw.Session.CreatedAt,
		&sw.Book.ID,
		&sw.Book.Title,
		&sw.Book.Author,
		&sw.Book.ISBN,
		&sw.Book.TotalPages,
		&sw.Book.CurrentPage,
		&sw.Book.Status,
		&sw.Book.DateAdded,
		&sw.Book.DateStarted,
		&sw.Book.DateFinished,
		&sw.Book.Rating,
		&sw.Book.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.SessionWithBook{}, usecase.ErrNotFound
		}
		return entity.SessionWithBook{}, err
	}
	return sw, nil
}

func (r *SessionPG) List(ctx context.Context, p usecase.SessionListParams) ([]entity.Session, error) {
	query := `
	SELECT ` + sessionColumns + `
	FROM reading_sessions
	WHERE ($1 = 0 OR book_id = $1)
	AND (NOT $2 OR end_time IS NULL)
	ORDER BY id
	LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, p.BookID, p.ActiveOnly, p.Limit, p.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []entity.Session{}
	for rows.Next() {
		var s entity.Session
		if err := scanSession(rows, &s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *SessionPG) ListWithBook(ctx context.Context, p usecase.SessionListParams) ([]entity.SessionWithBook, error) {
	const query = `
	SELECT s.id, s.book_id, s.start_time, s.end_time, s.pages_read, s.notes, s.created_at,
	       b.id, b.title, b.author, b.isbn, b.total_pages, b.current_page, b.status,
	       b.date_added, b.date_started, b.date_finished, b.rating, b.notes
	FROM reading_sessions s
	JOIN books b ON b.id = s.book_id
	WHERE ($1 = 0 OR s.book_id = $1)
	AND (NOT $2 OR s.end_time IS NULL)
	ORDER BY s.id
	LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, p.BookID, p.ActiveOnly, p.Limit, p.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []entity.SessionWithBook{}
	for rows.Next() {
		var sw entity.SessionWithBook
		if err := rows.Scan(
			&sw.Session.ID,
			&sw.Session.BookID,
			&sw.Session.StartTime,
			&sw.Session.EndTime,
			&sw.Session.PagesRead,
			&sw.Session.Notes,
			&sw.Session.CreatedAt,
			&sw.Book.ID,
			&sw.Book.Title,
			&sw.Book.Author,
			&sw.Book.ISBN,
			&sw.Book.TotalPages,
			&sw.Book.CurrentPage,
			&sw.Book.Status,
			&sw.Book.DateAdded,
			&sw.Book.DateStarted,
			&sw.Book.DateFinished,
			&sw.Book.Rating,
			&sw.Book.Notes,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, sw)
	}
	return sessions, rows.Err()
}

func (r *SessionPG) End(ctx context.Context, id int64, endTime time.Time) (entity.Session, error) {
	// Filtering on end_time IS NULL makes a second End on the same
	// session come back as not found.
	query := `
	UPDATE reading_sessions
	SET end_time = $2
	WHERE id = $1 AND end_time IS NULL
	RETURNING ` + sessionColumns

	var s entity.Session
	if err := scanSession(r.db.QueryRow(ctx, query, id, endTime), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, usecase.ErrNotFound
		}
		return entity.Session{}, err
	}
	return s, nil
}

func (r *SessionPG) Update(ctx context.Context, s *entity.Session) error {
	const query = `
	UPDATE reading_sessions
	SET end_time = $1, pages_read = $2, notes = $3
	WHERE id = $4
	`
	result, err := r.db.Exec(ctx, query, s.EndTime, s.PagesRead, s.Notes, s.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
