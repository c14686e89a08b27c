package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zingozingo/reading-tracker/internal/entity"
	"github.com/zingozingo/reading-tracker/internal/usecase"
)

// TrackerPG implements usecase.TrackerRepository: the session insert and
// the book update commit as one transaction.
type TrackerPG struct {
	db *pgxpool.Pool
}

func NewTrackerPG(db *pgxpool.Pool) *TrackerPG {
	return &TrackerPG{db: db}
}

// LogSession locks the book row, inserts the session, applies the
// session-driven transition rules and writes the book back. Two concurrent
// logs against the same book queue up on the row lock, so neither page
// increment is lost.
func (r *TrackerPG) LogSession(ctx context.Context, bookID int64, draft *entity.Session) (entity.Book, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entity.Book{}, fmt.Errorf("begin log session: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 FOR UPDATE`

	var book entity.Book
	if err := scanBook(tx.QueryRow(ctx, query, bookID), &book); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}

	const insert = `
	INSERT INTO reading_sessions (book_id, start_time, end_time, pages_read, notes)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, insert,
		draft.BookID,
		draft.StartTime,
		draft.EndTime,
		draft.PagesRead,
		draft.Notes,
	).Scan(&draft.ID, &draft.CreatedAt); err != nil {
		return entity.Book{}, fmt.Errorf("insert session: %w", err)
	}

	book.ApplySession(draft.PagesRead, draft.StartTime)

	const update = `
	UPDATE books
	SET current_page = $1, status = $2, date_started = $3, date_finished = $4
	WHERE id = $5
	`
	if _, err := tx.Exec(ctx, update,
		book.CurrentPage,
		book.Status,
		book.DateStarted,
		book.DateFinished,
		book.ID,
	); err != nil {
		return entity.Book{}, fmt.Errorf("update book progress: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return entity.Book{}, fmt.Errorf("commit log session: %w", err)
	}
	return book, nil
}
