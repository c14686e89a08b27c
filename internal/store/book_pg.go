package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zingozingo/reading-tracker/internal/entity"
	"github.com/zingozingo/reading-tracker/internal/usecase"
)

const bookColumns = `id, title, author, isbn, total_pages, current_page, status,
	date_added, date_started, date_finished, rating, notes`

// BookPG is the Postgres implementation of usecase.BookRepository.
type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func scanBook(row pgx.Row, b *entity.Book) error {
	return row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.ISBN,
		&b.TotalPages,
		&b.CurrentPage,
		&b.Status,
		&b.DateAdded,
		&b.DateStarted,
		&b.DateFinished,
		&b.Rating,
		&b.Notes,
	)
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
	INSERT INTO books (title, author, isbn, total_pages, current_page, status, date_started, date_finished, rating, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id, date_added
	`
	return r.db.QueryRow(ctx, query,
		b.Title,
		b.Author,
		b.ISBN,
		b.TotalPages,
		b.CurrentPage,
		b.Status,
		b.DateStarted,
		b.DateFinished,
		b.Rating,
		b.Notes,
	).Scan(&b.ID, &b.DateAdded)
}

func (r *BookPG) Get(ctx context.Context, id int64) (entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var b entity.Book
	if err := scanBook(r.db.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) List(ctx context.Context, p usecase.BookListParams) ([]entity.Book, error) {
	query := `
	SELECT ` + bookColumns + `
	FROM books
	WHERE ($1 = '' OR status = $1)
	ORDER BY id
	LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, string(p.Status), p.Limit, p.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		var b entity.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookPG) Update(ctx context.Context, b *entity.Book) error {
	const query = `
	UPDATE books
	SET title = $1, author = $2, isbn = $3, total_pages = $4, current_page = $5,
	    status = $6, date_started = $7, date_finished = $8, rating = $9, notes = $10
	WHERE id = $11
	`
	result, err := r.db.Exec(ctx, query,
		b.Title,
		b.Author,
		b.ISBN,
		b.TotalPages,
		b.CurrentPage,
		b.Status,
		b.DateStarted,
		b.DateFinished,
		b.Rating,
		b.Notes,
		b.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *BookPG) Delete(ctx context.Context, id int64) (entity.Book, error) {
	query := `DELETE FROM books WHERE id = $1 RETURNING ` + bookColumns

	var b entity.Book
	if err := scanBook(r.db.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}
