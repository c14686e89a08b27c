package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables on startup when they do not exist yet.
// The session foreign key cascades so deleting a book removes its sessions.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS books (
		id            BIGSERIAL PRIMARY KEY,
		title         VARCHAR(200) NOT NULL,
		author        VARCHAR(200) NOT NULL,
		isbn          VARCHAR(13),
		total_pages   INTEGER NOT NULL,
		current_page  INTEGER NOT NULL DEFAULT 0,
		status        TEXT NOT NULL DEFAULT 'want_to_read',
		date_added    TIMESTAMPTZ NOT NULL DEFAULT now(),
		date_started  TIMESTAMPTZ,
		date_finished TIMESTAMPTZ,
		rating        INTEGER,
		notes         TEXT
	);

	CREATE TABLE IF NOT EXISTS reading_sessions (
		id         BIGSERIAL PRIMARY KEY,
		book_id    BIGINT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
		start_time TIMESTAMPTZ NOT NULL,
		end_time   TIMESTAMPTZ,
		pages_read INTEGER NOT NULL DEFAULT 0,
		notes      TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_books_status ON books(status);
	CREATE INDEX IF NOT EXISTS idx_reading_sessions_book ON reading_sessions(book_id);
	CREATE INDEX IF NOT EXISTS idx_reading_sessions_active ON reading_sessions(book_id) WHERE end_time IS NULL;
	`

	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
