package http

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zingozingo/reading-tracker/internal/httpx"
)

// SystemHandler serves the welcome, health and debug endpoints.
type SystemHandler struct {
	db *pgxpool.Pool
}

func NewSystemHandler(db *pgxpool.Pool) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, map[string]string{"message": "Welcome to Reading Tracker API"}, nil)
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, map[string]string{"status": "healthy"}, nil)
}

// Debug reports row counts per table. Counts only; anything more belongs in
// a real analytics surface.
func (h *SystemHandler) Debug(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int64{}
	for _, table := range []string{"books", "reading_sessions"} {
		var n int64
		// Table names come from the fixed list above, never from input.
		if err := h.db.QueryRow(r.Context(), "SELECT count(*) FROM "+table).Scan(&n); err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error", nil)
			return
		}
		counts[table] = n
	}

	httpx.JSONSuccess(w, map[string]interface{}{
		"database": "connected",
		"tables":   counts,
	}, nil)
}
