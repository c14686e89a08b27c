package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zingozingo/reading-tracker/internal/entity"
	"github.com/zingozingo/reading-tracker/internal/store/mocks"
	"github.com/zingozingo/reading-tracker/internal/testutil"
	"github.com/zingozingo/reading-tracker/internal/usecase"
)

type sessionHandlerMocks struct {
	sessions *mocks.MockSessionRepository
	tracker  *mocks.MockTrackerRepository
	books    *mocks.MockBookRepository
}

func newSessionMux(ctrl *gomock.Controller) (*http.ServeMux, sessionHandlerMocks) {
	m := sessionHandlerMocks{
		sessions: mocks.NewMockSessionRepository(ctrl),
		tracker:  mocks.NewMockTrackerRepository(ctrl),
		books:    mocks.NewMockBookRepository(ctrl),
	}
	h := NewSessionHandler(
		usecase.NewSessionService(m.sessions),
		usecase.NewTrackerService(m.tracker),
		usecase.NewBookService(m.books),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/books/{id}/sessions", h.Log)
	mux.HandleFunc("GET /api/v1/books/{id}/sessions", h.ListForBook)
	mux.HandleFunc("GET /api/v1/sessions", h.List)
	mux.HandleFunc("GET /api/v1/sessions/{id}", h.Get)
	mux.HandleFunc("PUT /api/v1/sessions/{id}/end", h.End)
	mux.HandleFunc("PUT /api/v1/sessions/{id}", h.Update)
	return mux, m
}

func TestSessionHandler_Log(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mux, m := newSessionMux(ctrl)

	t.Run("created", func(t *testing.T) {
		m.tracker.EXPECT().
			LogSession(gomock.Any(), int64(42), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, draft *entity.Session) (entity.Book, error) {
				draft.ID = 7
				draft.CreatedAt = time.Now()
				return entity.Book{ID: 42}, nil
			})

		body := map[string]interface{}{
			"start_time": "2024-03-01T14:30:00Z",
			"pages_read": 25,
		}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/v1/books/42/sessions", body))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusCreated, resp.Code)

		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, true, data["is_active"])
		assert.Nil(t, data["duration_minutes"])
		assert.Equal(t, float64(25), data["pages_read"])
	})

	t.Run("book not found", func(t *testing.T) {
		m.tracker.EXPECT().
			LogSession(gomock.Any(), int64(99), gomock.Any()).
			Return(entity.Book{}, usecase.ErrNotFound)

		body := map[string]interface{}{
			"start_time": "2024-03-01T14:30:00Z",
			"pages_read": 25,
		}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/v1/books/99/sessions", body))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("negative pages", func(t *testing.T) {
		body := map[string]interface{}{
			"start_time": "2024-03-01T14:30:00Z",
			"pages_read": -1,
		}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/v1/books/42/sessions", body))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("missing start time", func(t *testing.T) {
		body := map[string]interface{}{"pages_read": 10}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/v1/books/42/sessions", body))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestSessionHandler_ListForBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mux, m := newSessionMux(ctrl)

	t.Run("success", func(t *testing.T) {
		m.books.EXPECT().Get(gomock.Any(), int64(42)).Return(testutil.TestBook, nil)
		m.sessions.EXPECT().
			List(gomock.Any(), usecase.SessionListParams{BookID: 42, Page: usecase.Page{Limit: 100}}).
			Return([]entity.Session{testutil.TestSession}, nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/v1/books/42/sessions", nil))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)

		data := resp.Body["data"].([]interface{})
		assert.Len(t, data, 1)
	})

	t.Run("book not found", func(t *testing.T) {
		m.books.EXPECT().Get(gomock.Any(), int64(99)).Return(entity.Book{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/v1/books/99/sessions", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestSessionHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mux, m := newSessionMux(ctrl)

	t.Run("attaches books", func(t *testing.T) {
		m.sessions.EXPECT().
			ListWithBook(gomock.Any(), usecase.SessionListParams{Page: usecase.Page{Limit: 100}}).
			Return([]entity.SessionWithBook{{Session: testutil.TestSession, Book: testutil.TestBook}}, nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/v1/sessions", nil))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)

		data := resp.Body["data"].([]interface{})
		require.Len(t, data, 1)
		session := data[0].(map[string]interface{})
		book := session["book"].(map[string]interface{})
		assert.Equal(t, "Clean Code", book["title"])
	})

	t.Run("active only filter", func(t *testing.T) {
		m.sessions.EXPECT().
			ListWithBook(gomock.Any(), usecase.SessionListParams{ActiveOnly: true, Page: usecase.Page{Limit: 100}}).
			Return([]entity.SessionWithBook{}, nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/v1/sessions?active_only=true", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

func TestSessionHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mux, m := newSessionMux(ctrl)

	t.Run("found", func(t *testing.T) {
		m.sessions.EXPECT().
			GetWithBook(gomock.Any(), int64(7)).
			Return(entity.SessionWithBook{Session: testutil.TestSession, Book: testutil.TestBook}, nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/v1/sessions/7", nil))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)

		data := resp.Body["data"].(map[string]interface{})
		assert.NotNil(t, data["book"])
	})

	t.Run("not found", func(t *testing.T) {
		m.sessions.EXPECT().GetWithBook(gomock.Any(), int64(99)).Return(entity.SessionWithBook{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/api/v1/sessions/99", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestSessionHandler_End(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mux, m := newSessionMux(ctrl)

	t.Run("explicit end time", func(t *testing.T) {
		end := time.Date(2024, 3, 1, 15, 45, 0, 0, time.UTC)
		ended := testutil.TestSession
		ended.EndTime = &end
		m.sessions.EXPECT().End(gomock.Any(), int64(7), end).Return(ended, nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPut, "/api/v1/sessions/7/end?end_time=2024-03-01T15:45:00Z", nil))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)

		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, false, data["is_active"])
		assert.Equal(t, float64(75), data["duration_minutes"])
	})

	t.Run("defaults to now", func(t *testing.T) {
		m.sessions.EXPECT().
			End(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, id int64, endTime time.Time) (entity.Session, error) {
				s := testutil.TestSession
				s.EndTime = &endTime
				return s, nil
			})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPut, "/api/v1/sessions/7/end", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("already ended", func(t *testing.T) {
		m.sessions.EXPECT().
			End(gomock.Any(), int64(7), gomock.Any()).
			Return(entity.Session{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPut, "/api/v1/sessions/7/end", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("bad end time", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPut, "/api/v1/sessions/7/end?end_time=yesterday", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestSessionHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mux, m := newSessionMux(ctrl)

	t.Run("partial update", func(t *testing.T) {
		m.sessions.EXPECT().Get(gomock.Any(), int64(7)).Return(testutil.TestSession, nil)
		m.sessions.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		body := map[string]interface{}{"pages_read": 30}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPut, "/api/v1/sessions/7", body))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)

		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, float64(30), data["pages_read"])
	})

	t.Run("not found", func(t *testing.T) {
		m.sessions.EXPECT().Get(gomock.Any(), int64(99)).Return(entity.Session{}, usecase.ErrNotFound)

		body := map[string]interface{}{"pages_read": 30}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.NewRequest(http.MethodPut, "/api/v1/sessions/99", body))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
