package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/zingozingo/reading-tracker/internal/entity"
)

// TestBook is a mock book for testing
var TestBook = entity.Book{
	ID:          42,
	Title:       "Clean Code",
	Author:      "R. Martin",
	TotalPages:  464,
	CurrentPage: 0,
	Status:      entity.StatusWantToRead,
	DateAdded:   time.Now(),
}

// TestSession is a mock reading session for testing
var TestSession = entity.Session{
	ID:        7,
	BookID:    42,
	StartTime: time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC),
	PagesRead: 25,
	CreatedAt: time.Now(),
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse holds the recorded HTTP response for assertions
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
