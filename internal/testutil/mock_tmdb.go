// Package testutil provides testing utilities for the TMDB client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
)

// Default genre fixtures served by the mock unless a test overrides the
// genre endpoints.
const (
	MovieGenresBody = `{"genres": [{"id": 28, "name": "Action"}, {"id": 35, "name": "Comedy"}]}`
	TVGenresBody    = `{"genres": [{"id": 10759, "name": "Action & Adventure"}, {"id": 16, "name": "Animation"}]}`
)

// MockTMDB is a configurable fake TMDB API server for testing.
type MockTMDB struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	requestCount int
	pathCounts   map[string]int
	lastQuery    url.Values
	lastHeader   http.Header
}

// NewMockTMDB creates a mock TMDB server. Genre list endpoints respond
// with the default fixtures; every other unconfigured path returns a
// TMDB-style 404.
func NewMockTMDB() *MockTMDB {
	mock := &MockTMDB{
		handlers:   make(map[string]http.HandlerFunc),
		pathCounts: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.pathCounts[r.URL.Path]++
		mock.lastQuery = r.URL.Query()
		mock.lastHeader = r.Header.Clone()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL, usable as the client's BaseURL.
func (m *MockTMDB) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockTMDB) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockTMDB) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.pathCounts = make(map[string]int)
	m.lastQuery = nil
	m.lastHeader = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockTMDB) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetJSON configures a fixed JSON response for a path.
func (m *MockTMDB) SetJSON(path string, status int, body string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json;charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	})
}

// RequestCount returns the total number of requests received.
func (m *MockTMDB) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// RequestsFor returns the number of requests received for one path.
func (m *MockTMDB) RequestsFor(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pathCounts[path]
}

// LastQuery returns the query parameters of the most recent request.
func (m *MockTMDB) LastQuery() url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastQuery
}

// LastHeader returns the headers of the most recent request.
func (m *MockTMDB) LastHeader() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastHeader
}

// defaultHandler serves the genre fixtures and a TMDB-style 404 otherwise.
func (m *MockTMDB) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json;charset=utf-8")

	switch r.URL.Path {
	case "/genre/movie/list":
		fmt.Fprint(w, MovieGenresBody)
	case "/genre/tv/list":
		fmt.Fprint(w, TVGenresBody)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status_code": 34, "status_message": "The resource you requested could not be found."}`)
	}
}

// PageBody builds a TMDB list response body from raw result entities.
func PageBody(page, totalPages, totalResults int, results ...string) string {
	return fmt.Sprintf(`{"page": %d, "total_pages": %d, "total_results": %d, "results": [%s]}`,
		page, totalPages, totalResults, strings.Join(results, ", "))
}

// MovieBody builds a minimal valid movie summary entity.
func MovieBody(id int, title string) string {
	return fmt.Sprintf(`{"id": %d, "title": %q, "overview": "", "release_date": "2020-01-01", "vote_average": 7.1, "vote_count": 100, "poster_path": "/p%d.jpg", "backdrop_path": "", "genre_ids": [28], "original_language": "en", "original_title": %q, "popularity": 10.5, "video": false}`,
		id, title, id, title)
}

// TVSeriesBody builds a minimal valid TV series summary entity.
func TVSeriesBody(id int, name string) string {
	return fmt.Sprintf(`{"id": %d, "name": %q, "overview": "", "first_air_date": "2019-04-01", "vote_average": 8.0, "vote_count": 50, "poster_path": "/t%d.jpg", "backdrop_path": "", "genre_ids": [10759], "origin_country": ["US"], "original_language": "en", "original_name": %q, "popularity": 22.0}`,
		id, name, id, name)
}
