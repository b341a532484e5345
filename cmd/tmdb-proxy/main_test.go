package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/filmgrid/tmdb-client/internal/testutil"
	"github.com/filmgrid/tmdb-client/pkg/metrics"
	"github.com/filmgrid/tmdb-client/pkg/tmdb"
)

func newTestClient(t *testing.T, mock *testutil.MockTMDB) *tmdb.Client {
	t.Helper()

	client, err := tmdb.New(context.Background(), tmdb.Config{
		APIKey:  "test-key",
		BaseURL: mock.URL(),
	})
	if err != nil {
		t.Fatalf("Failed to create TMDB client: %v", err)
	}

	return client
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	healthHandler(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	if string(body) != "OK" {
		t.Errorf("Expected body 'OK', got %s", string(body))
	}
}

func TestReadyEndpoint_NoRedis(t *testing.T) {
	handler := readyHandler(nil)

	req := httptest.NewRequest("GET", "/ready", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	if string(body) != "OK" {
		t.Errorf("Expected body 'OK', got %s", string(body))
	}
}

func TestTMDBProxyHandler(t *testing.T) {
	mock := testutil.NewMockTMDB()
	defer mock.Close()

	mock.SetJSON("/movie/603", http.StatusOK, `{"id": 603, "title": "The Matrix"}`)

	client := newTestClient(t, mock)
	handler := tmdbProxyHandler(client, zerolog.Nop())

	t.Run("passthrough", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/tmdb/movie/603", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		resp := w.Result()
		body, _ := io.ReadAll(resp.Body)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", resp.StatusCode)
		}

		if !strings.Contains(string(body), "The Matrix") {
			t.Errorf("Expected movie payload, got %s", string(body))
		}
	})

	t.Run("tmdb_error_passed_through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/tmdb/movie/999999", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		resp := w.Result()
		body, _ := io.ReadAll(resp.Body)

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}

		if !strings.Contains(string(body), "status_message") {
			t.Errorf("Expected TMDB error body, got %s", string(body))
		}
	})

	t.Run("missing_endpoint", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/tmdb/", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		resp := w.Result()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
	})
}

func TestMetricsEndpoint(t *testing.T) {
	mock := testutil.NewMockTMDB()
	defer mock.Close()

	// Creating a client exercises the request path, which registers and
	// increments the tmdb metrics via the eager genre load.
	newTestClient(t, mock)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	handler := metrics.Handler()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	bodyStr := string(body)

	if !strings.Contains(bodyStr, "# HELP") || !strings.Contains(bodyStr, "# TYPE") {
		t.Error("Expected Prometheus format metrics output")
	}

	if !strings.Contains(bodyStr, "tmdb_requests_total") {
		t.Error("Expected metrics output to contain tmdb_requests_total")
	}
}
