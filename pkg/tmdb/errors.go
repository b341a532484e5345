package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the client.
var (
	// ErrGenreNotFound is returned when no genre domain contains the
	// requested ID, even after refreshing unloaded domains.
	ErrGenreNotFound = errors.New("genre not found")
)

// APIError represents a non-2xx TMDB response. The client performs no
// retries or translation; the error carries what the server said.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tmdb %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("tmdb %s: status %d", e.Endpoint, e.StatusCode)
}

// IsNotFound reports whether the error is a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// newAPIError builds an APIError from a failed response, extracting TMDB's
// status_message when the body carries one.
func newAPIError(endpoint string, statusCode int, body []byte) *APIError {
	var status struct {
		StatusMessage string `json:"status_message"`
	}
	_ = json.Unmarshal(body, &status)

	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    status.StatusMessage,
	}
}
