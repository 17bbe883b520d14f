package coda

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Common errors returned by the Coda client.
var (
	// ErrExportFailed is returned when a page export reports failure.
	ErrExportFailed = errors.New("page export failed")

	// ErrExportTimeout is returned when an export does not complete
	// within the configured poll budget.
	ErrExportTimeout = errors.New("page export did not complete in time")

	// ErrInvalidResponse is returned when the API responds with a body
	// that cannot be parsed as JSON.
	ErrInvalidResponse = errors.New("invalid JSON response")
)

// ValidationError is returned when configuration validation fails.
// Extractable via errors.As().
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// APIError is returned when the Coda API responds with a non-2xx status.
// Extractable via errors.As().
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the error message extracted from the response body
	// ("message" or "error" key), or the truncated raw body.
	Message string

	// RequestID is the X-Request-Id the client sent, for log correlation.
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("coda: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("coda: API error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is an APIError with status 404.
// The export status endpoint returns 404 until the request replicates,
// so callers treat this as retryable in that context.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// RateLimitError is returned when the API responds with 429.
// Extractable via errors.As().
type RateLimitError struct {
	// RetryAfter is the server-advised wait, parsed from the
	// Retry-After header. Defaults to 60 seconds if absent.
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("coda: rate limit exceeded, retry after %s", e.RetryAfter)
}
