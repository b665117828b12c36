package jobtread

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

// ErrInvalidPayload indicates the response body could not be decoded.
var ErrInvalidPayload = errors.New("jobtread: invalid response payload")

// APIError represents a non-2xx JobTread API response.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("jobtread: API error %d (request %s)", e.StatusCode, e.RequestID)
	}
	return fmt.Sprintf("jobtread: API error %d: %s (request %s)", e.StatusCode, e.Message, e.RequestID)
}

// RateLimitError represents a 429 response.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("jobtread: rate limit exceeded, retry after %s", e.RetryAfter)
}

// classify maps an API error onto the domain taxonomy.
func classify(apiErr *APIError, retryAfter time.Duration) error {
	switch code := apiErr.StatusCode; {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrAuth, apiErr)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrNotFound, apiErr)
	case code == http.StatusTooManyRequests:
		return &domain.TransientError{
			Err: fmt.Errorf("%w: %w: %w", domain.ErrUpstream, &RateLimitError{RetryAfter: retryAfter}, apiErr),
		}
	case isRecoverable(code):
		return &domain.TransientError{Err: fmt.Errorf("%w: %w", domain.ErrUpstream, apiErr)}
	default:
		return fmt.Errorf("%w: %w", domain.ErrUpstream, apiErr)
	}
}

// isRecoverable returns true if the status code is a possibly transient error.
func isRecoverable(code int) bool {
	return (code >= http.StatusInternalServerError && code <= 599 && code != http.StatusNotImplemented) ||
		code == http.StatusRequestTimeout
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}
	return false
}
