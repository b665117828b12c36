package domain

import (
	"context"
	"errors"
)

// Domain errors represent business logic failures.
// Adapters map them to protocol-level failures via KindOf.
var (
	// ErrInvalidInput indicates malformed or invalid tool input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfig indicates missing or invalid startup configuration.
	// It is fatal at startup, never a per-request error.
	ErrConfig = errors.New("configuration error")

	// ErrAuth indicates the upstream rejected the credentials (401/403).
	// Never retried.
	ErrAuth = errors.New("authentication failed")

	// ErrUpstream indicates the upstream call failed: network, 5xx,
	// rate limiting, or a payload that could not be decoded.
	ErrUpstream = errors.New("upstream error")

	// ErrNotFound indicates no upstream record matches the requested id.
	ErrNotFound = errors.New("not found")

	// ErrMalformedRecord indicates an upstream record lacks its id.
	// Search skips such records; fetch surfaces the error.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrAmbiguousID indicates an id resolved to more than one record.
	ErrAmbiguousID = errors.New("ambiguous id")
)

// Error kinds reported to protocol callers.
const (
	KindInvalidInput    = "invalid_input"
	KindConfig          = "config"
	KindAuth            = "auth"
	KindUpstream        = "upstream"
	KindNotFound        = "not_found"
	KindMalformedRecord = "malformed_record"
	KindAmbiguousID     = "ambiguous_id"
	KindCancelled       = "cancelled"
	KindInternal        = "internal"
)

// KindOf maps an error chain to a stable kind string.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrConfig):
		return KindConfig
	case errors.Is(err, ErrAuth):
		return KindAuth
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrAmbiguousID):
		return KindAmbiguousID
	case errors.Is(err, ErrMalformedRecord):
		return KindMalformedRecord
	case errors.Is(err, ErrUpstream):
		return KindUpstream
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	default:
		return KindInternal
	}
}

// TransientError marks an upstream failure that may succeed on retry:
// 5xx responses, 408/429, network errors and per-call timeouts.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient checks if the error is worth retrying.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
