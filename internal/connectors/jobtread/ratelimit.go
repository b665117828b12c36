package jobtread

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// MaxRetryAfter caps how long a Retry-After header can block requests.
	MaxRetryAfter = time.Minute
)

// RateLimiter combines proactive throttling with server-directed backoff.
type RateLimiter struct {
	mu           sync.Mutex
	bucket       *rate.Limiter
	blockedUntil time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second.
func NewRateLimiter(rps float64) *RateLimiter {
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if wait := time.Until(r.BlockedUntil()); wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	return r.bucket.Wait(ctx)
}

// Observe records a 429 response and returns the parsed Retry-After delay.
func (r *RateLimiter) Observe(resp *http.Response) time.Duration {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return 0
	}

	delay := parseRetryAfter(resp.Header.Get(HeaderRetryAfter))
	if delay <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if until := time.Now().Add(delay); until.After(r.blockedUntil) {
		r.blockedUntil = until
	}
	return delay
}

// BlockedUntil returns the time before which requests are held back.
func (r *RateLimiter) BlockedUntil() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blockedUntil
}

// parseRetryAfter parses a Retry-After value in seconds, capped at MaxRetryAfter.
func parseRetryAfter(v string) time.Duration {
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return 0
	}
	d := time.Duration(seconds) * time.Second
	if d > MaxRetryAfter {
		return MaxRetryAfter
	}
	return d
}
