package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

// maxRetries is the number of retries after the first attempt.
const maxRetries = 1

// callPolicy bounds and retries individual upstream calls.
type callPolicy struct {
	timeout time.Duration
	backoff time.Duration
}

// do runs fn with a per-call timeout. Transient failures are retried once
// after the backoff; everything else is returned as is.
func (p callPolicy) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := p.attempt(ctx, fn)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt >= maxRetries || !domain.IsTransient(err) {
			return err
		}

		logger.Warn("%s: transient failure, retrying in %s: %v", op, p.backoff, err)
		if err := sleep(ctx, p.backoff); err != nil {
			return err
		}
	}
}

// attempt runs fn once and normalises its error into the domain taxonomy.
func (p callPolicy) attempt(ctx context.Context, fn func(ctx context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := fn(cctx)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		// The caller gave up; not an upstream failure.
		return err
	}
	if errors.Is(cctx.Err(), context.DeadlineExceeded) && !domain.IsTransient(err) {
		return &domain.TransientError{
			Err: fmt.Errorf("%w: call timed out after %s: %w", domain.ErrUpstream, p.timeout, err),
		}
	}
	if domain.KindOf(err) == domain.KindInternal {
		return fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
