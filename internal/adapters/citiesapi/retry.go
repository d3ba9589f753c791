package citiesapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// retryPolicy decides how often and how long to wait before repeating a
// failed backend call.
type retryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	MaxBackoff  time.Duration
	Retryable   func(error) bool
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		MaxAttempts: 4,
		Backoff:     200 * time.Millisecond,
		MaxBackoff:  5 * time.Second,
		Retryable:   isTransient,
	}
}

// delay returns the wait after the given 1-based attempt. It doubles per
// attempt and never exceeds MaxBackoff when that is set.
func (p retryPolicy) delay(attempt int) time.Duration {
	d := p.Backoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxBackoff > 0 && d >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}
	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

// run calls op until it succeeds, fails with a non-retryable error, the
// attempts are used up or ctx is done. onRetry, if set, sees every error
// that is about to be retried.
func (p retryPolicy) run(
	ctx context.Context,
	op func(ctx context.Context) error,
	onRetry func(attempt int, wait time.Duration, err error),
) error {
	attempts := max(p.MaxAttempts, 1)
	retryable := p.Retryable
	if retryable == nil {
		retryable = isTransient
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		err = op(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt == attempts {
			return err
		}

		wait := p.delay(attempt)
		if onRetry != nil {
			onRetry(attempt, wait, err)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}

// isTransient reports network failures, 429 and 5xx gateway responses.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
