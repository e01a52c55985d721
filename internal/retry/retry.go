// Package retry runs an operation under a bounded retry policy.
package retry

import (
	"context"
	"time"
)

// Policy decides how often and when a failed operation is attempted again.
type Policy struct {
	// MaxRetries is the number of attempts made after the first one.
	MaxRetries int
	// Backoff is the fixed wait between attempts.
	Backoff time.Duration
	// IsTransient reports whether an error is worth another attempt.
	// A nil func treats every error as final.
	IsTransient func(error) bool
	// OnRetry, when set, is called before each wait with the attempt that failed.
	OnRetry func(attempt int, err error)
}

// Do calls op until it succeeds, returns a non-transient error, the retry
// budget is spent or ctx is done. It returns the last error from op, or
// ctx.Err() when ctx ends during a backoff.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if attempt > p.MaxRetries || p.IsTransient == nil || !p.IsTransient(err) {
			return zero, err
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}
		if err := sleep(ctx, p.Backoff); err != nil {
			return zero, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DefaultMaxRetries is the number of retries upstream fetches get after the first attempt.
const DefaultMaxRetries = 2
