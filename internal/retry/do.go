package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Do runs op with exponential backoff until it succeeds, returns a
// non-retryable error, or exhausts cfg.MaxAttempts.
func Do[T any](ctx context.Context, cfg Config, op func() (T, error)) (T, error) {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = cfg.MinWait
	expo.MaxInterval = cfg.MaxWait

	wrapped := func() (T, error) {
		v, err := op()
		if err != nil && !IsRetryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	return backoff.Retry(ctx, wrapped,
		backoff.WithBackOff(expo),
		backoff.WithMaxTries(uint(cfg.MaxAttempts)),
		backoff.WithNotify(func(err error, delay time.Duration) {
			slog.Warn("retrying after error", "delay", delay, "error", err)
		}),
	)
}

// EnsureTimeout returns a context with the given timeout if none exists.
// If the context already has a deadline, it returns the original context
// unchanged. The returned cancel function is always safe to call.
func EnsureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
