package common

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/service"
)

var (
	// ErrRateLimit indicates that the API rate limit has been exceeded.
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrMaxRetries indicates that all retry attempts have been exhausted.
	ErrMaxRetries = errors.New("max retries exceeded")
)

// Defaults applied to zero RetryOptions fields.
const (
	defaultAttempts   = 3
	defaultFirstDelay = 100 * time.Millisecond
	defaultMaxDelay   = 30 * time.Second
	defaultMultiplier = 2.0
)

// RetryableError lets a caller force the retry decision for an error.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// backoff yields the wait before each retry. Rate limits jump straight to the ceiling.
type backoff struct {
	attempts   int
	next       time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newBackoff(opts service.RetryOptions) *backoff {
	b := &backoff{
		attempts:   opts.MaxAttempts,
		next:       opts.InitialDelay,
		ceiling:    opts.MaxDelay,
		multiplier: opts.Multiplier,
	}
	if b.attempts <= 0 {
		b.attempts = defaultAttempts
	}
	if b.next <= 0 {
		b.next = defaultFirstDelay
	}
	if b.ceiling <= 0 {
		b.ceiling = defaultMaxDelay
	}
	if b.multiplier <= 0 {
		b.multiplier = defaultMultiplier
	}
	return b
}

func (b *backoff) wait(cause error) time.Duration {
	if errors.Is(cause, ErrRateLimit) || errors.Is(cause, ErrPlaidRateLimit) {
		return b.ceiling
	}
	d := min(b.next, b.ceiling)
	b.next = min(time.Duration(float64(b.next)*b.multiplier), b.ceiling)
	return d
}

// WithRetry runs operation until it succeeds, fails with an error IsRetryable
// rejects, or runs out of attempts. Waits between attempts grow by
// opts.Multiplier and stop early when ctx is done.
func WithRetry(ctx context.Context, operation func() error, opts service.RetryOptions) error {
	b := newBackoff(opts)

	for attempt := 1; ; attempt++ {
		err := operation()
		switch {
		case err == nil:
			return nil
		case !IsRetryable(err):
			return err
		case attempt >= b.attempts:
			return fmt.Errorf("%w after %d attempts: %v", ErrMaxRetries, attempt, err)
		}

		delay := b.wait(err)
		slog.Warn("Snapshot request failed, retrying",
			"attempt", attempt,
			"max_attempts", b.attempts,
			"delay", delay,
			"error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
