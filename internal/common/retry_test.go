package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = service.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     2 * time.Millisecond,
	Multiplier:   2,
}

func TestWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		wantCalls int
		wantErr   error
	}{
		{name: "succeeds first time", errs: []error{nil}, wantCalls: 1},
		{name: "retries rate limit", errs: []error{ErrRateLimit, nil}, wantCalls: 2},
		{name: "retries connection failure", errs: []error{ErrPlaidConnection, ErrPlaidConnection, nil}, wantCalls: 3},
		{name: "stops on permanent error", errs: []error{ErrInvalidAccount}, wantCalls: 1, wantErr: ErrInvalidAccount},
		{
			name:      "stops on explicit non-retryable",
			errs:      []error{&RetryableError{Err: ErrRateLimit, Retryable: false}},
			wantCalls: 1,
			wantErr:   ErrRateLimit,
		},
		{
			name:      "exhausts attempts",
			errs:      []error{ErrPlaidConnection, ErrPlaidConnection, ErrPlaidConnection},
			wantCalls: 3,
			wantErr:   ErrMaxRetries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), func() error {
				err := tt.errs[calls]
				calls++
				return err
			}, fastRetry)

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error { return ErrRateLimit }, service.RetryOptions{
		MaxAttempts:  5,
		InitialDelay: time.Hour,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff_Schedule(t *testing.T) {
	b := newBackoff(service.RetryOptions{
		MaxAttempts:  5,
		InitialDelay: 10 * time.Millisecond,
		MaxDelay:     35 * time.Millisecond,
		Multiplier:   2,
	})

	assert.Equal(t, 10*time.Millisecond, b.wait(ErrPlaidConnection))
	assert.Equal(t, 20*time.Millisecond, b.wait(ErrPlaidConnection))
	assert.Equal(t, 35*time.Millisecond, b.wait(ErrPlaidConnection))
	assert.Equal(t, 35*time.Millisecond, b.wait(ErrPlaidConnection))
	assert.Equal(t, 35*time.Millisecond, b.wait(ErrPlaidRateLimit))
}

func TestBackoff_Defaults(t *testing.T) {
	b := newBackoff(service.RetryOptions{})

	assert.Equal(t, defaultAttempts, b.attempts)
	assert.Equal(t, defaultFirstDelay, b.wait(ErrPlaidConnection))
	assert.Equal(t, defaultMaxDelay, b.wait(ErrRateLimit))
}

func TestUserMessage(t *testing.T) {
	err := NewUserError("Could not open the history database", errors.New("disk full"))
	wrapped := errors.Join(errors.New("outer"), err)

	assert.Equal(t, "Could not open the history database", UserMessage(wrapped))
	assert.Equal(t, "Could not open the history database: disk full", err.Error())
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", lvl.String())

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, "INFO", lvl.String())

	_, err = ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
