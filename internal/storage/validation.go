// Package storage persists chat history in SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidLimit    = errors.New("limit must be positive")
	ErrInvalidExchange = errors.New("invalid exchange")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	return nil
}

// validateExchange validates an exchange before it is stored.
func validateExchange(exchange *model.Exchange) error {
	if exchange == nil {
		return fmt.Errorf("%w: exchange", ErrNilParameter)
	}
	if strings.TrimSpace(exchange.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidExchange)
	}
	if strings.TrimSpace(exchange.ConversationID) == "" {
		return fmt.Errorf("%w: missing conversation ID", ErrInvalidExchange)
	}
	if exchange.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidExchange)
	}
	if exchange.Response.Content == "" {
		return fmt.Errorf("%w: missing response content", ErrInvalidExchange)
	}
	if !exchange.Response.NeedsClarification {
		if _, err := model.ParseCategory(string(exchange.Response.Category)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidExchange, err)
		}
	}
	return nil
}
