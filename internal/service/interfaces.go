// Package service defines the interfaces between the assistant and its collaborators.
package service

import (
	"context"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// HistoryStore persists chat exchanges. The assistant itself never reads it.
type HistoryStore interface {
	SaveExchange(ctx context.Context, exchange *model.Exchange) error
	GetConversation(ctx context.Context, conversationID string) ([]model.Exchange, error)
	ListConversations(ctx context.Context, limit int) ([]model.Conversation, error)
	ClearHistory(ctx context.Context) (int64, error)
	Close() error
}

// StatementSource fetches the raw balance and transactions from one provider.
type StatementSource interface {
	FetchStatement(ctx context.Context) (*model.Statement, error)
}

// SnapshotSource supplies the read-only context passed to the assistant.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*model.AssistantContext, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
