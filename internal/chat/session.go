// Package chat runs a conversation with the assistant: it gathers the
// financial snapshot, asks the engine and records each exchange.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/service"
	"github.com/google/uuid"
)

// Responder answers a single query. *engine.Assistant satisfies it.
type Responder interface {
	GenerateResponse(query string, actx *model.AssistantContext) model.AssistantResponse
}

// Session is one conversation. It is not safe for concurrent use.
type Session struct {
	responder Responder
	snapshots service.SnapshotSource
	history   service.HistoryStore
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
	id        string
	exchanges int
}

// Option configures a Session.
type Option func(*Session)

// WithSnapshots supplies the financial context for each answer.
func WithSnapshots(source service.SnapshotSource) Option {
	return func(s *Session) { s.snapshots = source }
}

// WithHistory records every exchange in store.
func WithHistory(store service.HistoryStore) Option {
	return func(s *Session) { s.history = store }
}

// WithConversationID continues an existing conversation.
func WithConversationID(id string) Option {
	return func(s *Session) { s.id = id }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession starts a conversation with responder.
func NewSession(responder Responder, opts ...Option) *Session {
	s := &Session{
		responder: responder,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = s.newID()
	}
	s.logger = slog.Default().With("component", "chat", "conversation", s.id)
	return s
}

// ID returns the conversation ID.
func (s *Session) ID() string {
	return s.id
}

// Exchanges returns how many queries this session has answered.
func (s *Session) Exchanges() int {
	return s.exchanges
}

// Ask answers query and records the exchange.
//
// An unavailable snapshot degrades to an answer without personalization.
// A history write failure is returned alongside the exchange, which is still
// valid and can be shown.
func (s *Session) Ask(ctx context.Context, query string) (*model.Exchange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	actx := s.snapshot(ctx)
	resp := s.responder.GenerateResponse(query, actx)

	exchange := &model.Exchange{
		ID:             s.newID(),
		ConversationID: s.id,
		Query:          query,
		Response:       resp,
		CreatedAt:      start,
	}
	s.exchanges++

	s.logger.Debug("Answered query",
		"category", resp.Category,
		"needs_clarification", resp.NeedsClarification,
		"disclaimer", resp.HasDisclaimer(),
		"personalized", actx != nil,
		"latency", s.now().Sub(start))

	if s.history != nil {
		if err := s.history.SaveExchange(ctx, exchange); err != nil {
			common.LogError(err, "Failed to save exchange", common.Fields{"conversation": s.id})
			return exchange, fmt.Errorf("failed to save exchange: %w", err)
		}
	}

	return exchange, nil
}

func (s *Session) snapshot(ctx context.Context) *model.AssistantContext {
	if s.snapshots == nil {
		return nil
	}
	actx, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		s.logger.Warn("Answering without financial snapshot", "error", err)
		return nil
	}
	return actx
}
