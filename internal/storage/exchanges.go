package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/service"
	"github.com/mattn/go-sqlite3"
)

// SaveExchange appends an exchange to its conversation, creating the
// conversation on first use.
func (s *SQLiteStorage) SaveExchange(ctx context.Context, exchange *model.Exchange) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExchange(exchange); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveExchangeTx(ctx, tx, exchange)
	})
}

func (s *SQLiteStorage) saveExchangeTx(ctx context.Context, q queryable, exchange *model.Exchange) error {
	createdAt := exchange.CreatedAt.UTC()

	_, err := q.ExecContext(ctx, `
		INSERT INTO conversations (id, first_query, started_at, last_message_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_message_at = MAX(last_message_at, excluded.last_message_at)
	`, exchange.ConversationID, exchange.Query, createdAt, createdAt)
	if err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	resp := exchange.Response
	_, err = q.ExecContext(ctx, `
		INSERT INTO exchanges (id, conversation_id, query, content, disclaimer, category, needs_clarification, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, exchange.ID, exchange.ConversationID, exchange.Query, resp.Content, resp.Disclaimer,
		string(resp.Category), resp.NeedsClarification, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: exchange %s", common.ErrDuplicateEntry, exchange.ID)
		}
		return fmt.Errorf("failed to save exchange: %w", err)
	}

	return nil
}

// GetConversation returns a conversation's exchanges, oldest first.
func (s *SQLiteStorage) GetConversation(ctx context.Context, conversationID string) ([]model.Exchange, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(conversationID, "conversationID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conversation_id, query, content, disclaimer, category, needs_clarification, created_at
		FROM exchanges
		WHERE conversation_id = ?
		ORDER BY created_at, rowid
	`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var exchanges []model.Exchange
	for rows.Next() {
		var ex model.Exchange
		var category string
		if err := rows.Scan(
			&ex.ID,
			&ex.ConversationID,
			&ex.Query,
			&ex.Response.Content,
			&ex.Response.Disclaimer,
			&category,
			&ex.Response.NeedsClarification,
			&ex.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		ex.Response.Category = model.QueryCategory(category)
		exchanges = append(exchanges, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchanges: %w", err)
	}

	if len(exchanges) == 0 {
		return nil, fmt.Errorf("%w: conversation %s", common.ErrNotFound, conversationID)
	}
	return exchanges, nil
}

// ListConversations returns up to limit conversations, most recently active first.
func (s *SQLiteStorage) ListConversations(ctx context.Context, limit int) ([]model.Conversation, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.first_query, c.started_at, c.last_message_at,
			(SELECT COUNT(*) FROM exchanges e WHERE e.conversation_id = c.id)
		FROM conversations c
		ORDER BY c.last_message_at DESC, c.id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var conversations []model.Conversation
	for rows.Next() {
		var c model.Conversation
		if err := rows.Scan(&c.ID, &c.FirstQuery, &c.StartedAt, &c.LastMessageAt, &c.ExchangeCount); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversations: %w", err)
	}

	return conversations, nil
}

// ClearHistory deletes every conversation and returns how many exchanges were removed.
func (s *SQLiteStorage) ClearHistory(ctx context.Context) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var removed int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM exchanges`)
		if err != nil {
			return fmt.Errorf("failed to delete exchanges: %w", err)
		}
		if removed, err = result.RowsAffected(); err != nil {
			return fmt.Errorf("failed to count deleted exchanges: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM conversations`); err != nil {
			return fmt.Errorf("failed to delete conversations: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// CategoryCounts reports how many answered exchanges fell into each category.
// Clarification prompts are counted under the empty category.
func (s *SQLiteStorage) CategoryCounts(ctx context.Context) (map[model.QueryCategory]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*)
		FROM exchanges
		GROUP BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[model.QueryCategory]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[model.QueryCategory(category)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category counts: %w", err)
	}

	return counts, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var _ service.HistoryStore = (*SQLiteStorage)(nil)
