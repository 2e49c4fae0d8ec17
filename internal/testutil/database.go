// Package testutil provides shared fixtures for tests: a migrated history
// database and a fluent builder for assistant contexts.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a migrated history database in a temporary directory,
// seeded with the given exchanges. It is closed when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	session := chat.NewSession(assistant, chat.WithHistory(db.Storage))
func SetupTestDB(t *testing.T, seed ...*model.Exchange) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "finwise.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Register cleanup
	t.Cleanup(func() {
		_ = store.Close()
	})

	// Run migrations
	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	for _, ex := range seed {
		if err := store.SaveExchange(ctx, ex); err != nil {
			t.Fatalf("failed to seed exchange %q: %v", ex.ID, err)
		}
	}

	return &TestDB{Storage: store, t: t}
}

// MustConversation returns the stored exchanges of a conversation or fails the test.
func (db *TestDB) MustConversation(conversationID string) []model.Exchange {
	db.t.Helper()
	exchanges, err := db.Storage.GetConversation(context.Background(), conversationID)
	if err != nil {
		db.t.Fatalf("failed to load conversation %q: %v", conversationID, err)
	}
	return exchanges
}
