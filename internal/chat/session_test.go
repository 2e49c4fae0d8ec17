package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/engine"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/snapshot"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/storage"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newAssistant(t *testing.T) *engine.Assistant {
	t.Helper()
	a, err := engine.New()
	require.NoError(t, err)
	return a
}

func newStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	return testutil.SetupTestDB(t).Storage
}

type failingSnapshots struct{}

func (failingSnapshots) Snapshot(context.Context) (*model.AssistantContext, error) {
	return nil, common.ErrSnapshotUnavailable
}

type failingHistory struct {
	*storage.SQLiteStorage
}

func (failingHistory) SaveExchange(context.Context, *model.Exchange) error {
	return errors.New("disk full")
}

func TestSession_AskRecordsHistory(t *testing.T) {
	store := newStore(t)
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	session := NewSession(newAssistant(t),
		WithHistory(store),
		WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}))
	ctx := context.Background()

	first, err := session.Ask(ctx, "What is SIP investment?")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryInvesting, first.Response.Category)
	assert.NotEmpty(t, first.Response.Disclaimer)

	second, err := session.Ask(ctx, "hello")
	require.NoError(t, err)
	assert.True(t, second.Response.NeedsClarification)
	assert.Equal(t, 2, session.Exchanges())

	stored, err := store.GetConversation(ctx, session.ID())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	if diff := cmp.Diff(first.Response, stored[0].Response); diff != "" {
		t.Errorf("stored response differs (-asked +stored):\n%s", diff)
	}
	assert.Equal(t, "hello", stored[1].Query)
	assert.NotEqual(t, stored[0].ID, stored[1].ID)
}

func TestSession_Personalizes(t *testing.T) {
	session := NewSession(newAssistant(t), WithSnapshots(snapshot.Static{
		Context: *testutil.FixtureComfortable(),
	}))

	ex, err := session.Ask(context.Background(), "How do I build an emergency fund?")
	require.NoError(t, err)
	assert.Contains(t, ex.Response.Content, "Excellent!")
}

func TestSession_SnapshotFailureDegrades(t *testing.T) {
	a := newAssistant(t)
	session := NewSession(a, WithSnapshots(failingSnapshots{}))

	ex, err := session.Ask(context.Background(), "How do I build an emergency fund?")
	require.NoError(t, err)
	if diff := cmp.Diff(a.GenerateResponse("How do I build an emergency fund?", nil), ex.Response); diff != "" {
		t.Errorf("degraded answer differs from context-free answer:\n%s", diff)
	}
}

func TestSession_HistoryFailureStillAnswers(t *testing.T) {
	session := NewSession(newAssistant(t), WithHistory(failingHistory{newStore(t)}))

	ex, err := session.Ask(context.Background(), "How do I track my expenses?")
	require.Error(t, err)
	require.NotNil(t, ex)
	assert.Equal(t, model.CategoryBudgeting, ex.Response.Category)
}

func TestSession_ContinuesConversation(t *testing.T) {
	store := newStore(t)
	a := newAssistant(t)
	ctx := context.Background()

	first := NewSession(a, WithHistory(store))
	_, err := first.Ask(ctx, "How do I save more?")
	require.NoError(t, err)

	resumed := NewSession(a, WithHistory(store), WithConversationID(first.ID()))
	assert.Equal(t, first.ID(), resumed.ID())
	_, err = resumed.Ask(ctx, "What about goals?")
	require.NoError(t, err)

	conversations, err := store.ListConversations(ctx, 5)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 2, conversations[0].ExchangeCount)
}

func TestSession_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSession(newAssistant(t)).Ask(ctx, "What is SIP?")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_UniqueIDs(t *testing.T) {
	a := newAssistant(t)
	assert.NotEqual(t, NewSession(a).ID(), NewSession(a).ID())
}

func TestSession_BudgetingUsesRecentTransactions(t *testing.T) {
	session := NewSession(newAssistant(t), WithSnapshots(snapshot.Static{
		Context: *testutil.FixtureSteady(),
	}))

	ex, err := session.Ask(context.Background(), "How do I track my expenses?")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryBudgeting, ex.Response.Category)
	assert.Contains(t, ex.Response.Content, "Rent")
}
