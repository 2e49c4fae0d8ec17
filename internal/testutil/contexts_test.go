package testutil

import (
	"math"
	"testing"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextBuilder(t *testing.T) {
	actx := NewContextBuilder().
		WithBalance(50000).
		WithIncome(30000, "Salary").
		WithExpense(1200, "Dining").
		Build()

	assert.Equal(t, model.Some(50000.0), actx.Balance)
	assert.False(t, actx.TotalGoals.IsPresent())
	assert.False(t, actx.TotalTransactions.IsPresent())
	require.Len(t, actx.RecentTransactions, 2)
	assert.Equal(t, model.TransactionIncome, actx.RecentTransactions[0].Type)
	assert.Equal(t, "Dining", actx.RecentTransactions[1].Category)
}

func TestContextBuilder_NonFiniteBalanceIsAbsent(t *testing.T) {
	actx := NewContextBuilder().WithBalance(math.NaN()).WithGoals(-1).Build()

	assert.False(t, actx.Balance.IsPresent())
	assert.False(t, actx.TotalGoals.IsPresent())
}

func TestContextBuilder_BuildCopies(t *testing.T) {
	b := NewContextBuilder().WithExpense(100, "Fuel")
	first := b.Build()
	b.WithExpense(200, "Rent")

	assert.Len(t, first.RecentTransactions, 1)
	assert.Len(t, b.Build().RecentTransactions, 2)
}

func TestFixtures(t *testing.T) {
	tests := []struct {
		fixture Fixture
		name    string
		balance float64
	}{
		{name: "starter", fixture: FixtureStarter, balance: 12000},
		{name: "steady", fixture: FixtureSteady, balance: 85000},
		{name: "comfortable", fixture: FixtureComfortable, balance: 250000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actx := tt.fixture()
			v, ok := actx.Balance.Get()
			require.True(t, ok)
			assert.InDelta(t, tt.balance, v, 0.001)
		})
	}
}

func TestSetupTestDB_Seeds(t *testing.T) {
	ex := &model.Exchange{
		ID:             "ex-1",
		ConversationID: "conv-1",
		Query:          "how do I budget?",
		CreatedAt:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Response:       model.AssistantResponse{Content: "Track every rupee.", Category: model.CategoryBudgeting},
	}

	db := SetupTestDB(t, ex)

	stored := db.MustConversation("conv-1")
	require.Len(t, stored, 1)
	assert.Equal(t, "how do I budget?", stored[0].Query)
}
