package snapshot

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(day int, amount float64, txType model.TransactionType, category string) model.Transaction {
	t := model.Transaction{
		Date:         time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		MerchantName: category,
		Amount:       amount,
		Type:         txType,
		AccountID:    "acct",
	}
	if category != "" {
		t.Category = []string{"Parent", category}
	}
	t.Hash = t.GenerateHash()
	return t
}

func TestBuilder_Build(t *testing.T) {
	stmt := &model.Statement{
		Balance: model.Some(82000.0),
		Transactions: []model.Transaction{
			txn(20, 450, model.TransactionExpense, "Food"),
			txn(1, 85000, model.TransactionIncome, "Salary"),
			txn(10, 12000, model.TransactionExpense, "Rent"),
			txn(10, 12000, model.TransactionExpense, "Rent"),
			txn(25, 999, model.TransactionExpense, ""),
		},
	}

	actx := Builder{RecentLimit: 3, Goals: model.Count(2)}.Build(stmt)

	balance, ok := actx.BalanceValue()
	require.True(t, ok)
	assert.Equal(t, 82000.0, balance)

	total, ok := actx.TotalTransactionsValue()
	require.True(t, ok)
	assert.Equal(t, 4, total)

	goals, ok := actx.TotalGoalsValue()
	require.True(t, ok)
	assert.Equal(t, 2, goals)

	assert.Equal(t, []model.ContextTransaction{
		{Category: "Rent", Type: model.TransactionExpense, Amount: 12000},
		{Category: "Food", Type: model.TransactionExpense, Amount: 450},
		{Category: "", Type: model.TransactionExpense, Amount: 999},
	}, actx.RecentTransactions)
	assert.Len(t, stmt.Transactions, 5, "input must not be modified")
}

func TestBuilder_BuildEdgeCases(t *testing.T) {
	t.Run("nil statement", func(t *testing.T) {
		actx := NewBuilder(5).Build(nil)
		assert.False(t, actx.Balance.IsPresent())
		assert.False(t, actx.TotalTransactions.IsPresent())
		assert.Nil(t, actx.RecentTransactions)
	})

	t.Run("non-finite balance is absent", func(t *testing.T) {
		actx := NewBuilder(5).Build(&model.Statement{Balance: model.Some(math.NaN())})
		assert.False(t, actx.Balance.IsPresent())
		assert.Equal(t, model.Count(0), actx.TotalTransactions)
	})

	t.Run("zero limit keeps counts only", func(t *testing.T) {
		actx := Builder{}.Build(&model.Statement{Transactions: []model.Transaction{txn(1, 10, model.TransactionExpense, "Food")}})
		assert.Equal(t, model.Count(1), actx.TotalTransactions)
		assert.Empty(t, actx.RecentTransactions)
	})

	t.Run("missing hashes are computed", func(t *testing.T) {
		a := txn(2, 10, model.TransactionExpense, "Food")
		b := a
		a.Hash, b.Hash = "", ""
		actx := NewBuilder(5).Build(&model.Statement{Transactions: []model.Transaction{a, b}})
		assert.Equal(t, model.Count(1), actx.TotalTransactions)
	})

	t.Run("negative limit uses default", func(t *testing.T) {
		assert.Equal(t, DefaultRecentLimit, NewBuilder(-1).RecentLimit)
	})
}

type stubSource struct {
	stmt *model.Statement
	err  error
}

func (s stubSource) FetchStatement(context.Context) (*model.Statement, error) {
	return s.stmt, s.err
}

func TestProvider_Snapshot(t *testing.T) {
	provider := NewProvider(stubSource{stmt: &model.Statement{
		Source:       "test",
		Balance:      model.Some(1000.0),
		Transactions: []model.Transaction{txn(1, 10, model.TransactionExpense, "Food")},
	}}, NewBuilder(10))

	actx, err := provider.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Some(1000.0), actx.Balance)
	assert.Len(t, actx.RecentTransactions, 1)

	boom := errors.New("boom")
	_, err = NewProvider(stubSource{err: boom}, NewBuilder(10)).Snapshot(context.Background())
	assert.ErrorIs(t, err, common.ErrSnapshotUnavailable)
	assert.ErrorIs(t, err, boom)
}

func TestStatic_SnapshotCopies(t *testing.T) {
	static := Static{Context: model.AssistantContext{
		Balance:            model.Balance(500),
		RecentTransactions: []model.ContextTransaction{{Category: "Food", Type: model.TransactionExpense, Amount: 5}},
	}}

	first, err := static.Snapshot(context.Background())
	require.NoError(t, err)
	first.RecentTransactions[0].Amount = 1e6

	second, err := static.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5.0, second.RecentTransactions[0].Amount)
}

func TestOverlay_Snapshot(t *testing.T) {
	base := Static{Context: model.AssistantContext{Balance: model.Balance(100), TotalTransactions: model.Count(3)}}

	actx, err := Overlay{Base: base, Balance: model.Balance(250000), Goals: model.Count(1)}.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Balance(250000), actx.Balance)
	assert.Equal(t, model.Count(3), actx.TotalTransactions)
	assert.Equal(t, model.Count(1), actx.TotalGoals)

	actx, err = Overlay{Balance: model.Balance(10)}.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Balance(10), actx.Balance)
	assert.False(t, actx.TotalGoals.IsPresent())

	_, err = Overlay{Base: NewProvider(stubSource{err: errors.New("down")}, NewBuilder(1))}.Snapshot(context.Background())
	assert.ErrorIs(t, err, common.ErrSnapshotUnavailable)
}
