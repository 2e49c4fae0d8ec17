package testutil

import "github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"

// ContextBuilder provides a fluent interface for constructing assistant contexts.
// Fields that are never set stay absent.
type ContextBuilder struct {
	ctx model.AssistantContext
}

// NewContextBuilder starts an empty context.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{}
}

// WithBalance sets the account balance.
func (b *ContextBuilder) WithBalance(v float64) *ContextBuilder {
	b.ctx.Balance = model.Balance(v)
	return b
}

// WithGoals sets the savings goal count.
func (b *ContextBuilder) WithGoals(n int) *ContextBuilder {
	b.ctx.TotalGoals = model.Count(n)
	return b
}

// WithTransactionCount sets the total number of transactions on record.
func (b *ContextBuilder) WithTransactionCount(n int) *ContextBuilder {
	b.ctx.TotalTransactions = model.Count(n)
	return b
}

// WithIncome appends a recent income transaction.
func (b *ContextBuilder) WithIncome(amount float64, category string) *ContextBuilder {
	return b.withTransaction(amount, category, model.TransactionIncome)
}

// WithExpense appends a recent expense transaction.
func (b *ContextBuilder) WithExpense(amount float64, category string) *ContextBuilder {
	return b.withTransaction(amount, category, model.TransactionExpense)
}

func (b *ContextBuilder) withTransaction(amount float64, category string, t model.TransactionType) *ContextBuilder {
	b.ctx.RecentTransactions = append(b.ctx.RecentTransactions, model.ContextTransaction{
		Amount:   amount,
		Category: category,
		Type:     t,
	})
	return b
}

// Build returns a copy of the context built so far.
func (b *ContextBuilder) Build() *model.AssistantContext {
	out := b.ctx
	out.RecentTransactions = append([]model.ContextTransaction(nil), b.ctx.RecentTransactions...)
	return &out
}

// Fixture is a predefined financial situation.
type Fixture func() *model.AssistantContext

// Common fixtures, one per balance tier.
var (
	// FixtureStarter has a balance below the good-progress tier.
	FixtureStarter Fixture = func() *model.AssistantContext {
		return NewContextBuilder().
			WithBalance(12000).
			WithIncome(25000, "Salary").
			WithExpense(9000, "Rent").
			WithExpense(4000, "Dining").
			WithTransactionCount(3).
			Build()
	}

	// FixtureSteady sits in the good-progress tier with one goal.
	FixtureSteady Fixture = func() *model.AssistantContext {
		return NewContextBuilder().
			WithBalance(85000).
			WithGoals(1).
			WithIncome(60000, "Salary").
			WithExpense(18000, "Rent").
			WithExpense(6000, "Groceries").
			WithTransactionCount(42).
			Build()
	}

	// FixtureComfortable is in the excellent tier.
	FixtureComfortable Fixture = func() *model.AssistantContext {
		return NewContextBuilder().
			WithBalance(250000).
			WithGoals(3).
			WithTransactionCount(120).
			Build()
	}
)
