package model

import "strings"

// TransactionType distinguishes money in from money out in the assistant context.
type TransactionType string

const (
	// TransactionIncome is money received.
	TransactionIncome TransactionType = "income"
	// TransactionExpense is money spent.
	TransactionExpense TransactionType = "expense"
)

// ContextTransaction is a recent transaction as seen by the assistant.
type ContextTransaction struct {
	Category string          `json:"category"`
	Type     TransactionType `json:"transactionType"`
	Amount   float64         `json:"amount"`
}

// Valid reports whether the transaction can be used in personalized text.
func (t ContextTransaction) Valid() bool {
	if !isFinite(t.Amount) {
		return false
	}
	return t.Type == TransactionIncome || t.Type == TransactionExpense
}

// AssistantContext is a read-only snapshot of the caller's finances.
// Recent transactions are ordered oldest first.
type AssistantContext struct {
	Balance            Optional[float64]
	TotalTransactions  Optional[int]
	TotalGoals         Optional[int]
	RecentTransactions []ContextTransaction
}

// BalanceValue returns the balance when present and finite.
func (c *AssistantContext) BalanceValue() (float64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.Balance.Get()
	if !ok || !isFinite(v) {
		return 0, false
	}
	return v, true
}

// TotalTransactionsValue returns the transaction count when present and non-negative.
func (c *AssistantContext) TotalTransactionsValue() (int, bool) {
	if c == nil {
		return 0, false
	}
	n, ok := c.TotalTransactions.Get()
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// TotalGoalsValue returns the goal count when present and non-negative.
func (c *AssistantContext) TotalGoalsValue() (int, bool) {
	if c == nil {
		return 0, false
	}
	n, ok := c.TotalGoals.Get()
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// ValidTransactions returns the recent transactions that carry usable values.
// Blank categories are reported as "Uncategorized".
func (c *AssistantContext) ValidTransactions() []ContextTransaction {
	if c == nil {
		return nil
	}
	valid := make([]ContextTransaction, 0, len(c.RecentTransactions))
	for _, t := range c.RecentTransactions {
		if !t.Valid() {
			continue
		}
		if strings.TrimSpace(t.Category) == "" {
			t.Category = "Uncategorized"
		}
		valid = append(valid, t)
	}
	return valid
}
