package plaid

import (
	"context"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// Fetcher defines the contract for fetching account data from Plaid.
// This interface allows for easy mocking in tests.
type Fetcher interface {
	GetTransactions(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error)
	GetBalances(ctx context.Context) ([]AccountBalance, error)
}

// AccountBalance is the balance Plaid reports for one account.
type AccountBalance struct {
	Current  model.Optional[float64]
	ID       string
	Name     string
	Type     string
	Currency string
}
