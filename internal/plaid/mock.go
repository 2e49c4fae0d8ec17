package plaid

import (
	"context"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// MockClient is a mock implementation of Fetcher for testing.
type MockClient struct {
	GetTransactionsFn func(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error)
	GetBalancesFn     func(ctx context.Context) ([]AccountBalance, error)

	GetTransactionsCalls []GetTransactionsCall
	GetBalancesCalls     int
}

// GetTransactionsCall records the parameters of a GetTransactions call.
type GetTransactionsCall struct {
	StartDate time.Time
	EndDate   time.Time
}

// NewMockClient creates a new mock Plaid client.
func NewMockClient() *MockClient {
	return &MockClient{
		GetTransactionsCalls: []GetTransactionsCall{},
	}
}

// GetTransactions implements Fetcher.
func (m *MockClient) GetTransactions(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error) {
	m.GetTransactionsCalls = append(m.GetTransactionsCalls, GetTransactionsCall{
		StartDate: startDate,
		EndDate:   endDate,
	})

	if m.GetTransactionsFn != nil {
		return m.GetTransactionsFn(ctx, startDate, endDate)
	}
	return []model.Transaction{}, nil
}

// GetBalances implements Fetcher.
func (m *MockClient) GetBalances(ctx context.Context) ([]AccountBalance, error) {
	m.GetBalancesCalls++

	if m.GetBalancesFn != nil {
		return m.GetBalancesFn(ctx)
	}
	return []AccountBalance{}, nil
}

// Reset clears all call tracking.
func (m *MockClient) Reset() {
	m.GetTransactionsCalls = []GetTransactionsCall{}
	m.GetBalancesCalls = 0
}

var _ Fetcher = (*MockClient)(nil)
