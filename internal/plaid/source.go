package plaid

import (
	"context"
	"fmt"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// SourceName identifies statements produced by this package.
const SourceName = "plaid"

// DefaultLookback is how far back the source asks for transactions.
const DefaultLookback = 30 * 24 * time.Hour

// depositoryType is Plaid's account type for checking and savings accounts.
const depositoryType = "depository"

// Source adapts a Fetcher into a statement source.
type Source struct {
	fetcher  Fetcher
	now      func() time.Time
	lookback time.Duration
}

// NewSource creates a statement source over fetcher. A non-positive lookback uses DefaultLookback.
func NewSource(fetcher Fetcher, lookback time.Duration) *Source {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	return &Source{fetcher: fetcher, lookback: lookback, now: time.Now}
}

// FetchStatement implements service.StatementSource.
func (s *Source) FetchStatement(ctx context.Context) (*model.Statement, error) {
	balances, err := s.fetcher.GetBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balances: %w", err)
	}

	end := s.now()
	txns, err := s.fetcher.GetTransactions(ctx, end.Add(-s.lookback), end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return &model.Statement{
		AsOf:         end,
		Source:       SourceName,
		Balance:      DepositoryBalance(balances),
		Transactions: txns,
	}, nil
}

// DepositoryBalance sums the current balances of depository accounts.
// Credit and loan balances are owed money and are left out. The result is
// absent when no depository account reports a balance.
func DepositoryBalance(balances []AccountBalance) model.Optional[float64] {
	var total float64
	found := false
	for _, b := range balances {
		if b.Type != depositoryType {
			continue
		}
		if v, ok := b.Current.Get(); ok {
			total += v
			found = true
		}
	}
	if !found {
		return model.None[float64]()
	}
	return model.Balance(total)
}
