// Package snapshot turns provider statements into the read-only context the
// assistant personalizes answers with.
package snapshot

import (
	"sort"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// DefaultRecentLimit bounds how many recent transactions reach the assistant.
const DefaultRecentLimit = 10

// Builder aggregates a statement into an AssistantContext.
type Builder struct {
	// Goals is the savings goal count to report, when known.
	Goals model.Optional[int]
	// RecentLimit caps RecentTransactions; zero disables them.
	RecentLimit int
}

// NewBuilder creates a builder keeping the given number of recent transactions.
func NewBuilder(recentLimit int) Builder {
	if recentLimit < 0 {
		recentLimit = DefaultRecentLimit
	}
	return Builder{RecentLimit: recentLimit}
}

// Build aggregates stmt. A nil statement yields a context with only the goal count.
//
// Transactions are deduplicated by hash, ordered oldest first and cut to the
// most recent RecentLimit. TotalTransactions counts every distinct
// transaction, not just the recent ones.
func (b Builder) Build(stmt *model.Statement) *model.AssistantContext {
	actx := &model.AssistantContext{TotalGoals: b.Goals}
	if stmt == nil {
		return actx
	}

	if v, ok := stmt.Balance.Get(); ok {
		actx.Balance = model.Balance(v)
	}

	txns := dedupe(stmt.Transactions)
	actx.TotalTransactions = model.Count(len(txns))

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})

	if b.RecentLimit > 0 && len(txns) > 0 {
		recent := txns
		if len(recent) > b.RecentLimit {
			recent = recent[len(recent)-b.RecentLimit:]
		}
		actx.RecentTransactions = make([]model.ContextTransaction, 0, len(recent))
		for i := range recent {
			actx.RecentTransactions = append(actx.RecentTransactions, recent[i].ToContext())
		}
	}

	return actx
}

// dedupe drops repeated transactions, keeping the first occurrence. It never
// modifies the input.
func dedupe(txns []model.Transaction) []model.Transaction {
	seen := make(map[string]struct{}, len(txns))
	unique := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		hash := t.Hash
		if hash == "" {
			hash = t.GenerateHash()
		}
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}
		unique = append(unique, t)
	}
	return unique
}
