package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Transaction is a statement line fetched from a snapshot source.
type Transaction struct {
	Date         time.Time
	ID           string
	Name         string // Raw transaction description
	MerchantName string // Cleaned merchant name
	AccountID    string
	Hash         string
	Type         TransactionType
	Category     []string // Category hints from the source, most general first
	Amount       float64  // Always non-negative; Type carries the sign
}

// GenerateHash creates a unique hash for duplicate detection across sources.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.MerchantName,
		t.AccountID,
		t.Type)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// PrimaryCategory returns the most specific category hint, or "" when none.
func (t *Transaction) PrimaryCategory() string {
	if len(t.Category) == 0 {
		return ""
	}
	return t.Category[len(t.Category)-1]
}

// ToContext converts the statement line to the assistant's view of it.
func (t *Transaction) ToContext() ContextTransaction {
	return ContextTransaction{
		Amount:   t.Amount,
		Category: t.PrimaryCategory(),
		Type:     t.Type,
	}
}

// Statement is what a snapshot source reports: the current balance and the
// transactions it could see.
type Statement struct {
	AsOf         time.Time
	Source       string
	Balance      Optional[float64]
	Transactions []Transaction
}
