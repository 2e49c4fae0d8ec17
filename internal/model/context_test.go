package model

import (
	"math"
	"testing"
)

func TestAssistantContext_NilSafe(t *testing.T) {
	var c *AssistantContext

	if _, ok := c.BalanceValue(); ok {
		t.Error("nil context should have no balance")
	}
	if _, ok := c.TotalTransactionsValue(); ok {
		t.Error("nil context should have no transaction count")
	}
	if _, ok := c.TotalGoalsValue(); ok {
		t.Error("nil context should have no goal count")
	}
	if txns := c.ValidTransactions(); len(txns) != 0 {
		t.Errorf("nil context returned %d transactions", len(txns))
	}
}

func TestAssistantContext_BalanceValue(t *testing.T) {
	tests := []struct {
		name    string
		balance Optional[float64]
		want    float64
		ok      bool
	}{
		{name: "absent", balance: None[float64](), ok: false},
		{name: "present", balance: Balance(200000), want: 200000, ok: true},
		{name: "nan wrapped directly", balance: Some(math.NaN()), ok: false},
		{name: "infinity wrapped directly", balance: Some(math.Inf(1)), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &AssistantContext{Balance: tt.balance}
			got, ok := c.BalanceValue()
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("BalanceValue() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAssistantContext_Counts(t *testing.T) {
	c := &AssistantContext{
		TotalTransactions: Some(-3),
		TotalGoals:        Some(2),
	}
	if _, ok := c.TotalTransactionsValue(); ok {
		t.Error("negative transaction count should be treated as absent")
	}
	if n, ok := c.TotalGoalsValue(); !ok || n != 2 {
		t.Errorf("TotalGoalsValue() = (%d, %v), want (2, true)", n, ok)
	}
}

func TestAssistantContext_ValidTransactions(t *testing.T) {
	c := &AssistantContext{
		RecentTransactions: []ContextTransaction{
			{Amount: 100, Category: "Food", Type: TransactionExpense},
			{Amount: math.NaN(), Category: "Food", Type: TransactionExpense},
			{Amount: 5000, Category: "Salary", Type: TransactionIncome},
			{Amount: 20, Category: "Fees", Type: "refund"},
			{Amount: 40, Category: "  ", Type: TransactionExpense},
		},
	}

	got := c.ValidTransactions()
	if len(got) != 3 {
		t.Fatalf("ValidTransactions() returned %d, want 3", len(got))
	}
	if got[2].Category != "Uncategorized" {
		t.Errorf("blank category = %q, want Uncategorized", got[2].Category)
	}
	if c.RecentTransactions[4].Category != "  " {
		t.Error("ValidTransactions must not mutate the caller's context")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = (%q, %v)", c, got, err)
		}
	}
	if _, err := ParseCategory("crypto"); err == nil {
		t.Error("ParseCategory(crypto) should fail")
	}
}

func TestQueryCategory_CarriesDisclaimer(t *testing.T) {
	want := map[QueryCategory]bool{
		CategoryStocks:    true,
		CategoryInvesting: true,
		CategoryBudgeting: false,
		CategorySaving:    false,
		CategoryGeneral:   false,
	}
	for c, w := range want {
		if got := c.CarriesDisclaimer(); got != w {
			t.Errorf("%s.CarriesDisclaimer() = %v, want %v", c, got, w)
		}
	}
}
