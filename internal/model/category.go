package model

import "fmt"

// QueryCategory is the topic bucket a user query is routed to.
type QueryCategory string

const (
	// CategoryStocks covers equities, share markets and portfolio construction.
	CategoryStocks QueryCategory = "stocks"
	// CategoryInvesting covers mutual funds, SIPs and long-term investing.
	CategoryInvesting QueryCategory = "investing"
	// CategoryBudgeting covers spending plans and expense tracking.
	CategoryBudgeting QueryCategory = "budgeting"
	// CategorySaving covers emergency funds, deposits and savings goals.
	CategorySaving QueryCategory = "saving"
	// CategoryGeneral is the fallback for everything else.
	CategoryGeneral QueryCategory = "general"
)

// AllCategories returns every category in classification priority order.
func AllCategories() []QueryCategory {
	return []QueryCategory{
		CategoryStocks,
		CategoryInvesting,
		CategoryBudgeting,
		CategorySaving,
		CategoryGeneral,
	}
}

// ParseCategory converts a string into a QueryCategory.
func ParseCategory(s string) (QueryCategory, error) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown query category %q", s)
}

// CarriesDisclaimer reports whether responses in this category need a regulatory disclaimer.
func (c QueryCategory) CarriesDisclaimer() bool {
	return c == CategoryStocks || c == CategoryInvesting
}

func (c QueryCategory) String() string {
	return string(c)
}
