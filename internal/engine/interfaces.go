package engine

import "github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"

// Classifier defines the contract for routing queries to categories.
type Classifier interface {
	Classify(query string) model.QueryCategory
	IsVague(query string) bool
}

// Generator produces guidance text for one category.
// Implementations must be pure: the same query and context always yield the same text.
type Generator interface {
	Generate(query string, actx *model.AssistantContext) string
}
