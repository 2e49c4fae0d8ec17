// Package engine implements the deterministic finance assistant: it classifies a
// query, renders the matching guidance template and attaches disclaimers.
package engine

import (
	"fmt"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/classification"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// Assistant answers finance questions without calling a language model.
// It holds no mutable state; one Assistant may serve concurrent callers.
type Assistant struct {
	classifier Classifier
	generators map[model.QueryCategory]Generator
}

// New creates an assistant with the built-in classifier and generators.
func New() (*Assistant, error) {
	classifier, err := classification.NewDefaultClassifier()
	if err != nil {
		return nil, fmt.Errorf("failed to build query classifier: %w", err)
	}
	return NewWithClassifier(classifier), nil
}

// NewWithClassifier creates an assistant with a custom classifier and the built-in generators.
func NewWithClassifier(classifier Classifier) *Assistant {
	return &Assistant{
		classifier: classifier,
		generators: DefaultGenerators(),
	}
}

// GenerateResponse answers a query. The context may be nil.
//
// Vague queries short-circuit to a clarification prompt without a disclaimer.
// Everything else is classified, rendered by the category's generator and,
// for stocks and investing, paired with a disclaimer.
func (a *Assistant) GenerateResponse(query string, actx *model.AssistantContext) model.AssistantResponse {
	if a.classifier.IsVague(query) {
		return model.AssistantResponse{
			Content:            ClarificationText,
			NeedsClarification: true,
		}
	}

	category := a.classifier.Classify(query)
	generator, ok := a.generators[category]
	if !ok {
		category = model.CategoryGeneral
		generator = a.generators[model.CategoryGeneral]
	}

	resp := model.AssistantResponse{
		Content:  generator.Generate(query, actx),
		Category: category,
	}
	if disclaimer, ok := Disclaimer(category); ok {
		resp.Disclaimer = disclaimer
	}
	return resp
}

// Classify exposes the assistant's category decision for a query.
func (a *Assistant) Classify(query string) model.QueryCategory {
	return a.classifier.Classify(query)
}

// IsVague exposes the assistant's clarification decision for a query.
func (a *Assistant) IsVague(query string) bool {
	return a.classifier.IsVague(query)
}
