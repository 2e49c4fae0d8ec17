package engine

import (
	"regexp"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/classification"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

type topicRule struct {
	topic    Topic
	patterns []*regexp.Regexp
}

type personalizer func(topic Topic, actx *model.AssistantContext) (string, bool)

// TopicGenerator selects a template by second-level keywords and appends a
// personalized paragraph when the context allows it.
type TopicGenerator struct {
	personalize personalizer
	category    model.QueryCategory
	fallback    Topic
	rules       []topicRule
}

// Topic returns the sub-template a query selects. The first matching rule wins.
func (g *TopicGenerator) Topic(query string) Topic {
	for _, r := range g.rules {
		for _, re := range r.patterns {
			if re.MatchString(query) {
				return r.topic
			}
		}
	}
	return g.fallback
}

// Generate implements Generator.
func (g *TopicGenerator) Generate(query string, actx *model.AssistantContext) string {
	topic := g.Topic(query)
	content := templates[TemplateKey{Category: g.category, Topic: topic}]

	if g.personalize != nil {
		if paragraph, ok := g.personalize(topic, actx); ok {
			content += "\n\n" + paragraph
		}
	}
	return content
}

func keywords(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := classification.CompileKeyword(p)
		if err != nil {
			panic("engine: invalid topic keyword " + p + ": " + err.Error())
		}
		compiled = append(compiled, re)
	}
	return compiled
}

var defaultGenerators = map[model.QueryCategory]*TopicGenerator{
	model.CategoryStocks: {
		category: model.CategoryStocks,
		rules: []topicRule{
			{topic: TopicStockDiversification, patterns: keywords(`diversif\w*`, `portfolios?`)},
			{topic: TopicStockDividends, patterns: keywords(`dividends?`)},
			{topic: TopicStockIPO, patterns: keywords(`ipos?`)},
		},
		fallback:    TopicStockBasics,
		personalize: personalizeStocks,
	},
	model.CategoryInvesting: {
		category: model.CategoryInvesting,
		rules: []topicRule{
			{topic: TopicInvestSIP, patterns: keywords(`sips?`, `systematic`)},
			{topic: TopicInvestMutualFunds, patterns: keywords(`mutual\s+funds?`)},
			{topic: TopicInvestRetirement, patterns: keywords(`retire\w*`, `nps`, `ppf`, `pensions?`)},
		},
		fallback:    TopicInvestOverview,
		personalize: personalizeInvesting,
	},
	model.CategoryBudgeting: {
		category: model.CategoryBudgeting,
		rules: []topicRule{
			{topic: TopicBudgetRule50, patterns: keywords(
				`50/30/20`,
				`monthly\s+budgets?`,
				`(?:create|make|build|start|plan)\s+(?:a\s+|my\s+)?budget`,
			)},
			{topic: TopicBudgetTracking, patterns: keywords(`track\w*`, `expenses?`)},
		},
		fallback:    TopicBudgetOverview,
		personalize: personalizeBudgeting,
	},
	model.CategorySaving: {
		category: model.CategorySaving,
		rules: []topicRule{
			{topic: TopicSaveEmergency, patterns: keywords(`emergency`, `rainy\s+days?`)},
			{topic: TopicSaveGoals, patterns: keywords(`goals?`)},
		},
		fallback:    TopicSaveTips,
		personalize: personalizeSaving,
	},
	model.CategoryGeneral: {
		category:    model.CategoryGeneral,
		fallback:    TopicGeneralOverview,
		personalize: personalizeGeneral,
	},
}

// DefaultGenerators returns the built-in generator for every category.
func DefaultGenerators() map[model.QueryCategory]Generator {
	gens := make(map[model.QueryCategory]Generator, len(defaultGenerators))
	for c, g := range defaultGenerators {
		gens[c] = g
	}
	return gens
}

// TopicFor reports which sub-template a query selects within a category.
func TopicFor(category model.QueryCategory, query string) (Topic, bool) {
	g, ok := defaultGenerators[category]
	if !ok {
		return "", false
	}
	return g.Topic(query), true
}
