// Package classification routes free-text finance questions to topic categories.
package classification

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// Keyword is one auditable trigger for a category.
type Keyword struct {
	Label   string `yaml:"label" json:"label"`     // Human readable form, e.g. "mutual fund"
	Pattern string `yaml:"pattern" json:"pattern"` // Regex fragment, anchored on word boundaries when compiled
}

// Rule binds a category to the keywords that select it.
type Rule struct {
	Category model.QueryCategory `yaml:"category" json:"category"`
	Keywords []Keyword           `yaml:"keywords" json:"keywords"`
}

// Match describes which rule fired for a query.
type Match struct {
	Category model.QueryCategory
	Keyword  string // Label of the keyword that matched; empty for the general fallback
}

type compiledKeyword struct {
	regex *regexp.Regexp
	Keyword
}

type compiledRule struct {
	category model.QueryCategory
	keywords []compiledKeyword
}

// QueryClassifier maps queries to categories by evaluating rules in order.
// The first rule with a matching keyword wins; queries matching nothing are general.
// A QueryClassifier is immutable after construction and safe for concurrent use.
type QueryClassifier struct {
	source []Rule
	rules  []compiledRule
	vague  []*regexp.Regexp
}

// CompileKeyword compiles a keyword fragment into a case-insensitive, word-bounded regex.
func CompileKeyword(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b(?:` + pattern + `)\b`)
}

// NewQueryClassifier creates a classifier from ordered rules and vague-query patterns.
func NewQueryClassifier(rules []Rule, vaguePatterns []string) (*QueryClassifier, error) {
	seen := make(map[model.QueryCategory]bool, len(rules))
	compiled := make([]compiledRule, 0, len(rules))

	for _, rule := range rules {
		if rule.Category == model.CategoryGeneral {
			return nil, fmt.Errorf("rule for %q is not allowed: general is the fallback category", rule.Category)
		}
		if _, err := model.ParseCategory(string(rule.Category)); err != nil {
			return nil, err
		}
		if seen[rule.Category] {
			return nil, fmt.Errorf("duplicate rule for category %q", rule.Category)
		}
		seen[rule.Category] = true

		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rule for category %q has no keywords", rule.Category)
		}

		cr := compiledRule{
			category: rule.Category,
			keywords: make([]compiledKeyword, 0, len(rule.Keywords)),
		}
		for _, kw := range rule.Keywords {
			re, err := CompileKeyword(kw.Pattern)
			if err != nil {
				return nil, fmt.Errorf("failed to compile keyword %q for %s: %w", kw.Label, rule.Category, err)
			}
			cr.keywords = append(cr.keywords, compiledKeyword{Keyword: kw, regex: re})
		}
		compiled = append(compiled, cr)
	}

	vague := make([]*regexp.Regexp, 0, len(vaguePatterns))
	for _, p := range vaguePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to compile vague pattern %q: %w", p, err)
		}
		vague = append(vague, re)
	}

	source := make([]Rule, len(rules))
	for i, r := range rules {
		source[i] = Rule{Category: r.Category, Keywords: append([]Keyword(nil), r.Keywords...)}
	}

	return &QueryClassifier{
		source: source,
		rules:  compiled,
		vague:  vague,
	}, nil
}

// NewDefaultClassifier creates a classifier with the built-in rule table.
func NewDefaultClassifier() (*QueryClassifier, error) {
	return NewQueryClassifier(DefaultRules(), DefaultVaguePatterns())
}

// Classify returns the category for a query. It never fails.
func (c *QueryClassifier) Classify(query string) model.QueryCategory {
	return c.Match(query).Category
}

// Match returns the category for a query together with the keyword that selected it.
func (c *QueryClassifier) Match(query string) Match {
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if kw.regex.MatchString(query) {
				return Match{Category: rule.category, Keyword: kw.Label}
			}
		}
	}
	return Match{Category: model.CategoryGeneral}
}

// IsVague reports whether a query is too short or generic to answer.
// The empty query is not vague; it is answered with the general overview.
func (c *QueryClassifier) IsVague(query string) bool {
	normalized := normalize(query)
	if normalized == "" {
		return false
	}
	for _, re := range c.vague {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}

// Rules returns a copy of the rule table in evaluation order.
func (c *QueryClassifier) Rules() []Rule {
	rules := make([]Rule, len(c.source))
	for i, r := range c.source {
		rules[i] = Rule{Category: r.Category, Keywords: append([]Keyword(nil), r.Keywords...)}
	}
	return rules
}

// KeywordCount returns the number of keywords across all rules.
func (c *QueryClassifier) KeywordCount() int {
	total := 0
	for _, r := range c.rules {
		total += len(r.keywords)
	}
	return total
}

// normalize trims, lower-cases and collapses internal whitespace.
func normalize(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
