package classification

import (
	"strings"
	"testing"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T) *QueryClassifier {
	t.Helper()
	c, err := NewDefaultClassifier()
	require.NoError(t, err)
	return c
}

func TestNewQueryClassifier(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		rules   []Rule
		vague   []string
		wantErr bool
	}{
		{
			name: "valid rules",
			rules: []Rule{
				{Category: model.CategoryStocks, Keywords: []Keyword{{Label: "stock", Pattern: `stocks?`}}},
				{Category: model.CategorySaving, Keywords: []Keyword{{Label: "save", Pattern: `save`}}},
			},
			vague: []string{`^hi$`},
		},
		{
			name:  "no rules",
			rules: []Rule{},
		},
		{
			name: "general rule rejected",
			rules: []Rule{
				{Category: model.CategoryGeneral, Keywords: []Keyword{{Label: "x", Pattern: `x`}}},
			},
			wantErr: true,
			errMsg:  "fallback category",
		},
		{
			name: "unknown category",
			rules: []Rule{
				{Category: "crypto", Keywords: []Keyword{{Label: "btc", Pattern: `btc`}}},
			},
			wantErr: true,
			errMsg:  "unknown query category",
		},
		{
			name: "duplicate category",
			rules: []Rule{
				{Category: model.CategoryStocks, Keywords: []Keyword{{Label: "stock", Pattern: `stock`}}},
				{Category: model.CategoryStocks, Keywords: []Keyword{{Label: "share", Pattern: `share`}}},
			},
			wantErr: true,
			errMsg:  "duplicate rule",
		},
		{
			name: "empty keywords",
			rules: []Rule{
				{Category: model.CategoryInvesting},
			},
			wantErr: true,
			errMsg:  "has no keywords",
		},
		{
			name: "invalid keyword regex",
			rules: []Rule{
				{Category: model.CategoryBudgeting, Keywords: []Keyword{{Label: "bad", Pattern: `[budget`}}},
			},
			wantErr: true,
			errMsg:  "failed to compile keyword",
		},
		{
			name:    "invalid vague pattern",
			vague:   []string{`(hi`},
			wantErr: true,
			errMsg:  "failed to compile vague pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewQueryClassifier(tt.rules, tt.vague)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Len(t, c.Rules(), len(tt.rules))
		})
	}
}

func TestQueryClassifier_Classify(t *testing.T) {
	c := newDefault(t)

	tests := []struct {
		name  string
		query string
		want  model.QueryCategory
	}{
		{name: "sip question", query: "What is SIP investment?", want: model.CategoryInvesting},
		{name: "monthly budget", query: "How do I create a monthly budget?", want: model.CategoryBudgeting},
		{name: "emergency fund", query: "How big should my emergency fund be?", want: model.CategorySaving},
		{name: "stock basics", query: "How do stocks work?", want: model.CategoryStocks},
		{name: "mutual funds", query: "Are mutual funds safe?", want: model.CategoryInvesting},
		{name: "case insensitive", query: "WHAT IS THE SENSEX", want: model.CategoryStocks},
		{name: "no keywords", query: "What is a credit score?", want: model.CategoryGeneral},
		{name: "empty query", query: "", want: model.CategoryGeneral},
		{name: "whitespace only", query: "   ", want: model.CategoryGeneral},
		{name: "word boundary respected", query: "I heard some gossip about my neighbour", want: model.CategoryGeneral},
		{name: "fragment inside word", query: "Is a stockpot a good gift?", want: model.CategoryGeneral},
		{name: "savings plural", query: "Where do I keep my savings?", want: model.CategorySaving},
		{name: "very long input", query: strings.Repeat("blah ", 5000) + "budget", want: model.CategoryBudgeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.query))
		})
	}
}

func TestQueryClassifier_PriorityOrder(t *testing.T) {
	c := newDefault(t)

	tests := []struct {
		name        string
		query       string
		want        model.QueryCategory
		wantKeyword string
	}{
		{
			name:        "stocks beats budgeting",
			query:       "Should I diversify my portfolio or track expenses first?",
			want:        model.CategoryStocks,
			wantKeyword: "portfolio",
		},
		{
			name:        "stocks beats investing on shared term",
			query:       "Build a portfolio of mutual funds",
			want:        model.CategoryStocks,
			wantKeyword: "portfolio",
		},
		{
			name:        "investing beats saving",
			query:       "Should I save in a SIP or a fixed deposit?",
			want:        model.CategoryInvesting,
			wantKeyword: "sip",
		},
		{
			name:        "budgeting beats saving",
			query:       "How can I save money on my monthly bills?",
			want:        model.CategoryBudgeting,
			wantKeyword: "bills",
		},
		{
			name:        "keyword order inside rule",
			query:       "Dividend stocks for beginners",
			want:        model.CategoryStocks,
			wantKeyword: "stock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := c.Match(tt.query)
			assert.Equal(t, tt.want, m.Category)
			assert.Equal(t, tt.wantKeyword, m.Keyword)
		})
	}
}

func TestDefaultRules_EveryKeywordReachable(t *testing.T) {
	c := newDefault(t)

	for _, rule := range DefaultRules() {
		for _, kw := range rule.Keywords {
			t.Run(string(rule.Category)+"/"+kw.Label, func(t *testing.T) {
				query := "Tell me about " + kw.Label + "."
				m := c.Match(query)
				assert.Equal(t, rule.Category, m.Category, "query %q", query)
				assert.Equal(t, kw.Label, m.Keyword, "keyword shadowed in query %q", query)
			})
		}
	}
}

func TestDefaultRules_NoDuplicateLabels(t *testing.T) {
	seen := make(map[string]model.QueryCategory)
	for _, rule := range DefaultRules() {
		for _, kw := range rule.Keywords {
			if prev, ok := seen[kw.Label]; ok {
				t.Errorf("keyword %q listed under both %s and %s", kw.Label, prev, rule.Category)
			}
			seen[kw.Label] = rule.Category
		}
	}
}

func TestQueryClassifier_IsVague(t *testing.T) {
	c := newDefault(t)

	tests := []struct {
		query string
		want  bool
	}{
		{query: "help", want: true},
		{query: "Help!", want: true},
		{query: "  HELP  ", want: true},
		{query: "help me", want: true},
		{query: "help   please?", want: true},
		{query: "hi", want: true},
		{query: "Hello", want: true},
		{query: "hey there!", want: true},
		{query: "ok", want: true},
		{query: "thank you.", want: true},
		{query: "???", want: true},
		{query: "", want: false},
		{query: "   ", want: false},
		{query: "help me budget", want: false},
		{query: "help with money", want: false},
		{query: "hi, what is a SIP?", want: false},
		{query: "helpful tips on saving", want: false},
		{query: "history", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsVague(tt.query))
		})
	}
}

func TestQueryClassifier_HelpFragmentsAreClassified(t *testing.T) {
	c := newDefault(t)

	assert.Equal(t, model.CategoryGeneral, c.Classify("help with money"))
	assert.Equal(t, model.CategoryBudgeting, c.Classify("help me budget"))
}

func TestQueryClassifier_RulesReturnsCopy(t *testing.T) {
	c := newDefault(t)

	rules := c.Rules()
	require.NotEmpty(t, rules)
	rules[0].Keywords[0] = Keyword{Label: "mutated", Pattern: `mutated`}
	rules[0].Category = model.CategorySaving

	again := c.Rules()
	assert.Equal(t, model.CategoryStocks, again[0].Category)
	assert.Equal(t, "stock", again[0].Keywords[0].Label)
	assert.Equal(t, model.CategoryGeneral, c.Classify("Tell me about mutated."))
}

func TestQueryClassifier_RuleOrder(t *testing.T) {
	c := newDefault(t)

	var got []model.QueryCategory
	for _, r := range c.Rules() {
		got = append(got, r.Category)
	}
	assert.Equal(t, []model.QueryCategory{
		model.CategoryStocks,
		model.CategoryInvesting,
		model.CategoryBudgeting,
		model.CategorySaving,
	}, got)

	total := 0
	for _, r := range DefaultRules() {
		total += len(r.Keywords)
	}
	assert.Equal(t, total, c.KeywordCount())
}
