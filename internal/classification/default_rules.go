package classification

import "github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"

// DefaultRules returns the built-in rule table in priority order.
// Categories with narrower vocabulary come first so overlapping terms resolve to them.
// Each keyword appears once, under the category that wins it.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: model.CategoryStocks,
			Keywords: []Keyword{
				{Label: "stock", Pattern: `stocks?`},
				{Label: "shares", Pattern: `shares?`},
				{Label: "equity", Pattern: `equit(?:y|ies)`},
				{Label: "nifty", Pattern: `nifty`},
				{Label: "sensex", Pattern: `sensex`},
				{Label: "demat", Pattern: `demat`},
				{Label: "ipo", Pattern: `ipos?`},
				{Label: "dividend", Pattern: `dividends?`},
				{Label: "trading", Pattern: `trad(?:e|es|ing|er|ers)`},
				{Label: "portfolio", Pattern: `portfolios?`},
				{Label: "diversify", Pattern: `diversif(?:y|ying|ied|ication)`},
				{Label: "bull market", Pattern: `bull\s+markets?`},
				{Label: "bear market", Pattern: `bear\s+markets?`},
				{Label: "market crash", Pattern: `market\s+crash(?:es)?`},
			},
		},
		{
			Category: model.CategoryInvesting,
			Keywords: []Keyword{
				{Label: "invest", Pattern: `invest(?:s|ed|ing|ment|ments|or|ors)?`},
				{Label: "mutual fund", Pattern: `mutual\s+funds?`},
				{Label: "sip", Pattern: `sips?`},
				{Label: "systematic", Pattern: `systematic`},
				{Label: "index fund", Pattern: `index\s+funds?`},
				{Label: "etf", Pattern: `etfs?`},
				{Label: "compounding", Pattern: `compounding`},
				{Label: "compound interest", Pattern: `compound\s+interest`},
				{Label: "retirement", Pattern: `retirement`},
				{Label: "nps", Pattern: `nps`},
				{Label: "ppf", Pattern: `ppf`},
				{Label: "elss", Pattern: `elss`},
				{Label: "bonds", Pattern: `bonds?`},
			},
		},
		{
			Category: model.CategoryBudgeting,
			Keywords: []Keyword{
				{Label: "budget", Pattern: `budget(?:s|ed|ing)?`},
				{Label: "expense", Pattern: `expenses?`},
				{Label: "spending", Pattern: `spen(?:d|ds|ding|t)`},
				{Label: "overspending", Pattern: `overspen(?:d|ds|ding|t)`},
				{Label: "track", Pattern: `track(?:s|ed|ing|er)?`},
				{Label: "50/30/20", Pattern: `50/30/20`},
				{Label: "bills", Pattern: `bills?`},
				{Label: "income", Pattern: `incomes?`},
				{Label: "cash flow", Pattern: `cash\s*flows?`},
			},
		},
		{
			Category: model.CategorySaving,
			Keywords: []Keyword{
				{Label: "save", Pattern: `sav(?:e|es|ed|ing|ings)`},
				{Label: "emergency fund", Pattern: `emergency\s+funds?`},
				{Label: "rainy day", Pattern: `rainy\s+days?`},
				{Label: "fixed deposit", Pattern: `fixed\s+deposits?`},
				{Label: "recurring deposit", Pattern: `recurring\s+deposits?`},
				{Label: "financial goal", Pattern: `financial\s+goals?`},
				{Label: "interest rate", Pattern: `interest\s+rates?`},
			},
		},
	}
}

// DefaultVaguePatterns returns patterns for greetings and placeholder input.
// They are matched against the trimmed, lower-cased query.
func DefaultVaguePatterns() []string {
	return []string{
		`^(?:hi|hello|hey|hiya|yo)(?: there)?[!.?]*$`,
		`^help(?: me| please| pls| plz)?[!.?]*$`,
		`^(?:ok|okay|thanks|thank you|test)[!.?]*$`,
		`^[!.?]+$`,
	}
}
