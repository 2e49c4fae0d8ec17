package engine

import "github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"

// Disclaimer texts attached to market-linked answers.
const (
	StocksDisclaimer = "This is educational content, not investment advice. Investments in the securities market are " +
		"subject to market risks and past performance does not guarantee future returns. Consult a SEBI-registered " +
		"investment adviser before buying or selling any stock."

	InvestingDisclaimer = "This is educational content, not financial advice. Mutual fund investments are subject to " +
		"market risks; read all scheme related documents carefully. Returns shown are illustrative and not guaranteed."
)

// ClarificationText is returned for queries too vague to classify.
const ClarificationText = `I'd love to help! Could you tell me a bit more about what you're looking for?

Here are some things you can ask me about:
- **Budgeting**: "How do I create a monthly budget?"
- **Saving**: "How much should I keep in an emergency fund?"
- **Investing**: "What is a SIP and how does it work?"
- **Stocks**: "How do I diversify my portfolio?"

The more specific your question, the more useful my answer will be.`

var disclaimers = map[model.QueryCategory]string{
	model.CategoryStocks:    StocksDisclaimer,
	model.CategoryInvesting: InvestingDisclaimer,
}

// Disclaimer returns the disclaimer for a category, if it carries one.
func Disclaimer(category model.QueryCategory) (string, bool) {
	if !category.CarriesDisclaimer() {
		return "", false
	}
	d, ok := disclaimers[category]
	return d, ok
}
