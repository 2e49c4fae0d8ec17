package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// Balance thresholds for the personalized tier messages, in rupees.
const (
	ExcellentBalanceThreshold = 150000
	GoodBalanceThreshold      = 50000
)

// BalanceTier buckets a balance for personalized messages.
type BalanceTier int

// Balance tiers, lowest first.
const (
	TierStartBuilding BalanceTier = iota
	TierGoodProgress
	TierExcellent
)

func (t BalanceTier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGoodProgress:
		return "good progress"
	default:
		return "start building"
	}
}

// TierFor returns the tier for a balance.
func TierFor(balance float64) BalanceTier {
	switch {
	case balance >= ExcellentBalanceThreshold:
		return TierExcellent
	case balance >= GoodBalanceThreshold:
		return TierGoodProgress
	default:
		return TierStartBuilding
	}
}

// tierMessages holds one format string per tier; each takes the formatted balance.
type tierMessages [3]string

func (m tierMessages) render(balance float64) string {
	return fmt.Sprintf(m[TierFor(balance)], FormatINR(balance))
}

var (
	emergencyFundMessages = tierMessages{
		TierStartBuilding: "Start building your emergency fund today. Your current balance is %s; even ₹1,000 set aside " +
			"automatically every month adds up to ₹12,000 in a year.",
		TierGoodProgress: "Good progress! %s is a solid start. Keep adding a fixed amount every month until you can " +
			"cover six months of essential expenses.",
		TierExcellent: "Excellent! With %s saved you have a strong emergency fund. Once six months of essential " +
			"expenses are covered, consider moving the surplus into a sweep-in FD or a liquid fund so it earns more.",
	}

	savingsMessages = tierMessages{
		TierStartBuilding: "Start building your savings habit. Your balance is %s; automate a small transfer on payday " +
			"and increase it every few months.",
		TierGoodProgress: "Good progress! With %s saved, finish your emergency fund before splitting money across " +
			"other goals.",
		TierExcellent: "Excellent! Your balance of %s gives you room to fund several goals at once. Give each goal " +
			"its own account or deposit.",
	}

	investingMessages = tierMessages{
		TierStartBuilding: "Your balance is %s. Focus on building an emergency fund first; a ₹500 monthly SIP can " +
			"follow once you have a cushion.",
		TierGoodProgress: "With %s saved you are making good progress. Complete your emergency fund first, then " +
			"begin with a SIP of ₹500 to ₹1,000 a month.",
		TierExcellent: "Your balance of %s suggests a healthy cushion. Keep six months of expenses aside, then " +
			"consider starting or stepping up a monthly SIP with the surplus.",
	}

	stockMessages = tierMessages{
		TierStartBuilding: "Your balance is %s. Build an emergency fund before buying individual stocks; money you " +
			"may need soon should not be in the stock market.",
		TierGoodProgress: "With %s saved, consider index funds before picking individual stocks, and keep your " +
			"emergency fund untouched.",
		TierExcellent: "With a balance of %s you have room to take some equity risk. Limit direct stocks to a " +
			"portion of your investments and keep the rest diversified.",
	}
)

// section joins a heading and its non-empty lines. It reports false when no lines remain.
func section(heading, sep string, lines ...string) (string, bool) {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return heading + "\n" + strings.Join(kept, sep), true
}

func personalizeStocks(_ Topic, actx *model.AssistantContext) (string, bool) {
	balance, ok := actx.BalanceValue()
	if !ok {
		return "", false
	}
	return section("### Your Risk Capacity", " ", stockMessages.render(balance))
}

func personalizeInvesting(_ Topic, actx *model.AssistantContext) (string, bool) {
	balance, ok := actx.BalanceValue()
	if !ok {
		return "", false
	}
	return section("### Are You Ready to Invest?", " ", investingMessages.render(balance))
}

func personalizeSaving(topic Topic, actx *model.AssistantContext) (string, bool) {
	heading := "### Your Savings Snapshot"
	messages := savingsMessages
	if topic == TopicSaveEmergency {
		heading = "### Your Emergency Fund Status"
		messages = emergencyFundMessages
	}

	var balanceLine, goalsLine string
	if balance, ok := actx.BalanceValue(); ok {
		balanceLine = messages.render(balance)
	}
	if goals, ok := actx.TotalGoalsValue(); ok {
		if goals == 0 {
			goalsLine = "You have not set any savings goals yet. Adding one with a target amount and deadline " +
				"makes progress easier to track."
		} else {
			goalsLine = fmt.Sprintf("You are tracking %s. Review each one this month to confirm the monthly "+
				"contribution still fits your budget.", plural(goals, "savings goal", "savings goals"))
		}
	}
	return section(heading, " ", balanceLine, goalsLine)
}

func personalizeBudgeting(_ Topic, actx *model.AssistantContext) (string, bool) {
	var activity, top, share, total string

	if txns := actx.ValidTransactions(); len(txns) > 0 {
		var income, expense float64
		byCategory := make(map[string]float64)
		for _, t := range txns {
			switch t.Type {
			case model.TransactionIncome:
				income += math.Abs(t.Amount)
			case model.TransactionExpense:
				expense += math.Abs(t.Amount)
				byCategory[t.Category] += math.Abs(t.Amount)
			}
		}

		// Per-category totals never exceed expense, so they are finite whenever it is.
		if finite(income) && finite(expense) {
			activity = fmt.Sprintf("Across your last %s you received %s and spent %s.",
				plural(len(txns), "transaction", "transactions"), FormatINR(income), FormatINR(expense))

			if name, amount, ok := topCategory(byCategory); ok {
				top = fmt.Sprintf("Your biggest spending category is **%s** at %s.", name, FormatINR(amount))
			}
			if pct, ok := spendingShare(income, expense); ok {
				share = fmt.Sprintf("Spending used %d%% of the income recorded in this period.", pct)
			}
		}
	}

	if n, ok := actx.TotalTransactionsValue(); ok {
		total = fmt.Sprintf("You have recorded %s in total; reviewing them by category each month keeps your "+
			"budget honest.", plural(n, "transaction", "transactions"))
	}

	return section("### Your Recent Activity", " ", activity, top, share, total)
}

func personalizeGeneral(_ Topic, actx *model.AssistantContext) (string, bool) {
	var balance, txns, goals string
	if v, ok := actx.BalanceValue(); ok {
		balance = "- Current balance: " + FormatINR(v)
	}
	if n, ok := actx.TotalTransactionsValue(); ok {
		txns = "- Transactions recorded: " + strconv.Itoa(n)
	}
	if n, ok := actx.TotalGoalsValue(); ok {
		goals = "- Savings goals: " + strconv.Itoa(n)
	}
	return section("### Your Financial Snapshot", "\n", balance, txns, goals)
}

// maxSharePercent bounds the spending share worth reporting.
const maxSharePercent = 10000

// spendingShare returns expense as a rounded percentage of income. It reports
// false when either side is zero or the ratio is out of range.
func spendingShare(income, expense float64) (int, bool) {
	if income <= 0 || expense <= 0 {
		return 0, false
	}
	pct := math.Round(expense / income * 100)
	if !finite(pct) || pct > maxSharePercent {
		return 0, false
	}
	return int(pct), true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// topCategory returns the category with the largest total, breaking ties alphabetically.
func topCategory(totals map[string]float64) (string, float64, bool) {
	if len(totals) == 0 {
		return "", 0, false
	}
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if totals[names[i]] != totals[names[j]] {
			return totals[names[i]] > totals[names[j]]
		}
		return names[i] < names[j]
	})
	return names[0], totals[names[0]], true
}

// FormatINR renders a rupee amount rounded to whole rupees with Indian digit grouping, e.g. ₹12,34,567.
// Non-finite amounts render as the empty string; callers check finiteness first.
func FormatINR(v float64) string {
	if !finite(v) {
		return ""
	}
	r := math.Round(v)
	neg := r < 0
	digits := strconv.FormatFloat(math.Abs(r), 'f', 0, 64)

	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		digits = strings.Join(append(groups, tail), ",")
	}

	if neg {
		return "-₹" + digits
	}
	return "₹" + digits
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
