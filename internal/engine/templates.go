package engine

import "github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"

// Topic names a sub-template within a category.
type Topic string

// Topics per category.
const (
	TopicStockDiversification Topic = "diversification"
	TopicStockDividends       Topic = "dividends"
	TopicStockIPO             Topic = "ipo"
	TopicStockBasics          Topic = "basics"

	TopicInvestSIP         Topic = "sip"
	TopicInvestMutualFunds Topic = "mutual_funds"
	TopicInvestRetirement  Topic = "retirement"
	TopicInvestOverview    Topic = "overview"

	TopicBudgetRule50   Topic = "rule_50_30_20"
	TopicBudgetTracking Topic = "tracking"
	TopicBudgetOverview Topic = "overview"

	TopicSaveEmergency Topic = "emergency_fund"
	TopicSaveGoals     Topic = "goals"
	TopicSaveTips      Topic = "tips"

	TopicGeneralOverview Topic = "overview"
)

// TemplateKey identifies one static content unit.
type TemplateKey struct {
	Category model.QueryCategory
	Topic    Topic
}

// Template returns the static content for a key and whether it exists.
func Template(key TemplateKey) (string, bool) {
	t, ok := templates[key]
	return t, ok
}

// TemplateKeys returns every registered key.
func TemplateKeys() []TemplateKey {
	keys := make([]TemplateKey, 0, len(templates))
	for k := range templates {
		keys = append(keys, k)
	}
	return keys
}

var templates = map[TemplateKey]string{
	{model.CategoryStocks, TopicStockDiversification}: stockDiversificationTemplate,
	{model.CategoryStocks, TopicStockDividends}:       stockDividendsTemplate,
	{model.CategoryStocks, TopicStockIPO}:             stockIPOTemplate,
	{model.CategoryStocks, TopicStockBasics}:          stockBasicsTemplate,
	{model.CategoryInvesting, TopicInvestSIP}:         investSIPTemplate,
	{model.CategoryInvesting, TopicInvestMutualFunds}: investMutualFundsTemplate,
	{model.CategoryInvesting, TopicInvestRetirement}:  investRetirementTemplate,
	{model.CategoryInvesting, TopicInvestOverview}:    investOverviewTemplate,
	{model.CategoryBudgeting, TopicBudgetRule50}:      budgetRuleTemplate,
	{model.CategoryBudgeting, TopicBudgetTracking}:    budgetTrackingTemplate,
	{model.CategoryBudgeting, TopicBudgetOverview}:    budgetOverviewTemplate,
	{model.CategorySaving, TopicSaveEmergency}:        saveEmergencyTemplate,
	{model.CategorySaving, TopicSaveGoals}:            saveGoalsTemplate,
	{model.CategorySaving, TopicSaveTips}:             saveTipsTemplate,
	{model.CategoryGeneral, TopicGeneralOverview}:     generalOverviewTemplate,
}

const stockDiversificationTemplate = `## Diversifying Your Stock Portfolio

Diversification means spreading your money so that one bad outcome cannot sink your whole portfolio.

### Ways to Diversify
- **Across sectors**: banking, IT, FMCG, pharma and energy rarely fall at the same time.
- **Across company sizes**: large caps bring stability, mid and small caps bring growth with more volatility.
- **Across asset classes**: pair equity with debt funds, gold and cash.
- **Across time**: invest in instalments instead of a single lump sum.

### A Simple Starting Mix
| Allocation | Share |
|---|---|
| Large-cap stocks or index fund | 50% |
| Mid and small caps | 20% |
| Debt funds or bonds | 20% |
| Gold | 10% |

### Common Mistakes
1. Owning 30 stocks from the same sector is not diversification.
2. Holding too many overlapping funds adds cost without reducing risk.
3. Never rebalancing lets one winner dominate your risk.

Review your allocation once or twice a year and rebalance back to your target mix.`

const stockDividendsTemplate = `## Understanding Dividends

A dividend is a share of company profit paid to shareholders, usually in cash.

### Key Terms
- **Dividend per share (DPS)**: the amount paid for each share you own.
- **Dividend yield**: annual dividend divided by share price. A ₹20 dividend on a ₹500 share is a 4% yield.
- **Record date**: you must own the share on this date to receive the payout.
- **Ex-dividend date**: buying on or after this date does not entitle you to the dividend.

### What to Look For
1. A long record of steady or rising dividends.
2. A payout ratio below roughly 60%, so the company keeps enough profit to grow.
3. Consistent free cash flow that actually funds the payouts.

### Tax Note
Dividends are added to your income and taxed at your slab rate, so a high yield is not automatically better after tax.

A very high yield can be a warning sign that the share price has fallen for a reason.`

const stockIPOTemplate = `## Investing in IPOs

An Initial Public Offering (IPO) is when a company sells its shares to the public for the first time.

### How Applying Works
1. Open a demat and trading account.
2. Apply through your bank's ASBA facility or a UPI mandate in your broker app.
3. Choose a bid within the price band, in multiples of the lot size.
4. Shares are allotted by lottery when the issue is oversubscribed.
5. Unallotted money is unblocked and listing happens within a few working days.

### Before You Apply
- Read the Red Herring Prospectus (RHP): business model, debt, promoter holding and use of proceeds.
- Compare the valuation with listed peers.
- Be wary of grey market hype; it is unofficial and unreliable.

### Remember
Listing gains are never guaranteed. Apply only if you would be comfortable holding the company for years.`

const stockBasicsTemplate = `## Stock Market Basics

A stock (or share) is a small piece of ownership in a company. When the company grows, the value of your share can grow with it.

### How It Works in India
- Shares trade on the **NSE** and **BSE**.
- The **Nifty 50** and **Sensex** track the largest companies and describe the overall market mood.
- You need a **demat account** to hold shares and a **trading account** to buy and sell them.

### Getting Started
1. Build an emergency fund before buying any stock.
2. Start with an index fund or a few large, well-established companies.
3. Invest only money you will not need for at least five years.
4. Learn to read basic numbers: revenue growth, profit margins, debt and the P/E ratio.

### Golden Rules
- Never invest borrowed money.
- Do not chase tips or trending stocks.
- Think in years, not days.`

const investSIPTemplate = `## Systematic Investment Plan (SIP)

A Systematic Investment Plan (SIP) lets you invest a fixed amount in a mutual fund every month, automatically.

### Why SIPs Work
- **Discipline**: the money is invested before you can spend it.
- **Rupee cost averaging**: you buy more units when prices are low and fewer when they are high.
- **Compounding**: returns earn returns of their own over time.
- **Low entry point**: many funds accept SIPs from ₹500 a month.

### The Power of Compounding
Investing ₹5,000 every month at an assumed 12% annual return:

| Duration | Amount Invested | Estimated Value |
|---|---|---|
| 10 years | ₹6,00,000 | ₹11,61,695 |
| 20 years | ₹12,00,000 | ₹49,95,740 |

Doubling the time from 10 to 20 years more than quadruples the final value.

### How to Start
1. Complete your KYC with a fund house or platform.
2. Pick a diversified equity or index fund for long-term goals.
3. Choose a SIP date just after your salary is credited.
4. Increase the SIP amount by 10% every year as your income grows.`

const investMutualFundsTemplate = `## Mutual Funds Explained

A mutual fund pools money from many investors and a professional fund manager invests it in stocks, bonds or both.

### Main Types
- **Equity funds**: invest mainly in shares; best for goals five or more years away.
- **Debt funds**: invest in bonds and money market instruments; lower risk, steadier returns.
- **Hybrid funds**: a mix of equity and debt for balanced risk.
- **Index funds**: copy an index such as the Nifty 50 at very low cost.
- **ELSS**: equity funds with a three-year lock-in that qualify for tax deductions.

### Things to Compare
1. **Expense ratio**: lower is better; direct plans cost less than regular plans.
2. **Consistency**: look at five- and ten-year performance against the benchmark.
3. **Exit load**: a fee for redeeming within a set period.
4. **Fund size and manager track record**.

### Lump Sum or SIP?
A SIP spreads your purchases over time and suits most salaried investors. A lump sum can work when markets have corrected and the money is not needed for years.`

const investRetirementTemplate = `## Planning for Retirement

Retirement may be decades away, but the earlier you start, the less you need to invest each month.

### Building Blocks
- **EPF**: automatic contributions from salary with a stable, government-declared rate.
- **PPF**: 15-year account with tax-free returns and a sovereign guarantee.
- **NPS**: market-linked pension account with extra tax benefits and a low cost structure.
- **Equity mutual funds**: the growth engine for a long horizon.

### A Simple Framework
1. Estimate your monthly expenses today.
2. Adjust them for inflation of about 6% a year until retirement.
3. Aim for a corpus of roughly 25 to 30 times your annual expenses at retirement.
4. Split investments between growth (equity) and safety (EPF, PPF, debt), shifting toward safety as you get closer.

### Avoid These Mistakes
- Withdrawing retirement savings for short-term needs.
- Relying on a single product for everything.
- Ignoring health insurance, which protects your corpus from medical bills.`

const investOverviewTemplate = `## Getting Started with Investing

Investing puts your money to work so it grows faster than inflation.

### Before You Invest
1. Keep an emergency fund of six months of expenses.
2. Get adequate health and term life insurance.
3. Clear high-interest debt such as credit card balances.

### Match Investments to Goals
| Goal Horizon | Suitable Options |
|---|---|
| Under 3 years | Savings account, fixed deposits, liquid funds |
| 3 to 5 years | Debt funds, hybrid funds |
| Over 5 years | Equity mutual funds, index funds, NPS |

### Principles That Last
- Start early and invest regularly.
- Keep costs low; prefer direct plans and index funds.
- Diversify across asset classes.
- Stay invested through market ups and downs.`

const budgetRuleTemplate = `## Creating a Monthly Budget: The 50/30/20 Rule

The 50/30/20 rule splits your take-home income into three simple buckets.

### The Three Buckets
- **50% Needs**: rent, groceries, utilities, EMIs, insurance and commuting.
- **30% Wants**: eating out, shopping, entertainment and travel.
- **20% Savings**: emergency fund, investments and extra debt repayment.

### Example on a ₹60,000 Monthly Income
| Bucket | Share | Amount |
|---|---|---|
| Needs | 50% | ₹30,000 |
| Wants | 30% | ₹18,000 |
| Savings | 20% | ₹12,000 |

### Steps to Build It
1. Write down your exact take-home pay.
2. List fixed costs first, then variable ones.
3. Move the savings share to a separate account on payday.
4. Review at the end of each month and adjust.

If your needs exceed 50%, trim wants first before touching savings.`

const budgetTrackingTemplate = `## Tracking Your Expenses

You cannot improve what you do not measure. Tracking shows where your money really goes.

### How to Track
- Record every expense the same day, using an app, a spreadsheet or a notebook.
- Group spending into a few categories: housing, food, transport, shopping, bills and others.
- Check UPI and card statements weekly to catch anything you missed.

### What to Look For
1. Subscriptions you no longer use.
2. Small daily spends, such as coffee or food delivery, that add up over a month.
3. Categories that keep going over plan.

### Make It a Habit
- Set a fixed 10-minute review every Sunday.
- Compare each month with the previous one.
- Celebrate progress, not perfection.`

const budgetOverviewTemplate = `## Budgeting Essentials

A budget is a plan for every rupee before the month begins.

### Core Steps
1. Calculate your monthly take-home income.
2. List fixed expenses: rent, EMIs, insurance and school fees.
3. Estimate variable expenses: groceries, fuel, dining and shopping.
4. Pay yourself first by setting aside savings on payday.
5. Review and adjust every month.

### Helpful Frameworks
- **50/30/20 rule**: needs, wants and savings.
- **Envelope method**: a fixed cash limit per category.
- **Zero-based budget**: every rupee gets a job until income minus allocations equals zero.

### Tips
- Automate bill payments to avoid late fees.
- Keep a small buffer for irregular costs like repairs and gifts.
- Plan annual expenses, such as insurance premiums, as monthly amounts.`

const saveEmergencyTemplate = `## Building an Emergency Fund

An emergency fund is money set aside for job loss, medical bills or urgent repairs, so you never need to borrow in a crisis.

### How Much You Need
- **Minimum**: 3 months of essential expenses.
- **Recommended**: 6 months of essential expenses.
- **Self-employed or single income**: 9 to 12 months.

### Where to Keep It
- A high-interest savings account for instant access.
- A sweep-in fixed deposit for slightly better returns.
- A liquid mutual fund for the portion you might need after a few days.

### How to Build It
1. Work out your monthly essentials: rent, food, EMIs, utilities and insurance.
2. Set up an automatic transfer on payday.
3. Add windfalls such as bonuses and tax refunds.
4. Refill the fund as soon as you use it.`

const saveGoalsTemplate = `## Saving for Your Goals

Clear goals turn saving from a chore into a plan.

### Make Goals SMART
- **Specific**: "₹2,00,000 for a car down payment", not "save more".
- **Measurable**: track progress every month.
- **Achievable**: fit the target to your income.
- **Relevant**: choose goals that matter to you.
- **Time-bound**: set a deadline.

### Pick the Right Product
| Time to Goal | Where to Save |
|---|---|
| Under 1 year | Savings account, recurring deposit |
| 1 to 3 years | Fixed deposits, short-term debt funds |
| Over 3 years | Hybrid or equity funds through SIPs |

### Stay on Track
1. Open a separate account or deposit for each major goal.
2. Automate contributions on payday.
3. Review progress every quarter.`

const saveTipsTemplate = `## Smart Ways to Save More

Saving is less about earning more and more about keeping what you earn.

### Everyday Habits
- **Pay yourself first**: move savings out on payday, before you spend.
- **Apply the 24-hour rule**: wait a day before any unplanned purchase.
- **Cook more, order less**: food delivery is one of the easiest leaks to fix.
- **Cancel unused subscriptions**.

### Use the Right Accounts
1. Keep spending and savings in separate accounts.
2. Use recurring deposits to build a habit with fixed monthly amounts.
3. Compare fixed deposit interest rates across banks before locking in.

### Grow Your Savings Rate
- Increase your savings every time your salary rises.
- Save at least half of every bonus or windfall.
- Aim to save 20% or more of your income.`

const generalOverviewTemplate = `## Your Personal Finance Roadmap

Good money management follows a simple order. Work through these steps one at a time.

### The Steps
1. **Budget**: know your income and where every rupee goes.
2. **Emergency fund**: save 3 to 6 months of essential expenses.
3. **Insurance**: get health cover and term life insurance if others depend on you.
4. **Clear costly debt**: pay off credit cards and personal loans first.
5. **Invest for goals**: start SIPs in mutual funds for long-term goals.
6. **Plan for retirement**: use EPF, PPF and NPS alongside equity.

### I Can Help With
- **Budgeting**: the 50/30/20 rule and expense tracking.
- **Saving**: emergency funds and savings goals.
- **Investing**: SIPs, mutual funds and retirement planning.
- **Stocks**: market basics, dividends, IPOs and diversification.

Ask a specific question, such as "How do I start a SIP?", for a detailed answer.`
