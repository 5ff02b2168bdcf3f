package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
	"github.com/pulso-finanzas/backend/internal/domain/valueobject"
)

const (
	// defaultContributionMargin applies when no closed project history exists.
	defaultContributionMargin = 0.30

	// maxRunwayMonths is the display cap for effectively unbounded runway.
	maxRunwayMonths = 99.0

	// Pacing bands around the pro-rata expected value.
	pacingAheadRatio  = 1.10
	pacingBehindRatio = 0.90
)

// PacingStatus classifies progress against the pro-rata expectation of an
// in-progress period.
type PacingStatus string

const (
	PacingAhead   PacingStatus = "adelantado"
	PacingOnTrack PacingStatus = "al_dia"
	PacingBehind  PacingStatus = "atrasado"
)

// GoalPacing compares actual-to-date against the day-weighted share of a
// monthly target. Only computed for the current, in-progress period.
type GoalPacing struct {
	Target   decimal.Decimal `json:"target"`
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
	Status   PacingStatus    `json:"status"`
}

// Indicators are the headline figures derived from one period's facts.
type Indicators struct {
	CashOnHand decimal.Decimal `json:"cash_on_hand"`

	Profit         decimal.Decimal `json:"profit"`
	PreviousProfit decimal.Decimal `json:"previous_profit"`

	SalesThisPeriod       decimal.Decimal `json:"sales_this_period"`
	CollectionsThisPeriod decimal.Decimal `json:"collections_this_period"`
	ExpensesThisPeriod    decimal.Decimal `json:"expenses_this_period"`

	Receivables        decimal.Decimal `json:"receivables"`
	OverdueReceivables decimal.Decimal `json:"overdue_receivables"`
	OverdueRatio       float64         `json:"overdue_ratio"`

	ContributionMargin    float64         `json:"contribution_margin"`
	BreakEvenPoint        decimal.Decimal `json:"break_even_point"`
	AverageMonthlyExpense decimal.Decimal `json:"average_monthly_expense"`
	RunwayMonths          float64         `json:"runway_months"`

	SalesPacing      *GoalPacing `json:"sales_pacing,omitempty"`
	CollectionPacing *GoalPacing `json:"collection_pacing,omitempty"`
}

// CalculateIndicators turns raw period facts into the headline indicators.
// Arithmetic edge cases (zero budgets, zero margin, zero burn) fall back to
// defaults instead of erroring.
func CalculateIndicators(facts *PeriodFacts, now time.Time) *Indicators {
	indicators := &Indicators{
		CashOnHand:            theoreticalCash(facts),
		Profit:                facts.CollectionsThisPeriod.Sub(facts.ExpensesThisPeriod),
		PreviousProfit:        facts.CollectionsPrevPeriod.Sub(facts.ExpensesPrevPeriod),
		SalesThisPeriod:       facts.InvoicedThisPeriod,
		CollectionsThisPeriod: facts.CollectionsThisPeriod,
		ExpensesThisPeriod:    facts.ExpensesThisPeriod,
		OverdueReceivables:    facts.OverdueReceivables,
	}

	indicators.Receivables = facts.TotalInvoiced.Sub(facts.TotalCollected)
	if indicators.Receivables.IsPositive() {
		indicators.OverdueRatio, _ = facts.OverdueReceivables.Div(indicators.Receivables).Float64()
	}

	indicators.ContributionMargin = contributionMargin(facts.ClosedProjects)
	indicators.BreakEvenPoint = breakEvenPoint(facts.FixedExpenses.MonthlyTotal, indicators.ContributionMargin)
	indicators.AverageMonthlyExpense = averageMonthlyExpense(facts.TrailingExpenses)
	indicators.RunwayMonths = runwayMonths(indicators.CashOnHand, indicators.AverageMonthlyExpense)

	if facts.Period.IsCurrent(now) && facts.Target != nil {
		indicators.SalesPacing = pacing(facts.Target.SalesTarget, facts.InvoicedThisPeriod, facts.Period, now)
		indicators.CollectionPacing = pacing(facts.Target.CollectionTarget, facts.CollectionsThisPeriod, facts.Period, now)
	}

	return indicators
}

// theoreticalCash reconstructs today's balance from the latest snapshot and
// the transactions after it. With no snapshot the sums are all-time, so the
// reconstruction starts from zero.
func theoreticalCash(facts *PeriodFacts) decimal.Decimal {
	lastReal := decimal.Zero
	if facts.LatestSnapshot != nil {
		lastReal = facts.LatestSnapshot.Amount
	}
	return valueobject.TheoreticalBalance(lastReal, facts.CollectionsSinceSnapshot, facts.ExpensesSinceSnapshot)
}

// contributionMargin averages 1 - cost/budget across closed projects with a
// positive budget.
func contributionMargin(projects []ProjectFigures) float64 {
	var sum float64
	var counted int
	for _, project := range projects {
		if !project.TotalBudget.IsPositive() {
			continue
		}
		ratio, _ := project.AccumulatedCost.Div(project.TotalBudget).Float64()
		sum += 1 - ratio
		counted++
	}
	if counted == 0 {
		return defaultContributionMargin
	}
	return sum / float64(counted)
}

// breakEvenPoint divides fixed costs by the margin, falling back to the raw
// fixed total when the margin is unusable.
func breakEvenPoint(fixedTotal decimal.Decimal, margin float64) decimal.Decimal {
	if margin <= 0 {
		return fixedTotal
	}
	return fixedTotal.Div(decimal.NewFromFloat(margin)).Round(2)
}

// averageMonthlyExpense averages the trailing window over the months that
// actually have expense data, with a floor of one month in the denominator.
func averageMonthlyExpense(window []MonthExpenses) decimal.Decimal {
	total := decimal.Zero
	monthsWithData := 0
	for _, month := range window {
		if month.Total.IsPositive() {
			total = total.Add(month.Total)
			monthsWithData++
		}
	}
	if monthsWithData == 0 {
		monthsWithData = 1
	}
	return total.Div(decimal.NewFromInt(int64(monthsWithData))).Round(2)
}

// runwayMonths is cash over average burn, clamped to [0, 99].
func runwayMonths(cash, averageExpense decimal.Decimal) float64 {
	if !averageExpense.IsPositive() {
		return maxRunwayMonths
	}
	months, _ := cash.Div(averageExpense).Float64()
	if months < 0 {
		return 0
	}
	if months > maxRunwayMonths {
		return maxRunwayMonths
	}
	return months
}

// pacing compares actual-to-date against the day-weighted share of the target.
func pacing(target, actual decimal.Decimal, period entity.Period, now time.Time) *GoalPacing {
	if !target.IsPositive() {
		return nil
	}

	dayFraction := decimal.NewFromInt(int64(period.DayCursor(now))).
		Div(decimal.NewFromInt(int64(period.DaysInMonth())))
	expected := target.Mul(dayFraction).Round(2)

	status := PacingOnTrack
	if expected.IsPositive() {
		ratio, _ := actual.Div(expected).Float64()
		switch {
		case ratio >= pacingAheadRatio:
			status = PacingAhead
		case ratio < pacingBehindRatio:
			status = PacingBehind
		}
	}

	return &GoalPacing{
		Target:   target,
		Expected: expected,
		Actual:   actual,
		Status:   status,
	}
}
