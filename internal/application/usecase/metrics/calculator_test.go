package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

func d(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func TestCalculateIndicators_ProfitAndReceivables(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	facts := &PeriodFacts{
		Period:                entity.NewPeriod(2026, time.March),
		CollectionsThisPeriod: d(800000),
		ExpensesThisPeriod:    d(300000),
		CollectionsPrevPeriod: d(600000),
		ExpensesPrevPeriod:    d(650000),
		TotalInvoiced:         d(5000000),
		TotalCollected:        d(4000000),
		OverdueReceivables:    d(250000),
	}

	indicators := CalculateIndicators(facts, now)

	if !indicators.Profit.Equal(d(500000)) {
		t.Errorf("expected profit 500000, got %s", indicators.Profit)
	}
	if !indicators.PreviousProfit.Equal(d(-50000)) {
		t.Errorf("expected previous profit -50000, got %s", indicators.PreviousProfit)
	}
	if !indicators.Receivables.Equal(d(1000000)) {
		t.Errorf("expected receivables 1000000, got %s", indicators.Receivables)
	}
	if indicators.OverdueRatio != 0.25 {
		t.Errorf("expected overdue ratio 0.25, got %f", indicators.OverdueRatio)
	}
}

func TestCalculateIndicators_ReceivablesFullyCollected(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	facts := &PeriodFacts{
		Period:         entity.NewPeriod(2026, time.March),
		TotalInvoiced:  d(5000000),
		TotalCollected: d(5000000),
	}

	indicators := CalculateIndicators(facts, now)

	if !indicators.Receivables.IsZero() {
		t.Errorf("expected zero receivables, got %s", indicators.Receivables)
	}
	if indicators.OverdueRatio != 0 {
		t.Errorf("expected zero overdue ratio, got %f", indicators.OverdueRatio)
	}
}

func TestContributionMargin(t *testing.T) {
	tests := []struct {
		name     string
		projects []ProjectFigures
		want     float64
	}{
		{
			name: "average across closed projects",
			projects: []ProjectFigures{
				{TotalBudget: d(1000000), AccumulatedCost: d(600000)}, // margin 0.4
				{TotalBudget: d(2000000), AccumulatedCost: d(1600000)}, // margin 0.2
			},
			want: 0.3,
		},
		{
			name:     "no closed projects defaults to 0.30",
			projects: nil,
			want:     defaultContributionMargin,
		},
		{
			name: "zero-budget projects are skipped",
			projects: []ProjectFigures{
				{TotalBudget: decimal.Zero, AccumulatedCost: d(100000)},
				{TotalBudget: d(1000000), AccumulatedCost: d(500000)},
			},
			want: 0.5,
		},
		{
			name: "only zero-budget projects fall back to the default",
			projects: []ProjectFigures{
				{TotalBudget: decimal.Zero, AccumulatedCost: d(100000)},
			},
			want: defaultContributionMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contributionMargin(tt.projects)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("contributionMargin() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestBreakEvenPoint(t *testing.T) {
	t.Run("fixed costs over margin", func(t *testing.T) {
		got := breakEvenPoint(d(300000), 0.30)
		if !got.Equal(d(1000000)) {
			t.Errorf("expected 1000000, got %s", got)
		}
	})

	t.Run("zero margin falls back to the raw fixed total", func(t *testing.T) {
		got := breakEvenPoint(d(300000), 0)
		if !got.Equal(d(300000)) {
			t.Errorf("expected 300000, got %s", got)
		}
	})

	t.Run("negative margin falls back to the raw fixed total", func(t *testing.T) {
		got := breakEvenPoint(d(300000), -0.2)
		if !got.Equal(d(300000)) {
			t.Errorf("expected 300000, got %s", got)
		}
	})
}

func TestAverageMonthlyExpense(t *testing.T) {
	march := entity.NewPeriod(2026, time.March)

	t.Run("averages only months with data", func(t *testing.T) {
		window := []MonthExpenses{
			{Period: march, Total: d(300000)},
			{Period: march.Previous(), Total: decimal.Zero},
			{Period: march.Previous().Previous(), Total: d(500000)},
		}
		got := averageMonthlyExpense(window)
		if !got.Equal(d(400000)) {
			t.Errorf("expected 400000, got %s", got)
		}
	})

	t.Run("empty window yields zero without dividing by zero", func(t *testing.T) {
		got := averageMonthlyExpense(nil)
		if !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})
}

func TestRunwayMonths(t *testing.T) {
	tests := []struct {
		name    string
		cash    decimal.Decimal
		average decimal.Decimal
		want    float64
	}{
		{"ordinary runway", d(2400000), d(300000), 8},
		{"zero burn caps at 99", d(500000), decimal.Zero, 99},
		{"huge cash caps at 99", d(100000000), d(1000), 99},
		{"negative cash clamps to zero", d(-500000), d(300000), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runwayMonths(tt.cash, tt.average)
			if got != tt.want {
				t.Errorf("runwayMonths() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCalculateIndicators_Pacing(t *testing.T) {
	// Day 15 of a 31-day month, expected share 15/31.
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	period := entity.NewPeriod(2026, time.March)
	target := &entity.ResolvedTarget{
		SalesTarget:      d(3100000),
		CollectionTarget: d(3100000),
		Source:           entity.TargetSourceExact,
	}

	t.Run("ahead of pace", func(t *testing.T) {
		facts := &PeriodFacts{
			Period:             period,
			InvoicedThisPeriod: d(2000000),
			Target:             target,
		}
		indicators := CalculateIndicators(facts, now)
		if indicators.SalesPacing == nil {
			t.Fatal("expected sales pacing for the current period")
		}
		if indicators.SalesPacing.Status != PacingAhead {
			t.Errorf("expected %q, got %q", PacingAhead, indicators.SalesPacing.Status)
		}
		if !indicators.SalesPacing.Expected.Equal(d(1500000)) {
			t.Errorf("expected expected-to-date 1500000, got %s", indicators.SalesPacing.Expected)
		}
	})

	t.Run("behind pace", func(t *testing.T) {
		facts := &PeriodFacts{
			Period:             period,
			InvoicedThisPeriod: d(500000),
			Target:             target,
		}
		indicators := CalculateIndicators(facts, now)
		if indicators.SalesPacing.Status != PacingBehind {
			t.Errorf("expected %q, got %q", PacingBehind, indicators.SalesPacing.Status)
		}
	})

	t.Run("on track near the expected value", func(t *testing.T) {
		facts := &PeriodFacts{
			Period:             period,
			InvoicedThisPeriod: d(1500000),
			Target:             target,
		}
		indicators := CalculateIndicators(facts, now)
		if indicators.SalesPacing.Status != PacingOnTrack {
			t.Errorf("expected %q, got %q", PacingOnTrack, indicators.SalesPacing.Status)
		}
	})

	t.Run("no pacing for a closed period", func(t *testing.T) {
		facts := &PeriodFacts{
			Period:             entity.NewPeriod(2026, time.January),
			InvoicedThisPeriod: d(2000000),
			Target:             target,
		}
		indicators := CalculateIndicators(facts, now)
		if indicators.SalesPacing != nil {
			t.Error("expected no pacing for a closed period")
		}
	})

	t.Run("no pacing without a target", func(t *testing.T) {
		facts := &PeriodFacts{
			Period:             period,
			InvoicedThisPeriod: d(2000000),
		}
		indicators := CalculateIndicators(facts, now)
		if indicators.SalesPacing != nil {
			t.Error("expected no pacing without a resolved target")
		}
	})
}
