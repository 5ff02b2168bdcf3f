// Package metrics contains the period-metrics engine use cases.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/application/usecase/target"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

const (
	// opportunityFreshnessWindow is how recently an active opportunity must have
	// been touched to count as fresh.
	opportunityFreshnessWindow = 14 * 24 * time.Hour

	// recentHoursWindow is how far back logged hours count as recent.
	recentHoursWindow = 14 * 24 * time.Hour

	// receivableOverdueAfter is how long after issuance an uncollected invoice
	// balance becomes overdue.
	receivableOverdueAfter = 30 * 24 * time.Hour

	// trailingExpenseMonths is the averaging window for the burn rate.
	trailingExpenseMonths = 3
)

// PeriodFacts is everything the calculator and the scorer need about one
// workspace period, loaded in a single fan-out.
type PeriodFacts struct {
	Period entity.Period

	CollectionsThisPeriod decimal.Decimal
	ExpensesThisPeriod    decimal.Decimal
	CollectionsPrevPeriod decimal.Decimal
	ExpensesPrevPeriod    decimal.Decimal
	InvoicedThisPeriod    decimal.Decimal

	TotalInvoiced      decimal.Decimal
	TotalCollected     decimal.Decimal
	OverdueReceivables decimal.Decimal

	TrailingExpenses []MonthExpenses

	FixedExpenses FixedExpenseStats
	Clients       ClientFiscalStats
	Opportunities OpportunityStats
	RecentHours   int64

	ClosedProjects []ProjectFigures

	LatestSnapshot           *entity.BalanceSnapshot
	CollectionsSinceSnapshot decimal.Decimal
	ExpensesSinceSnapshot    decimal.Decimal

	Target *entity.ResolvedTarget
}

// FactLoader retrieves the raw facts of a period. All sub-queries run
// concurrently; a failed sub-query degrades to its zero value and a warning
// log rather than failing the whole load, so an incomplete picture still
// renders (as a lower completeness score).
type FactLoader struct {
	factRepo     FactRepository
	snapshotRepo adapter.BalanceSnapshotRepository
	resolver     *target.Resolver
}

// NewFactLoader creates a new FactLoader instance.
func NewFactLoader(factRepo FactRepository, snapshotRepo adapter.BalanceSnapshotRepository, resolver *target.Resolver) *FactLoader {
	return &FactLoader{
		factRepo:     factRepo,
		snapshotRepo: snapshotRepo,
		resolver:     resolver,
	}
}

// Load fans out every sub-query for the given workspace and period.
func (l *FactLoader) Load(ctx context.Context, workspaceID uuid.UUID, period entity.Period, now time.Time) *PeriodFacts {
	facts := &PeriodFacts{Period: period}
	prev := period.Previous()

	var wg sync.WaitGroup
	run := func(name string, query func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := query(); err != nil {
				slog.Warn("metrics sub-query degraded to zero default",
					"query", name,
					"workspace_id", workspaceID,
					"error", err,
				)
			}
		}()
	}

	run("collections_this_period", func() (err error) {
		facts.CollectionsThisPeriod, err = l.factRepo.SumCollections(ctx, workspaceID, period.Start(), period.End())
		return err
	})
	run("expenses_this_period", func() (err error) {
		facts.ExpensesThisPeriod, err = l.factRepo.SumExpenses(ctx, workspaceID, period.Start(), period.End())
		return err
	})
	run("collections_prev_period", func() (err error) {
		facts.CollectionsPrevPeriod, err = l.factRepo.SumCollections(ctx, workspaceID, prev.Start(), prev.End())
		return err
	})
	run("expenses_prev_period", func() (err error) {
		facts.ExpensesPrevPeriod, err = l.factRepo.SumExpenses(ctx, workspaceID, prev.Start(), prev.End())
		return err
	})
	run("invoiced_this_period", func() (err error) {
		facts.InvoicedThisPeriod, err = l.factRepo.SumInvoiced(ctx, workspaceID, period.Start(), period.End())
		return err
	})
	run("total_invoiced", func() (err error) {
		facts.TotalInvoiced, err = l.factRepo.TotalInvoiced(ctx, workspaceID)
		return err
	})
	run("total_collected", func() (err error) {
		facts.TotalCollected, err = l.factRepo.TotalCollected(ctx, workspaceID)
		return err
	})
	run("overdue_receivables", func() (err error) {
		facts.OverdueReceivables, err = l.factRepo.OverdueReceivables(ctx, workspaceID, now.Add(-receivableOverdueAfter))
		return err
	})
	run("trailing_expenses", func() error {
		return l.loadTrailingExpenses(ctx, workspaceID, period, facts)
	})
	run("fixed_expenses", func() error {
		stats, err := l.factRepo.FixedExpenseStats(ctx, workspaceID, period)
		if stats != nil {
			facts.FixedExpenses = *stats
		}
		return err
	})
	run("client_fiscal_stats", func() error {
		stats, err := l.factRepo.ClientFiscalStats(ctx, workspaceID)
		if stats != nil {
			facts.Clients = *stats
		}
		return err
	})
	run("opportunity_stats", func() error {
		stats, err := l.factRepo.OpportunityStats(ctx, workspaceID, now.Add(-opportunityFreshnessWindow))
		if stats != nil {
			facts.Opportunities = *stats
		}
		return err
	})
	run("recent_hours", func() (err error) {
		facts.RecentHours, err = l.factRepo.CountRecentHours(ctx, workspaceID, now.Add(-recentHoursWindow))
		return err
	})
	run("closed_projects", func() (err error) {
		facts.ClosedProjects, err = l.factRepo.ClosedProjectFigures(ctx, workspaceID)
		return err
	})
	run("balance_reconstruction", func() error {
		return l.loadReconstructionFacts(ctx, workspaceID, facts)
	})
	run("resolved_target", func() (err error) {
		facts.Target, err = l.resolver.Resolve(ctx, workspaceID, period)
		return err
	})

	wg.Wait()
	return facts
}

// loadTrailingExpenses fills the burn-rate window: the requested period and the
// months immediately before it.
func (l *FactLoader) loadTrailingExpenses(ctx context.Context, workspaceID uuid.UUID, period entity.Period, facts *PeriodFacts) error {
	window := make([]MonthExpenses, 0, trailingExpenseMonths)
	month := period
	for i := 0; i < trailingExpenseMonths; i++ {
		total, err := l.factRepo.SumExpenses(ctx, workspaceID, month.Start(), month.End())
		if err != nil {
			return err
		}
		window = append(window, MonthExpenses{Period: month, Total: total})
		month = month.Previous()
	}
	facts.TrailingExpenses = window
	return nil
}

// loadReconstructionFacts loads the latest snapshot and the transaction sums
// after it. These three reads are ordered, so they share one sub-query.
func (l *FactLoader) loadReconstructionFacts(ctx context.Context, workspaceID uuid.UUID, facts *PeriodFacts) error {
	snapshot, err := l.snapshotRepo.FindLatest(ctx, workspaceID)
	if err != nil {
		return err
	}
	facts.LatestSnapshot = snapshot

	// Bootstrap case: with no snapshot the "since" sums are all-time sums.
	var since time.Time
	if snapshot != nil {
		since = snapshot.ReportedAt
	}

	facts.CollectionsSinceSnapshot, err = l.factRepo.SumCollectionsAfter(ctx, workspaceID, since)
	if err != nil {
		return err
	}
	facts.ExpensesSinceSnapshot, err = l.factRepo.SumExpensesAfter(ctx, workspaceID, since)
	return err
}
