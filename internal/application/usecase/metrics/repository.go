// Package metrics contains the period-metrics engine use cases.
package metrics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

// FactRepository defines aggregate read access to the raw transactional facts
// of a workspace. Every method is an independent query; callers may issue them
// concurrently.
type FactRepository interface {
	// SumCollections returns the collections total for dates in [from, to).
	SumCollections(ctx context.Context, workspaceID uuid.UUID, from, to time.Time) (decimal.Decimal, error)

	// SumExpenses returns the expenses total for dates in [from, to).
	SumExpenses(ctx context.Context, workspaceID uuid.UUID, from, to time.Time) (decimal.Decimal, error)

	// SumInvoiced returns the issued-invoice total for dates in [from, to).
	SumInvoiced(ctx context.Context, workspaceID uuid.UUID, from, to time.Time) (decimal.Decimal, error)

	// TotalInvoiced returns the all-time issued-invoice total.
	TotalInvoiced(ctx context.Context, workspaceID uuid.UUID) (decimal.Decimal, error)

	// TotalCollected returns the all-time collections total.
	TotalCollected(ctx context.Context, workspaceID uuid.UUID) (decimal.Decimal, error)

	// SumCollectionsAfter returns the collections total for dates strictly after the instant.
	SumCollectionsAfter(ctx context.Context, workspaceID uuid.UUID, after time.Time) (decimal.Decimal, error)

	// SumExpensesAfter returns the expenses total for dates strictly after the instant.
	SumExpensesAfter(ctx context.Context, workspaceID uuid.UUID, after time.Time) (decimal.Decimal, error)

	// OverdueReceivables returns the outstanding balance of invoices issued
	// before the given cutoff that are not yet fully collected.
	OverdueReceivables(ctx context.Context, workspaceID uuid.UUID, issuedBefore time.Time) (decimal.Decimal, error)

	// FixedExpenseStats returns fixed-expense configuration counts and totals.
	FixedExpenseStats(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*FixedExpenseStats, error)

	// ClientFiscalStats returns how many clients exist and how many have
	// complete fiscal data (tax id and regime).
	ClientFiscalStats(ctx context.Context, workspaceID uuid.UUID) (*ClientFiscalStats, error)

	// OpportunityStats returns active opportunities and how many were updated
	// since the given instant.
	OpportunityStats(ctx context.Context, workspaceID uuid.UUID, updatedSince time.Time) (*OpportunityStats, error)

	// CountRecentHours returns how many time entries were logged since the instant.
	CountRecentHours(ctx context.Context, workspaceID uuid.UUID, since time.Time) (int64, error)

	// ClosedProjectFigures returns budget and accumulated cost for every
	// historically closed project.
	ClosedProjectFigures(ctx context.Context, workspaceID uuid.UUID) ([]ProjectFigures, error)
}

// FixedExpenseStats holds fixed-expense configuration facts. ConfirmedCount and
// MonthlyTotal cover confirmed items only; DraftCount counts drafts still
// pending, ConfirmedThisPeriod counts confirmations inside the requested period.
type FixedExpenseStats struct {
	ConfirmedCount      int64
	MonthlyTotal        decimal.Decimal
	DraftCount          int64
	ConfirmedThisPeriod int64
}

// ClientFiscalStats holds client fiscal-data completeness facts.
type ClientFiscalStats struct {
	Total    int64
	Complete int64
}

// OpportunityStats holds sales-pipeline freshness facts.
type OpportunityStats struct {
	Active          int64
	RecentlyUpdated int64
}

// ProjectFigures holds the margin inputs of one closed project.
type ProjectFigures struct {
	TotalBudget     decimal.Decimal
	AccumulatedCost decimal.Decimal
}

// MonthExpenses is the expense total of one calendar month in the trailing window.
type MonthExpenses struct {
	Period entity.Period
	Total  decimal.Decimal
}
