// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pulso-finanzas/backend/internal/application/usecase/balance"
	"github.com/pulso-finanzas/backend/internal/application/usecase/metrics"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	"github.com/pulso-finanzas/backend/internal/integration/persistence/model"
)

// FactRepository implements the metrics.FactRepository and balance.CashFlowRepository
// interfaces over the raw transactional tables.
type FactRepository struct {
	db *gorm.DB
}

// NewFactRepository creates a new fact repository instance.
func NewFactRepository(db *gorm.DB) *FactRepository {
	return &FactRepository{
		db: db,
	}
}

// SumCollections returns the collections total for dates in [from, to).
func (r *FactRepository) SumCollections(ctx context.Context, workspaceID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "collections", "date", workspaceID, &from, &to)
}

// SumExpenses returns the expenses total for dates in [from, to).
func (r *FactRepository) SumExpenses(ctx context.Context, workspaceID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "expenses", "date", workspaceID, &from, &to)
}

// SumInvoiced returns the issued-invoice total for dates in [from, to).
func (r *FactRepository) SumInvoiced(ctx context.Context, workspaceID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "invoices", "issued_at", workspaceID, &from, &to)
}

// TotalInvoiced returns the all-time issued-invoice total.
func (r *FactRepository) TotalInvoiced(ctx context.Context, workspaceID uuid.UUID) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "invoices", "issued_at", workspaceID, nil, nil)
}

// TotalCollected returns the all-time collections total.
func (r *FactRepository) TotalCollected(ctx context.Context, workspaceID uuid.UUID) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "collections", "date", workspaceID, nil, nil)
}

// SumCollectionsAfter returns the collections total for dates strictly after the instant.
func (r *FactRepository) SumCollectionsAfter(ctx context.Context, workspaceID uuid.UUID, after time.Time) (decimal.Decimal, error) {
	return r.sumAmountAfter(ctx, "collections", "date", workspaceID, after)
}

// SumExpensesAfter returns the expenses total for dates strictly after the instant.
func (r *FactRepository) SumExpensesAfter(ctx context.Context, workspaceID uuid.UUID, after time.Time) (decimal.Decimal, error) {
	return r.sumAmountAfter(ctx, "expenses", "date", workspaceID, after)
}

// sumAmount sums the amount column of one fact table, optionally restricted to
// a half-open [from, to) date range.
func (r *FactRepository) sumAmount(ctx context.Context, table, dateColumn string, workspaceID uuid.UUID, from, to *time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	query := r.db.WithContext(ctx).
		Table(table).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("workspace_id = ?", workspaceID)

	if from != nil {
		query = query.Where(dateColumn+" >= ?", *from)
	}
	if to != nil {
		query = query.Where(dateColumn+" < ?", *to)
	}

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s: %w", table, err)
	}

	return result.Total, nil
}

func (r *FactRepository) sumAmountAfter(ctx context.Context, table, dateColumn string, workspaceID uuid.UUID, after time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table(table).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("workspace_id = ?", workspaceID).
		Where(dateColumn+" > ?", after).
		Scan(&result).Error

	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s after instant: %w", table, err)
	}

	return result.Total, nil
}

// OverdueReceivables returns the outstanding balance of invoices issued before
// the cutoff that are not yet fully collected. The collected portion of an
// invoice is the sum of the collections linked to it.
func (r *FactRepository) OverdueReceivables(ctx context.Context, workspaceID uuid.UUID, issuedBefore time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	query := `
		SELECT COALESCE(SUM(i.amount - COALESCE(c.collected, 0)), 0) as total
		FROM invoices i
		LEFT JOIN (
			SELECT invoice_id, SUM(amount) as collected
			FROM collections
			WHERE workspace_id = ? AND invoice_id IS NOT NULL
			GROUP BY invoice_id
		) c ON c.invoice_id = i.id
		WHERE i.workspace_id = ?
			AND i.issued_at < ?
			AND i.amount > COALESCE(c.collected, 0)
	`

	err := r.db.WithContext(ctx).
		Raw(query, workspaceID, workspaceID, issuedBefore).
		Scan(&result).Error

	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get overdue receivables: %w", err)
	}

	return result.Total, nil
}

// FixedExpenseStats returns fixed-expense configuration counts and totals.
func (r *FactRepository) FixedExpenseStats(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*metrics.FixedExpenseStats, error) {
	var result struct {
		ConfirmedCount      int64           `gorm:"column:confirmed_count"`
		MonthlyTotal        decimal.Decimal `gorm:"column:monthly_total"`
		DraftCount          int64           `gorm:"column:draft_count"`
		ConfirmedThisPeriod int64           `gorm:"column:confirmed_this_period"`
	}

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as confirmed_count,
			COALESCE(SUM(CASE WHEN status = ? THEN monthly_amount ELSE 0 END), 0) as monthly_total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as draft_count,
			COALESCE(SUM(CASE WHEN status = ? AND confirmed_at >= ? AND confirmed_at < ? THEN 1 ELSE 0 END), 0) as confirmed_this_period
		FROM fixed_expenses
		WHERE workspace_id = ?
	`

	err := r.db.WithContext(ctx).
		Raw(query,
			model.FixedExpenseStatusConfirmed,
			model.FixedExpenseStatusConfirmed,
			model.FixedExpenseStatusDraft,
			model.FixedExpenseStatusConfirmed, period.Start(), period.End(),
			workspaceID,
		).
		Scan(&result).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get fixed expense stats: %w", err)
	}

	return &metrics.FixedExpenseStats{
		ConfirmedCount:      result.ConfirmedCount,
		MonthlyTotal:        result.MonthlyTotal,
		DraftCount:          result.DraftCount,
		ConfirmedThisPeriod: result.ConfirmedThisPeriod,
	}, nil
}

// ClientFiscalStats returns how many clients exist and how many have complete
// fiscal data.
func (r *FactRepository) ClientFiscalStats(ctx context.Context, workspaceID uuid.UUID) (*metrics.ClientFiscalStats, error) {
	var result struct {
		Total    int64 `gorm:"column:total"`
		Complete int64 `gorm:"column:complete"`
	}

	query := `
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN tax_id <> '' AND tax_regime <> '' THEN 1 ELSE 0 END), 0) as complete
		FROM clients
		WHERE workspace_id = ?
	`

	err := r.db.WithContext(ctx).
		Raw(query, workspaceID).
		Scan(&result).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get client fiscal stats: %w", err)
	}

	return &metrics.ClientFiscalStats{
		Total:    result.Total,
		Complete: result.Complete,
	}, nil
}

// OpportunityStats returns active opportunities and how many were updated since
// the given instant.
func (r *FactRepository) OpportunityStats(ctx context.Context, workspaceID uuid.UUID, updatedSince time.Time) (*metrics.OpportunityStats, error) {
	var result struct {
		Active          int64 `gorm:"column:active"`
		RecentlyUpdated int64 `gorm:"column:recently_updated"`
	}

	query := `
		SELECT
			COUNT(*) as active,
			COALESCE(SUM(CASE WHEN updated_at >= ? THEN 1 ELSE 0 END), 0) as recently_updated
		FROM opportunities
		WHERE workspace_id = ?
			AND status = ?
	`

	err := r.db.WithContext(ctx).
		Raw(query, updatedSince, workspaceID, model.OpportunityStatusActive).
		Scan(&result).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get opportunity stats: %w", err)
	}

	return &metrics.OpportunityStats{
		Active:          result.Active,
		RecentlyUpdated: result.RecentlyUpdated,
	}, nil
}

// CountRecentHours returns how many time entries were logged since the instant.
func (r *FactRepository) CountRecentHours(ctx context.Context, workspaceID uuid.UUID, since time.Time) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.TimeEntryModel{}).
		Where("workspace_id = ?", workspaceID).
		Where("logged_at >= ?", since).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count recent hours: %w", err)
	}

	return count, nil
}

// ClosedProjectFigures returns budget and accumulated cost for every
// historically closed project.
func (r *FactRepository) ClosedProjectFigures(ctx context.Context, workspaceID uuid.UUID) ([]metrics.ProjectFigures, error) {
	var results []struct {
		TotalBudget     decimal.Decimal `gorm:"column:total_budget"`
		AccumulatedCost decimal.Decimal `gorm:"column:accumulated_cost"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Select("total_budget, accumulated_cost").
		Where("workspace_id = ?", workspaceID).
		Where("status = ?", model.ProjectStatusClosed).
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get closed project figures: %w", err)
	}

	figures := make([]metrics.ProjectFigures, len(results))
	for i, res := range results {
		figures[i] = metrics.ProjectFigures{
			TotalBudget:     res.TotalBudget,
			AccumulatedCost: res.AccumulatedCost,
		}
	}

	return figures, nil
}

// Ensure the repository satisfies both aggregate-read interfaces.
var (
	_ metrics.FactRepository     = (*FactRepository)(nil)
	_ balance.CashFlowRepository = (*FactRepository)(nil)
)
