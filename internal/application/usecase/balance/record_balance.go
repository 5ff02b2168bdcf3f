// Package balance contains the balance recording and reconciliation use cases.
package balance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
	"github.com/pulso-finanzas/backend/internal/domain/valueobject"
)

// CashFlowRepository provides the transaction sums needed to reconstruct the
// theoretical balance.
type CashFlowRepository interface {
	// SumCollectionsAfter sums collections dated strictly after the given instant.
	// A zero instant sums everything (bootstrap case).
	SumCollectionsAfter(ctx context.Context, workspaceID uuid.UUID, after time.Time) (decimal.Decimal, error)

	// SumExpensesAfter sums expenses dated strictly after the given instant.
	SumExpensesAfter(ctx context.Context, workspaceID uuid.UUID, after time.Time) (decimal.Decimal, error)
}

// RecordBalanceInput represents the input for recording a real bank balance.
type RecordBalanceInput struct {
	WorkspaceID uuid.UUID
	Amount      decimal.Decimal
	Note        string
}

// RecordBalanceOutput represents the result of recording a balance.
type RecordBalanceOutput struct {
	SnapshotID         uuid.UUID          `json:"snapshot_id"`
	TheoreticalBalance decimal.Decimal    `json:"theoretical_balance"`
	Difference         decimal.Decimal    `json:"difference"`
	WithinTolerance    bool               `json:"within_tolerance"`
	StreakCount        int                `json:"streak_count"`
	StreakRecord       int                `json:"streak_record"`
	Badge              entity.StreakBadge `json:"badge,omitempty"`
}

// RecordBalanceUseCase handles the record-balance mutator: it reconstructs the
// theoretical balance, persists the snapshot, advances the streak, and queues
// the notification emails.
type RecordBalanceUseCase struct {
	snapshotRepo  adapter.BalanceSnapshotRepository
	streakRepo    adapter.StreakRepository
	workspaceRepo adapter.WorkspaceRepository
	cashFlowRepo  CashFlowRepository
	notifications adapter.NotificationService
	tolerance     valueobject.ToleranceConfig
	now           func() time.Time
}

// NewRecordBalanceUseCase creates a new RecordBalanceUseCase instance.
func NewRecordBalanceUseCase(
	snapshotRepo adapter.BalanceSnapshotRepository,
	streakRepo adapter.StreakRepository,
	workspaceRepo adapter.WorkspaceRepository,
	cashFlowRepo CashFlowRepository,
	notifications adapter.NotificationService,
	tolerance valueobject.ToleranceConfig,
) *RecordBalanceUseCase {
	return &RecordBalanceUseCase{
		snapshotRepo:  snapshotRepo,
		streakRepo:    streakRepo,
		workspaceRepo: workspaceRepo,
		cashFlowRepo:  cashFlowRepo,
		notifications: notifications,
		tolerance:     tolerance,
		now:           time.Now,
	}
}

// Execute records a new real balance. The read-then-write sequence is not
// transactional: a concurrent double submission can produce two snapshots with
// slightly different reconstruction windows, accepted for single-operator use.
func (uc *RecordBalanceUseCase) Execute(
	ctx context.Context,
	input RecordBalanceInput,
) (*RecordBalanceOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBalanceError(
			domainerror.ErrCodeInvalidBalanceAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBalanceAmount,
		)
	}

	now := uc.now().UTC()

	theoretical, err := uc.reconstruct(ctx, input.WorkspaceID)
	if err != nil {
		return nil, err
	}

	snapshot := entity.NewBalanceSnapshot(input.WorkspaceID, input.Amount, theoretical, input.Note, now)
	if err := uc.snapshotRepo.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to create balance snapshot: %w", err)
	}

	streak, newBadge, err := uc.advanceStreak(ctx, input.WorkspaceID, now)
	if err != nil {
		return nil, err
	}

	uc.queueNotifications(ctx, input.WorkspaceID, snapshot, streak, newBadge)

	return &RecordBalanceOutput{
		SnapshotID:         snapshot.ID,
		TheoreticalBalance: snapshot.Theoretical,
		Difference:         snapshot.Difference,
		WithinTolerance:    !uc.tolerance.IsMaterial(snapshot.Difference, snapshot.Amount),
		StreakCount:        streak.Count,
		StreakRecord:       streak.Record,
		Badge:              streak.Badge(),
	}, nil
}

// reconstruct computes the theoretical balance from the latest snapshot and
// every transaction after it. Without a snapshot the sums are all-time and the
// reconstruction starts from zero.
func (uc *RecordBalanceUseCase) reconstruct(ctx context.Context, workspaceID uuid.UUID) (decimal.Decimal, error) {
	latest, err := uc.snapshotRepo.FindLatest(ctx, workspaceID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load latest snapshot: %w", err)
	}

	lastReal := decimal.Zero
	var since time.Time
	if latest != nil {
		lastReal = latest.Amount
		since = latest.ReportedAt
	}

	collections, err := uc.cashFlowRepo.SumCollectionsAfter(ctx, workspaceID, since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum collections: %w", err)
	}
	expenses, err := uc.cashFlowRepo.SumExpensesAfter(ctx, workspaceID, since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return valueobject.TheoreticalBalance(lastReal, collections, expenses), nil
}

// advanceStreak applies the weekly streak state machine and reports whether the
// update reached a new badge tier.
func (uc *RecordBalanceUseCase) advanceStreak(
	ctx context.Context,
	workspaceID uuid.UUID,
	now time.Time,
) (*entity.ReconciliationStreak, bool, error) {
	streak, err := uc.streakRepo.Find(ctx, workspaceID, entity.StreakTypeReconciliation)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load streak: %w", err)
	}

	if streak == nil {
		streak = entity.NewReconciliationStreak(workspaceID, entity.StreakTypeReconciliation, now)
		if err := uc.streakRepo.Save(ctx, streak); err != nil {
			return nil, false, fmt.Errorf("failed to save streak: %w", err)
		}
		return streak, false, nil
	}

	badgeBefore := streak.Badge()
	if !streak.RegisterReport(now) {
		return streak, false, nil
	}
	if err := uc.streakRepo.Save(ctx, streak); err != nil {
		return nil, false, fmt.Errorf("failed to save streak: %w", err)
	}

	newBadge := streak.Badge() != badgeBefore && streak.Badge() != entity.StreakBadgeNone
	return streak, newBadge, nil
}

// queueNotifications enqueues the milestone and alert emails. Failures here
// only log; the balance is already recorded and the response must not fail.
func (uc *RecordBalanceUseCase) queueNotifications(
	ctx context.Context,
	workspaceID uuid.UUID,
	snapshot *entity.BalanceSnapshot,
	streak *entity.ReconciliationStreak,
	newBadge bool,
) {
	material := uc.tolerance.IsMaterial(snapshot.Difference, snapshot.Amount)
	if !newBadge && !material {
		return
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil || workspace == nil {
		slog.Warn("skipping balance notifications, workspace lookup failed",
			"workspace_id", workspaceID,
			"error", err,
		)
		return
	}

	if newBadge {
		err := uc.notifications.QueueStreakMilestoneEmail(ctx, adapter.QueueStreakMilestoneInput{
			OwnerEmail:    workspace.OwnerEmail,
			OwnerName:     workspace.OwnerName,
			WorkspaceName: workspace.Name,
			Badge:         string(streak.Badge()),
			WeekCount:     streak.Count,
		})
		if err != nil {
			slog.Warn("failed to queue streak milestone email", "workspace_id", workspaceID, "error", err)
		}
	}

	if material {
		err := uc.notifications.QueueReconciliationAlertEmail(ctx, adapter.QueueReconciliationAlertInput{
			OwnerEmail:    workspace.OwnerEmail,
			OwnerName:     workspace.OwnerName,
			WorkspaceName: workspace.Name,
			Difference:    snapshot.Difference.StringFixed(2),
			Tolerance:     uc.tolerance.ToleranceFor(snapshot.Amount).StringFixed(2),
		})
		if err != nil {
			slog.Warn("failed to queue reconciliation alert email", "workspace_id", workspaceID, "error", err)
		}
	}
}
