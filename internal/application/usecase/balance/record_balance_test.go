// Package balance contains the balance recording and reconciliation use cases.
package balance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
	"github.com/pulso-finanzas/backend/internal/domain/valueobject"
)

type fakeSnapshotRepo struct {
	snapshots []*entity.BalanceSnapshot
}

func (f *fakeSnapshotRepo) Create(_ context.Context, snapshot *entity.BalanceSnapshot) error {
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func (f *fakeSnapshotRepo) FindLatest(_ context.Context, workspaceID uuid.UUID) (*entity.BalanceSnapshot, error) {
	var latest *entity.BalanceSnapshot
	for _, s := range f.snapshots {
		if s.WorkspaceID != workspaceID {
			continue
		}
		if latest == nil || s.ReportedAt.After(latest.ReportedAt) {
			latest = s
		}
	}
	return latest, nil
}

func (f *fakeSnapshotRepo) FindByWorkspace(_ context.Context, workspaceID uuid.UUID) ([]*entity.BalanceSnapshot, error) {
	var out []*entity.BalanceSnapshot
	for _, s := range f.snapshots {
		if s.WorkspaceID == workspaceID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeStreakRepo struct {
	streaks map[uuid.UUID]*entity.ReconciliationStreak
}

func newFakeStreakRepo() *fakeStreakRepo {
	return &fakeStreakRepo{streaks: make(map[uuid.UUID]*entity.ReconciliationStreak)}
}

func (f *fakeStreakRepo) Find(_ context.Context, workspaceID uuid.UUID, _ entity.StreakType) (*entity.ReconciliationStreak, error) {
	return f.streaks[workspaceID], nil
}

func (f *fakeStreakRepo) Save(_ context.Context, streak *entity.ReconciliationStreak) error {
	f.streaks[streak.WorkspaceID] = streak
	return nil
}

type fakeWorkspaceRepo struct {
	workspace *entity.Workspace
}

func (f *fakeWorkspaceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Workspace, error) {
	if f.workspace != nil && f.workspace.ID == id {
		return f.workspace, nil
	}
	return nil, nil
}

type fakeCashFlowRepo struct {
	collections decimal.Decimal
	expenses    decimal.Decimal
}

func (f *fakeCashFlowRepo) SumCollectionsAfter(_ context.Context, _ uuid.UUID, _ time.Time) (decimal.Decimal, error) {
	return f.collections, nil
}

func (f *fakeCashFlowRepo) SumExpensesAfter(_ context.Context, _ uuid.UUID, _ time.Time) (decimal.Decimal, error) {
	return f.expenses, nil
}

type fakeNotifications struct {
	milestones []adapter.QueueStreakMilestoneInput
	alerts     []adapter.QueueReconciliationAlertInput
}

func (f *fakeNotifications) QueueStreakMilestoneEmail(_ context.Context, input adapter.QueueStreakMilestoneInput) error {
	f.milestones = append(f.milestones, input)
	return nil
}

func (f *fakeNotifications) QueueReconciliationAlertEmail(_ context.Context, input adapter.QueueReconciliationAlertInput) error {
	f.alerts = append(f.alerts, input)
	return nil
}

type recordBalanceFixture struct {
	uc            *RecordBalanceUseCase
	snapshots     *fakeSnapshotRepo
	streaks       *fakeStreakRepo
	cashFlow      *fakeCashFlowRepo
	notifications *fakeNotifications
	workspaceID   uuid.UUID
}

func newRecordBalanceFixture(now time.Time) *recordBalanceFixture {
	workspace := &entity.Workspace{
		ID:         uuid.New(),
		Name:       "Estudio Galván",
		OwnerName:  "Mariana",
		OwnerEmail: "mariana@example.com",
	}
	fixture := &recordBalanceFixture{
		snapshots:     &fakeSnapshotRepo{},
		streaks:       newFakeStreakRepo(),
		cashFlow:      &fakeCashFlowRepo{collections: decimal.Zero, expenses: decimal.Zero},
		notifications: &fakeNotifications{},
		workspaceID:   workspace.ID,
	}
	fixture.uc = NewRecordBalanceUseCase(
		fixture.snapshots,
		fixture.streaks,
		&fakeWorkspaceRepo{workspace: workspace},
		fixture.cashFlow,
		fixture.notifications,
		valueobject.DefaultToleranceConfig(),
	)
	fixture.uc.now = func() time.Time { return now }
	return fixture
}

func TestRecordBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		fixture := newRecordBalanceFixture(now)

		_, err := fixture.uc.Execute(ctx, RecordBalanceInput{
			WorkspaceID: fixture.workspaceID,
			Amount:      decimal.Zero,
		})
		if !errors.Is(err, domainerror.ErrInvalidBalanceAmount) {
			t.Errorf("expected ErrInvalidBalanceAmount, got %v", err)
		}
		if len(fixture.snapshots.snapshots) != 0 {
			t.Error("expected no snapshot written on validation failure")
		}
	})

	t.Run("bootstrap reconstruction uses all-time sums", func(t *testing.T) {
		fixture := newRecordBalanceFixture(now)
		fixture.cashFlow.collections = decimal.NewFromInt(900000)
		fixture.cashFlow.expenses = decimal.NewFromInt(400000)

		out, err := fixture.uc.Execute(ctx, RecordBalanceInput{
			WorkspaceID: fixture.workspaceID,
			Amount:      decimal.NewFromInt(500000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.TheoreticalBalance.Equal(decimal.NewFromInt(500000)) {
			t.Errorf("expected theoretical 500000, got %s", out.TheoreticalBalance)
		}
		if !out.Difference.IsZero() {
			t.Errorf("expected zero difference, got %s", out.Difference)
		}
		if !out.WithinTolerance {
			t.Error("expected a zero difference to be within tolerance")
		}
		if out.StreakCount != 1 || out.StreakRecord != 1 {
			t.Errorf("expected a fresh streak, got count=%d record=%d", out.StreakCount, out.StreakRecord)
		}
	})

	t.Run("recording with no intervening transactions yields zero difference", func(t *testing.T) {
		fixture := newRecordBalanceFixture(now)
		fixture.cashFlow.collections = decimal.NewFromInt(750000)

		if _, err := fixture.uc.Execute(ctx, RecordBalanceInput{
			WorkspaceID: fixture.workspaceID,
			Amount:      decimal.NewFromInt(750000),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Next period, nothing moved since the snapshot.
		fixture.uc.now = func() time.Time { return now.AddDate(0, 0, 7) }
		fixture.cashFlow.collections = decimal.Zero
		fixture.cashFlow.expenses = decimal.Zero

		out, err := fixture.uc.Execute(ctx, RecordBalanceInput{
			WorkspaceID: fixture.workspaceID,
			Amount:      decimal.NewFromInt(750000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Difference.IsZero() {
			t.Errorf("expected zero difference, got %s", out.Difference)
		}
		if out.StreakCount != 2 {
			t.Errorf("expected streak count 2, got %d", out.StreakCount)
		}
	})

	t.Run("material difference queues a reconciliation alert", func(t *testing.T) {
		fixture := newRecordBalanceFixture(now)
		fixture.cashFlow.collections = decimal.NewFromInt(950000)

		out, err := fixture.uc.Execute(ctx, RecordBalanceInput{
			WorkspaceID: fixture.workspaceID,
			Amount:      decimal.NewFromInt(1050000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.WithinTolerance {
			t.Error("expected a 100000 difference on a 1050000 balance to be material")
		}
		if len(fixture.notifications.alerts) != 1 {
			t.Fatalf("expected 1 alert queued, got %d", len(fixture.notifications.alerts))
		}
		if fixture.notifications.alerts[0].OwnerEmail != "mariana@example.com" {
			t.Errorf("unexpected alert recipient %q", fixture.notifications.alerts[0].OwnerEmail)
		}
	})

	t.Run("difference exactly at tolerance is within it", func(t *testing.T) {
		fixture := newRecordBalanceFixture(now)
		fixture.cashFlow.collections = decimal.NewFromInt(950000)

		// Tolerance for 1000000 is max(50000, 20000) = 50000.
		out, err := fixture.uc.Execute(ctx, RecordBalanceInput{
			WorkspaceID: fixture.workspaceID,
			Amount:      decimal.NewFromInt(1000000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Difference.Equal(decimal.NewFromInt(50000)) {
			t.Fatalf("expected difference 50000, got %s", out.Difference)
		}
		if !out.WithinTolerance {
			t.Error("expected the boundary difference to be within tolerance")
		}
		if len(fixture.notifications.alerts) != 0 {
			t.Errorf("expected no alert, got %d", len(fixture.notifications.alerts))
		}
	})

	t.Run("reaching a badge tier queues a milestone email", func(t *testing.T) {
		fixture := newRecordBalanceFixture(now)
		fixture.streaks.streaks[fixture.workspaceID] = &entity.ReconciliationStreak{
			ID:          uuid.New(),
			WorkspaceID: fixture.workspaceID,
			Type:        entity.StreakTypeReconciliation,
			Count:       3,
			Record:      3,
			StreakStart: now.AddDate(0, 0, -21),
			UpdatedAt:   now.AddDate(0, 0, -7),
		}

		out, err := fixture.uc.Execute(ctx, RecordBalanceInput{
			WorkspaceID: fixture.workspaceID,
			Amount:      decimal.NewFromInt(100000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.StreakCount != 4 {
			t.Fatalf("expected streak count 4, got %d", out.StreakCount)
		}
		if out.Badge != entity.StreakBadgeBronze {
			t.Errorf("expected bronze badge, got %q", out.Badge)
		}
		if len(fixture.notifications.milestones) != 1 {
			t.Fatalf("expected 1 milestone queued, got %d", len(fixture.notifications.milestones))
		}
		if fixture.notifications.milestones[0].WeekCount != 4 {
			t.Errorf("expected week count 4, got %d", fixture.notifications.milestones[0].WeekCount)
		}
	})

	t.Run("gap over seven days resets the streak but keeps the record", func(t *testing.T) {
		fixture := newRecordBalanceFixture(now)
		fixture.streaks.streaks[fixture.workspaceID] = &entity.ReconciliationStreak{
			ID:          uuid.New(),
			WorkspaceID: fixture.workspaceID,
			Type:        entity.StreakTypeReconciliation,
			Count:       3,
			Record:      3,
			StreakStart: now.AddDate(0, 0, -31),
			UpdatedAt:   now.AddDate(0, 0, -10),
		}

		out, err := fixture.uc.Execute(ctx, RecordBalanceInput{
			WorkspaceID: fixture.workspaceID,
			Amount:      decimal.NewFromInt(100000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.StreakCount != 1 {
			t.Errorf("expected streak reset to 1, got %d", out.StreakCount)
		}
		if out.StreakRecord != 3 {
			t.Errorf("expected record preserved at 3, got %d", out.StreakRecord)
		}
	})
}
