// Package target contains monthly-target use cases.
package target

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
)

// fakeTargetRepo is an in-memory TargetRepository keyed by (workspace, period).
type fakeTargetRepo struct {
	rows   map[string]*entity.MonthlyTarget
	legacy map[uuid.UUID]*entity.MonthlyTarget
	err    error
}

func newFakeTargetRepo() *fakeTargetRepo {
	return &fakeTargetRepo{
		rows:   make(map[string]*entity.MonthlyTarget),
		legacy: make(map[uuid.UUID]*entity.MonthlyTarget),
	}
}

func (f *fakeTargetRepo) key(workspaceID uuid.UUID, period entity.Period) string {
	return workspaceID.String() + "/" + period.Key()
}

func (f *fakeTargetRepo) FindByPeriod(_ context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.MonthlyTarget, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[f.key(workspaceID, period)], nil
}

func (f *fakeTargetRepo) FindLatestBefore(_ context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.MonthlyTarget, error) {
	if f.err != nil {
		return nil, f.err
	}
	var latest *entity.MonthlyTarget
	for _, row := range f.rows {
		if row.WorkspaceID != workspaceID {
			continue
		}
		if !row.Period().Start().Before(period.Start()) {
			continue
		}
		if latest == nil || row.Period().Start().After(latest.Period().Start()) {
			latest = row
		}
	}
	return latest, nil
}

func (f *fakeTargetRepo) FindLegacy(_ context.Context, workspaceID uuid.UUID) (*entity.MonthlyTarget, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.legacy[workspaceID], nil
}

func (f *fakeTargetRepo) Upsert(_ context.Context, target *entity.MonthlyTarget) error {
	if f.err != nil {
		return f.err
	}
	f.rows[f.key(target.WorkspaceID, target.Period())] = target
	return nil
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	workspaceID := uuid.New()
	march := entity.NewPeriod(2026, time.March)
	january := entity.NewPeriod(2026, time.January)

	t.Run("exact match wins", func(t *testing.T) {
		repo := newFakeTargetRepo()
		repo.Upsert(ctx, entity.NewMonthlyTarget(workspaceID, march, decimal.NewFromInt(5000000), decimal.NewFromInt(4000000)))
		repo.Upsert(ctx, entity.NewMonthlyTarget(workspaceID, january, decimal.NewFromInt(1000000), decimal.NewFromInt(800000)))

		resolved, err := NewResolver(repo).Resolve(ctx, workspaceID, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved == nil {
			t.Fatal("expected a resolved target")
		}
		if resolved.Source != entity.TargetSourceExact {
			t.Errorf("expected source %q, got %q", entity.TargetSourceExact, resolved.Source)
		}
		if !resolved.SalesTarget.Equal(decimal.NewFromInt(5000000)) {
			t.Errorf("expected sales target 5000000, got %s", resolved.SalesTarget)
		}
	})

	t.Run("falls back to the most recent prior period", func(t *testing.T) {
		repo := newFakeTargetRepo()
		repo.Upsert(ctx, entity.NewMonthlyTarget(workspaceID, january, decimal.NewFromInt(1000000), decimal.NewFromInt(800000)))
		repo.Upsert(ctx, entity.NewMonthlyTarget(workspaceID, entity.NewPeriod(2025, time.November), decimal.NewFromInt(700000), decimal.NewFromInt(560000)))

		resolved, err := NewResolver(repo).Resolve(ctx, workspaceID, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved == nil {
			t.Fatal("expected a resolved target")
		}
		if resolved.Source != entity.TargetSourceInherited {
			t.Errorf("expected source %q, got %q", entity.TargetSourceInherited, resolved.Source)
		}
		if resolved.SourcePeriod != january {
			t.Errorf("expected source period %v, got %v", january, resolved.SourcePeriod)
		}
		if !resolved.SalesTarget.Equal(decimal.NewFromInt(1000000)) {
			t.Errorf("expected january's sales target, got %s", resolved.SalesTarget)
		}
	})

	t.Run("falls back to the legacy goals table", func(t *testing.T) {
		repo := newFakeTargetRepo()
		repo.legacy[workspaceID] = entity.NewMonthlyTarget(workspaceID, entity.NewPeriod(2024, time.January), decimal.NewFromInt(300000), decimal.NewFromInt(240000))

		resolved, err := NewResolver(repo).Resolve(ctx, workspaceID, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved == nil {
			t.Fatal("expected a resolved target")
		}
		if resolved.Source != entity.TargetSourceLegacy {
			t.Errorf("expected source %q, got %q", entity.TargetSourceLegacy, resolved.Source)
		}
	})

	t.Run("nothing resolves to nil without error", func(t *testing.T) {
		resolved, err := NewResolver(newFakeTargetRepo()).Resolve(ctx, workspaceID, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved != nil {
			t.Errorf("expected nil, got %+v", resolved)
		}
	})

	t.Run("explicit save overrides prior inheritance", func(t *testing.T) {
		repo := newFakeTargetRepo()
		repo.Upsert(ctx, entity.NewMonthlyTarget(workspaceID, january, decimal.NewFromInt(1000000), decimal.NewFromInt(800000)))
		resolver := NewResolver(repo)

		before, err := resolver.Resolve(ctx, workspaceID, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if before.Source != entity.TargetSourceInherited {
			t.Fatalf("expected inherited before the explicit save, got %q", before.Source)
		}

		repo.Upsert(ctx, entity.NewMonthlyTarget(workspaceID, march, decimal.NewFromInt(2000000), decimal.NewFromInt(1600000)))
		after, err := resolver.Resolve(ctx, workspaceID, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if after.Source != entity.TargetSourceExact {
			t.Errorf("expected exact after the explicit save, got %q", after.Source)
		}
		if !after.SalesTarget.Equal(decimal.NewFromInt(2000000)) {
			t.Errorf("expected the explicit value, got %s", after.SalesTarget)
		}
	})

	t.Run("repository errors propagate", func(t *testing.T) {
		repo := newFakeTargetRepo()
		repo.err = errors.New("db down")

		_, err := NewResolver(repo).Resolve(ctx, workspaceID, march)
		if err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestSaveTargetUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	workspaceID := uuid.New()
	march := entity.NewPeriod(2026, time.March)

	t.Run("saves and reads back unmodified", func(t *testing.T) {
		repo := newFakeTargetRepo()
		uc := NewSaveTargetUseCase(repo)
		collection := decimal.NewFromInt(4200000)

		out, err := uc.Execute(ctx, SaveTargetInput{
			WorkspaceID:      workspaceID,
			Period:           march,
			SalesTarget:      decimal.NewFromInt(5000000),
			CollectionTarget: &collection,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Target.CollectionTarget.Equal(collection) {
			t.Errorf("expected collection target %s, got %s", collection, out.Target.CollectionTarget)
		}

		resolved, err := NewResolver(repo).Resolve(ctx, workspaceID, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resolved.SalesTarget.Equal(decimal.NewFromInt(5000000)) || !resolved.CollectionTarget.Equal(collection) {
			t.Errorf("round trip changed the values: %+v", resolved)
		}
	})

	t.Run("collection target defaults to 80 percent of sales", func(t *testing.T) {
		uc := NewSaveTargetUseCase(newFakeTargetRepo())

		out, err := uc.Execute(ctx, SaveTargetInput{
			WorkspaceID: workspaceID,
			Period:      march,
			SalesTarget: decimal.NewFromInt(5000000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Target.CollectionTarget.Equal(decimal.NewFromInt(4000000)) {
			t.Errorf("expected 4000000, got %s", out.Target.CollectionTarget)
		}
	})

	t.Run("rejects a non-positive sales target", func(t *testing.T) {
		uc := NewSaveTargetUseCase(newFakeTargetRepo())

		_, err := uc.Execute(ctx, SaveTargetInput{
			WorkspaceID: workspaceID,
			Period:      march,
			SalesTarget: decimal.Zero,
		})
		if !errors.Is(err, domainerror.ErrInvalidSalesTarget) {
			t.Errorf("expected ErrInvalidSalesTarget, got %v", err)
		}
	})

	t.Run("rejects a negative collection target", func(t *testing.T) {
		uc := NewSaveTargetUseCase(newFakeTargetRepo())
		negative := decimal.NewFromInt(-1)

		_, err := uc.Execute(ctx, SaveTargetInput{
			WorkspaceID:      workspaceID,
			Period:           march,
			SalesTarget:      decimal.NewFromInt(5000000),
			CollectionTarget: &negative,
		})
		if !errors.Is(err, domainerror.ErrInvalidCollectionTarget) {
			t.Errorf("expected ErrInvalidCollectionTarget, got %v", err)
		}
	})
}

func TestBulkSaveTargetsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	workspaceID := uuid.New()

	t.Run("saves every month", func(t *testing.T) {
		repo := newFakeTargetRepo()
		uc := NewBulkSaveTargetsUseCase(repo)

		items := make([]BulkTargetItem, 0, 12)
		for month := time.January; month <= time.December; month++ {
			items = append(items, BulkTargetItem{
				Period:      entity.NewPeriod(2026, month),
				SalesTarget: decimal.NewFromInt(int64(month) * 100000),
			})
		}

		out, err := uc.Execute(ctx, BulkSaveTargetsInput{WorkspaceID: workspaceID, Items: items})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Saved != 12 {
			t.Errorf("expected 12 saved, got %d", out.Saved)
		}
		if len(repo.rows) != 12 {
			t.Errorf("expected 12 rows, got %d", len(repo.rows))
		}
	})

	t.Run("rejects more than twelve months", func(t *testing.T) {
		uc := NewBulkSaveTargetsUseCase(newFakeTargetRepo())

		items := make([]BulkTargetItem, 13)
		for i := range items {
			items[i] = BulkTargetItem{
				Period:      entity.NewPeriod(2026, time.January),
				SalesTarget: decimal.NewFromInt(100000),
			}
		}

		_, err := uc.Execute(ctx, BulkSaveTargetsInput{WorkspaceID: workspaceID, Items: items})
		if !errors.Is(err, domainerror.ErrTooManyTargets) {
			t.Errorf("expected ErrTooManyTargets, got %v", err)
		}
	})

	t.Run("validates every item before writing any", func(t *testing.T) {
		repo := newFakeTargetRepo()
		uc := NewBulkSaveTargetsUseCase(repo)

		items := []BulkTargetItem{
			{Period: entity.NewPeriod(2026, time.January), SalesTarget: decimal.NewFromInt(100000)},
			{Period: entity.NewPeriod(2026, time.February), SalesTarget: decimal.Zero},
		}

		_, err := uc.Execute(ctx, BulkSaveTargetsInput{WorkspaceID: workspaceID, Items: items})
		if !errors.Is(err, domainerror.ErrInvalidSalesTarget) {
			t.Fatalf("expected ErrInvalidSalesTarget, got %v", err)
		}
		if len(repo.rows) != 0 {
			t.Errorf("expected no rows written, got %d", len(repo.rows))
		}
	})
}
