package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
	"github.com/pulso-finanzas/backend/internal/domain/valueobject"
)

// GetMetricsInput represents the input for the period metrics read.
type GetMetricsInput struct {
	WorkspaceID uuid.UUID
	PeriodKey   string // YYYY-MM, empty means the current month
}

// ReconciliationView describes the latest snapshot against the reconstructed
// balance, with the materiality verdict for its stored difference.
type ReconciliationView struct {
	LastRealBalance decimal.Decimal `json:"last_real_balance"`
	LastReportedAt  time.Time       `json:"last_reported_at"`
	Difference      decimal.Decimal `json:"difference"`
	Tolerance       decimal.Decimal `json:"tolerance"`
	WithinTolerance bool            `json:"within_tolerance"`
}

// StreakView is the rendered reconciliation streak.
type StreakView struct {
	Count          int                `json:"count"`
	Record         int                `json:"record"`
	Badge          entity.StreakBadge `json:"badge,omitempty"`
	LastReportedAt time.Time          `json:"last_reported_at"`
}

// GetMetricsOutput is the composite result for one workspace period.
type GetMetricsOutput struct {
	PeriodKey      string                 `json:"period"`
	Indicators     *Indicators            `json:"indicators"`
	Semaphore      SemaphoreResult        `json:"semaphore"`
	Reconciliation *ReconciliationView    `json:"reconciliation,omitempty"`
	Streak         *StreakView            `json:"streak,omitempty"`
	Target         *entity.ResolvedTarget `json:"target,omitempty"`
}

// GetMetricsUseCase orchestrates the fact loader, the calculator, and the
// semaphore scorer into one composite read.
type GetMetricsUseCase struct {
	loader        *FactLoader
	workspaceRepo adapter.WorkspaceRepository
	streakRepo    adapter.StreakRepository
	tolerance     valueobject.ToleranceConfig
	now           func() time.Time
}

// NewGetMetricsUseCase creates a new GetMetricsUseCase instance.
func NewGetMetricsUseCase(
	loader *FactLoader,
	workspaceRepo adapter.WorkspaceRepository,
	streakRepo adapter.StreakRepository,
	tolerance valueobject.ToleranceConfig,
) *GetMetricsUseCase {
	return &GetMetricsUseCase{
		loader:        loader,
		workspaceRepo: workspaceRepo,
		streakRepo:    streakRepo,
		tolerance:     tolerance,
		now:           time.Now,
	}
}

// Execute computes the composite metrics for the workspace and period. A nil
// output with a nil error means the workspace does not exist and the caller
// should render its onboarding state.
func (uc *GetMetricsUseCase) Execute(
	ctx context.Context,
	input GetMetricsInput,
) (*GetMetricsOutput, error) {
	now := uc.now()

	period, err := uc.resolvePeriod(input.PeriodKey, now)
	if err != nil {
		return nil, err
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace: %w", err)
	}
	if workspace == nil {
		return nil, nil
	}

	facts := uc.loader.Load(ctx, input.WorkspaceID, period, now)
	indicators := CalculateIndicators(facts, now)

	capa1 := ScoreCapa1(facts, now)
	var capa2 *Capa2Result
	if capa1.State == valueobject.SemaphoreGreen {
		capa2 = ScoreCapa2(indicators)
	}

	output := &GetMetricsOutput{
		PeriodKey:  period.Key(),
		Indicators: indicators,
		Semaphore:  Merge(capa1, capa2),
		Target:     facts.Target,
	}

	if facts.LatestSnapshot != nil {
		snapshot := facts.LatestSnapshot
		tolerance := uc.tolerance.ToleranceFor(snapshot.Amount)
		output.Reconciliation = &ReconciliationView{
			LastRealBalance: snapshot.Amount,
			LastReportedAt:  snapshot.ReportedAt,
			Difference:      snapshot.Difference,
			Tolerance:       tolerance,
			WithinTolerance: !uc.tolerance.IsMaterial(snapshot.Difference, snapshot.Amount),
		}
	}

	streak, err := uc.streakRepo.Find(ctx, input.WorkspaceID, entity.StreakTypeReconciliation)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}
	if streak != nil {
		output.Streak = &StreakView{
			Count:          streak.Count,
			Record:         streak.Record,
			Badge:          streak.Badge(),
			LastReportedAt: streak.UpdatedAt,
		}
	}

	return output, nil
}

func (uc *GetMetricsUseCase) resolvePeriod(key string, now time.Time) (entity.Period, error) {
	if key == "" {
		return entity.CurrentPeriod(now), nil
	}
	period, err := entity.ParsePeriodKey(key)
	if err != nil {
		return entity.Period{}, domainerror.NewMetricsError(
			domainerror.ErrCodeInvalidPeriodKey,
			"period must be in YYYY-MM format",
			domainerror.ErrInvalidPeriodKey,
		)
	}
	return period, nil
}
