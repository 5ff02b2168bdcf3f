// Package insight contains the AI narrative use case.
package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/application/usecase/metrics"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
)

// GenerateInsightInput represents the input for generating a period insight.
type GenerateInsightInput struct {
	WorkspaceID uuid.UUID
	PeriodKey   string
}

// GenerateInsightOutput represents the AI narrative for a period.
type GenerateInsightOutput struct {
	PeriodKey       string   `json:"period"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// GenerateInsightUseCase narrates an already-computed metrics result through
// the AI service.
type GenerateInsightUseCase struct {
	getMetrics     *metrics.GetMetricsUseCase
	workspaceRepo  adapter.WorkspaceRepository
	insightService adapter.InsightService
}

// NewGenerateInsightUseCase creates a new GenerateInsightUseCase instance.
func NewGenerateInsightUseCase(
	getMetrics *metrics.GetMetricsUseCase,
	workspaceRepo adapter.WorkspaceRepository,
	insightService adapter.InsightService,
) *GenerateInsightUseCase {
	return &GenerateInsightUseCase{
		getMetrics:     getMetrics,
		workspaceRepo:  workspaceRepo,
		insightService: insightService,
	}
}

// Execute computes the period metrics and asks the AI service for a narrative.
func (uc *GenerateInsightUseCase) Execute(
	ctx context.Context,
	input GenerateInsightInput,
) (*GenerateInsightOutput, error) {
	if !uc.insightService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightUnavailable,
			"AI insight service is not configured",
			domainerror.ErrInsightUnavailable,
		)
	}

	result, err := uc.getMetrics.Execute(ctx, metrics.GetMetricsInput{
		WorkspaceID: input.WorkspaceID,
		PeriodKey:   input.PeriodKey,
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, domainerror.NewMetricsError(
			domainerror.ErrCodeWorkspaceNotFound,
			"workspace not found",
			domainerror.ErrWorkspaceNotFound,
		)
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, input.WorkspaceID)
	if err != nil || workspace == nil {
		return nil, fmt.Errorf("failed to resolve workspace: %w", err)
	}

	request := buildRequest(workspace.Name, result)
	narrative, err := uc.insightService.GenerateSummary(ctx, request)
	if err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightGenerationFailed,
			"failed to generate insight",
			err,
		)
	}

	return &GenerateInsightOutput{
		PeriodKey:       result.PeriodKey,
		Summary:         narrative.Summary,
		Recommendations: narrative.Recommendations,
	}, nil
}

// buildRequest flattens the composite metrics into the preformatted figures
// the AI adapter expects.
func buildRequest(workspaceName string, result *metrics.GetMetricsOutput) *adapter.InsightRequest {
	pending := make([]string, 0, len(result.Semaphore.Capa1.PendingItems))
	for _, item := range result.Semaphore.Capa1.PendingItems {
		pending = append(pending, item.Label)
	}

	request := &adapter.InsightRequest{
		WorkspaceName:  workspaceName,
		PeriodKey:      result.PeriodKey,
		SemaphoreState: string(result.Semaphore.FinalState),
		Capa1Score:     result.Semaphore.Capa1.Score,
		PendingItems:   pending,
		Collections:    result.Indicators.CollectionsThisPeriod.StringFixed(2),
		Expenses:       result.Indicators.ExpensesThisPeriod.StringFixed(2),
		Profit:         result.Indicators.Profit.StringFixed(2),
		Receivables:    result.Indicators.Receivables.StringFixed(2),
		RunwayMonths:   result.Indicators.RunwayMonths,
		BreakEvenPoint: result.Indicators.BreakEvenPoint.StringFixed(2),
	}
	if result.Target != nil {
		request.SalesTarget = result.Target.SalesTarget.StringFixed(2)
	}
	return request
}
