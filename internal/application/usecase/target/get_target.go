// Package target contains monthly-target use cases.
package target

import (
	"context"

	"github.com/google/uuid"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
)

// GetTargetInput represents the input for reading a resolved target.
type GetTargetInput struct {
	WorkspaceID uuid.UUID
	Period      entity.Period
}

// GetTargetOutput represents the resolved target for a period.
type GetTargetOutput struct {
	Target *entity.ResolvedTarget `json:"target"`
}

// GetTargetUseCase reads the effective target for a period, inheritance included.
type GetTargetUseCase struct {
	resolver *Resolver
}

// NewGetTargetUseCase creates a new GetTargetUseCase instance.
func NewGetTargetUseCase(resolver *Resolver) *GetTargetUseCase {
	return &GetTargetUseCase{
		resolver: resolver,
	}
}

// Execute resolves the target; it fails with a not-found error when no strategy hits.
func (uc *GetTargetUseCase) Execute(ctx context.Context, input GetTargetInput) (*GetTargetOutput, error) {
	resolved, err := uc.resolver.Resolve(ctx, input.WorkspaceID, input.Period)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeTargetNotFound,
			"no target resolves for period "+input.Period.Key(),
			domainerror.ErrTargetNotFound,
		)
	}
	return &GetTargetOutput{Target: resolved}, nil
}
