// Package target contains monthly-target use cases.
package target

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
)

// defaultCollectionRatio is applied when no collection target is given: the
// collection goal defaults to 80% of the sales goal.
var defaultCollectionRatio = decimal.NewFromFloat(0.8)

// SaveTargetInput represents the input for saving a monthly target.
type SaveTargetInput struct {
	WorkspaceID      uuid.UUID
	Period           entity.Period
	SalesTarget      decimal.Decimal
	CollectionTarget *decimal.Decimal
}

// SaveTargetOutput represents the output of saving a monthly target.
type SaveTargetOutput struct {
	Target *entity.MonthlyTarget `json:"target"`
}

// SaveTargetUseCase handles upserting the target of a single month. Writes are
// always exact; inheritance is a read-time concern only.
type SaveTargetUseCase struct {
	targetRepo adapter.TargetRepository
}

// NewSaveTargetUseCase creates a new SaveTargetUseCase instance.
func NewSaveTargetUseCase(targetRepo adapter.TargetRepository) *SaveTargetUseCase {
	return &SaveTargetUseCase{
		targetRepo: targetRepo,
	}
}

// Execute validates and upserts the monthly target.
func (uc *SaveTargetUseCase) Execute(ctx context.Context, input SaveTargetInput) (*SaveTargetOutput, error) {
	collectionTarget, err := validateTargets(input.SalesTarget, input.CollectionTarget)
	if err != nil {
		return nil, err
	}

	row := entity.NewMonthlyTarget(input.WorkspaceID, input.Period, input.SalesTarget, collectionTarget)
	if err := uc.targetRepo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to save target: %w", err)
	}

	return &SaveTargetOutput{Target: row}, nil
}

// validateTargets checks the amounts and applies the collection default.
func validateTargets(salesTarget decimal.Decimal, collectionTarget *decimal.Decimal) (decimal.Decimal, error) {
	if salesTarget.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domainerror.NewTargetError(
			domainerror.ErrCodeInvalidSalesTarget,
			"sales target must be greater than zero",
			domainerror.ErrInvalidSalesTarget,
		)
	}

	if collectionTarget == nil {
		return salesTarget.Mul(defaultCollectionRatio), nil
	}
	if collectionTarget.IsNegative() {
		return decimal.Zero, domainerror.NewTargetError(
			domainerror.ErrCodeInvalidCollectionTarget,
			"collection target must not be negative",
			domainerror.ErrInvalidCollectionTarget,
		)
	}
	return *collectionTarget, nil
}
