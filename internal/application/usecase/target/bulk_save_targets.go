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

// maxBulkTargets caps a bulk save at one year of months.
const maxBulkTargets = 12

// BulkTargetItem is one month inside a bulk save.
type BulkTargetItem struct {
	Period           entity.Period
	SalesTarget      decimal.Decimal
	CollectionTarget *decimal.Decimal
}

// BulkSaveTargetsInput represents the input for saving several monthly targets.
type BulkSaveTargetsInput struct {
	WorkspaceID uuid.UUID
	Items       []BulkTargetItem
}

// BulkSaveTargetsOutput represents the output of a bulk save.
type BulkSaveTargetsOutput struct {
	Saved int `json:"saved"`
}

// BulkSaveTargetsUseCase handles upserting up to twelve monthly targets at once.
type BulkSaveTargetsUseCase struct {
	targetRepo adapter.TargetRepository
}

// NewBulkSaveTargetsUseCase creates a new BulkSaveTargetsUseCase instance.
func NewBulkSaveTargetsUseCase(targetRepo adapter.TargetRepository) *BulkSaveTargetsUseCase {
	return &BulkSaveTargetsUseCase{
		targetRepo: targetRepo,
	}
}

// Execute validates every item before writing any of them, then upserts all.
func (uc *BulkSaveTargetsUseCase) Execute(ctx context.Context, input BulkSaveTargetsInput) (*BulkSaveTargetsOutput, error) {
	if len(input.Items) > maxBulkTargets {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeTooManyTargets,
			"bulk save accepts at most twelve targets",
			domainerror.ErrTooManyTargets,
		)
	}

	rows := make([]*entity.MonthlyTarget, 0, len(input.Items))
	for _, item := range input.Items {
		collectionTarget, err := validateTargets(item.SalesTarget, item.CollectionTarget)
		if err != nil {
			return nil, err
		}
		rows = append(rows, entity.NewMonthlyTarget(input.WorkspaceID, item.Period, item.SalesTarget, collectionTarget))
	}

	for _, row := range rows {
		if err := uc.targetRepo.Upsert(ctx, row); err != nil {
			return nil, fmt.Errorf("failed to save target for %s: %w", row.Period().Key(), err)
		}
	}

	return &BulkSaveTargetsOutput{Saved: len(rows)}, nil
}
