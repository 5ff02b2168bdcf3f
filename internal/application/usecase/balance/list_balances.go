package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
)

// ListBalancesInput represents the input for listing balance snapshots.
type ListBalancesInput struct {
	WorkspaceID uuid.UUID
}

// BalanceItem is one snapshot in the history, most recent first.
type BalanceItem struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Theoretical decimal.Decimal `json:"theoretical_balance"`
	Difference  decimal.Decimal `json:"difference"`
	Note        string          `json:"note,omitempty"`
	ReportedAt  time.Time       `json:"reported_at"`
}

// ListBalancesOutput represents the snapshot history of a workspace.
type ListBalancesOutput struct {
	Balances []BalanceItem `json:"balances"`
	Total    int           `json:"total"`
}

// ListBalancesUseCase handles listing the balance snapshot history.
type ListBalancesUseCase struct {
	snapshotRepo adapter.BalanceSnapshotRepository
}

// NewListBalancesUseCase creates a new ListBalancesUseCase instance.
func NewListBalancesUseCase(snapshotRepo adapter.BalanceSnapshotRepository) *ListBalancesUseCase {
	return &ListBalancesUseCase{
		snapshotRepo: snapshotRepo,
	}
}

// Execute retrieves every snapshot of the workspace, most recent first.
func (uc *ListBalancesUseCase) Execute(
	ctx context.Context,
	input ListBalancesInput,
) (*ListBalancesOutput, error) {
	snapshots, err := uc.snapshotRepo.FindByWorkspace(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance snapshots: %w", err)
	}

	items := make([]BalanceItem, 0, len(snapshots))
	for _, snapshot := range snapshots {
		items = append(items, BalanceItem{
			ID:          snapshot.ID,
			Amount:      snapshot.Amount,
			Theoretical: snapshot.Theoretical,
			Difference:  snapshot.Difference,
			Note:        snapshot.Note,
			ReportedAt:  snapshot.ReportedAt,
		})
	}

	return &ListBalancesOutput{
		Balances: items,
		Total:    len(items),
	}, nil
}
