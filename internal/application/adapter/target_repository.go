// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

// TargetRepository defines the interface for monthly target persistence.
type TargetRepository interface {
	// FindByPeriod retrieves the target saved for exactly the given period, or nil.
	FindByPeriod(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.MonthlyTarget, error)

	// FindLatestBefore retrieves the most recent target saved for any period
	// strictly before the given one, or nil.
	FindLatestBefore(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.MonthlyTarget, error)

	// FindLegacy retrieves the workspace's legacy single-table goal, or nil. The
	// legacy table predates per-month targets and only exists for old workspaces.
	FindLegacy(ctx context.Context, workspaceID uuid.UUID) (*entity.MonthlyTarget, error)

	// Upsert creates the target row for (workspace, year, month) or overwrites
	// the existing one.
	Upsert(ctx context.Context, target *entity.MonthlyTarget) error
}
