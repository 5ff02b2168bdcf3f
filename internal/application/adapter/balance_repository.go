// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

// BalanceSnapshotRepository defines the interface for balance snapshot persistence.
// Snapshots are append-only; there is no update or delete.
type BalanceSnapshotRepository interface {
	// Create inserts a new balance snapshot.
	Create(ctx context.Context, snapshot *entity.BalanceSnapshot) error

	// FindLatest retrieves the most recent snapshot by reported date, or nil when
	// the workspace has never recorded a balance.
	FindLatest(ctx context.Context, workspaceID uuid.UUID) (*entity.BalanceSnapshot, error)

	// FindByWorkspace retrieves all snapshots for a workspace, most recent first.
	FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entity.BalanceSnapshot, error)
}

// StreakRepository defines the interface for reconciliation streak persistence.
// There is at most one row per workspace per streak type.
type StreakRepository interface {
	// Find retrieves the streak row for a workspace and type, or nil when none exists.
	Find(ctx context.Context, workspaceID uuid.UUID, streakType entity.StreakType) (*entity.ReconciliationStreak, error)

	// Save creates the streak row or updates the existing one in place.
	Save(ctx context.Context, streak *entity.ReconciliationStreak) error
}
