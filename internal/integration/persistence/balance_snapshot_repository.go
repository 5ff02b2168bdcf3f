// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	"github.com/pulso-finanzas/backend/internal/integration/persistence/model"
)

// balanceSnapshotRepository implements the adapter.BalanceSnapshotRepository interface.
type balanceSnapshotRepository struct {
	db *gorm.DB
}

// NewBalanceSnapshotRepository creates a new balance snapshot repository instance.
func NewBalanceSnapshotRepository(db *gorm.DB) adapter.BalanceSnapshotRepository {
	return &balanceSnapshotRepository{
		db: db,
	}
}

// Create inserts a new balance snapshot.
func (r *balanceSnapshotRepository) Create(ctx context.Context, snapshot *entity.BalanceSnapshot) error {
	snapshotModel := model.BalanceSnapshotFromEntity(snapshot)
	if err := r.db.WithContext(ctx).Create(snapshotModel).Error; err != nil {
		return fmt.Errorf("failed to create balance snapshot: %w", err)
	}
	return nil
}

// FindLatest retrieves the most recent snapshot by reported date, or nil when
// the workspace has never recorded a balance.
func (r *balanceSnapshotRepository) FindLatest(ctx context.Context, workspaceID uuid.UUID) (*entity.BalanceSnapshot, error) {
	var snapshotModel model.BalanceSnapshotModel

	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("reported_at DESC").
		First(&snapshotModel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest balance snapshot: %w", err)
	}

	return snapshotModel.ToEntity(), nil
}

// FindByWorkspace retrieves all snapshots for a workspace, most recent first.
func (r *balanceSnapshotRepository) FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entity.BalanceSnapshot, error) {
	var models []model.BalanceSnapshotModel

	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("reported_at DESC").
		Find(&models).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find balance snapshots: %w", err)
	}

	snapshots := make([]*entity.BalanceSnapshot, len(models))
	for i, m := range models {
		snapshots[i] = m.ToEntity()
	}

	return snapshots, nil
}
