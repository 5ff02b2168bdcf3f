// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	"github.com/pulso-finanzas/backend/internal/integration/persistence/model"
)

// targetRepository implements the adapter.TargetRepository interface.
type targetRepository struct {
	db *gorm.DB
}

// NewTargetRepository creates a new target repository instance.
func NewTargetRepository(db *gorm.DB) adapter.TargetRepository {
	return &targetRepository{
		db: db,
	}
}

// FindByPeriod retrieves the target saved for exactly the given period, or nil.
func (r *targetRepository) FindByPeriod(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.MonthlyTarget, error) {
	var targetModel model.MonthlyTargetModel

	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Where("year = ?", period.Year).
		Where("month = ?", int(period.Month)).
		First(&targetModel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find target by period: %w", err)
	}

	return targetModel.ToEntity(), nil
}

// FindLatestBefore retrieves the most recent target saved for any period
// strictly before the given one, or nil.
func (r *targetRepository) FindLatestBefore(ctx context.Context, workspaceID uuid.UUID, period entity.Period) (*entity.MonthlyTarget, error) {
	var targetModel model.MonthlyTargetModel

	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Where("year < ? OR (year = ? AND month < ?)", period.Year, period.Year, int(period.Month)).
		Order("year DESC, month DESC").
		First(&targetModel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest target before period: %w", err)
	}

	return targetModel.ToEntity(), nil
}

// FindLegacy retrieves the workspace's legacy single-table goal, or nil.
func (r *targetRepository) FindLegacy(ctx context.Context, workspaceID uuid.UUID) (*entity.MonthlyTarget, error) {
	var goalModel model.LegacyGoalModel

	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		First(&goalModel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find legacy goal: %w", err)
	}

	return &entity.MonthlyTarget{
		ID:               goalModel.ID,
		WorkspaceID:      goalModel.WorkspaceID,
		SalesTarget:      goalModel.SalesGoal,
		CollectionTarget: goalModel.CollectionGoal,
		CreatedAt:        goalModel.CreatedAt,
		UpdatedAt:        goalModel.UpdatedAt,
	}, nil
}

// Upsert creates the target row for (workspace, year, month) or overwrites the
// existing one.
func (r *targetRepository) Upsert(ctx context.Context, target *entity.MonthlyTarget) error {
	targetModel := model.TargetFromEntity(target)
	targetModel.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "workspace_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sales_target", "collection_target", "updated_at",
			}),
		}).
		Create(targetModel).Error

	if err != nil {
		return fmt.Errorf("failed to upsert target: %w", err)
	}

	return nil
}
