// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	"github.com/pulso-finanzas/backend/internal/integration/persistence/model"
)

// streakRepository implements the adapter.StreakRepository interface.
type streakRepository struct {
	db *gorm.DB
}

// NewStreakRepository creates a new streak repository instance.
func NewStreakRepository(db *gorm.DB) adapter.StreakRepository {
	return &streakRepository{
		db: db,
	}
}

// Find retrieves the streak row for a workspace and type, or nil when none exists.
func (r *streakRepository) Find(ctx context.Context, workspaceID uuid.UUID, streakType entity.StreakType) (*entity.ReconciliationStreak, error) {
	var streakModel model.ReconciliationStreakModel

	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Where("type = ?", string(streakType)).
		First(&streakModel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find streak: %w", err)
	}

	return streakModel.ToEntity(), nil
}

// Save creates the streak row or updates the existing one in place.
func (r *streakRepository) Save(ctx context.Context, streak *entity.ReconciliationStreak) error {
	streakModel := model.StreakFromEntity(streak)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "workspace_id"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"count", "record", "streak_start", "updated_at",
			}),
		}).
		Create(streakModel).Error

	if err != nil {
		return fmt.Errorf("failed to save streak: %w", err)
	}

	return nil
}
