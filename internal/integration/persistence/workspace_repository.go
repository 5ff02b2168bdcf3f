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

// workspaceRepository implements the adapter.WorkspaceRepository interface.
type workspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new workspace repository instance.
func NewWorkspaceRepository(db *gorm.DB) adapter.WorkspaceRepository {
	return &workspaceRepository{
		db: db,
	}
}

// FindByID retrieves a workspace, or nil when it does not exist.
func (r *workspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	var workspaceModel model.WorkspaceModel

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&workspaceModel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find workspace: %w", err)
	}

	return workspaceModel.ToEntity(), nil
}
