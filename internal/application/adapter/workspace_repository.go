// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

// WorkspaceRepository defines read access to workspaces. Workspace lifecycle is
// owned by the external onboarding service.
type WorkspaceRepository interface {
	// FindByID retrieves a workspace, or nil when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error)
}
