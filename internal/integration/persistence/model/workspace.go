// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

// WorkspaceModel represents the workspaces table in the database. Workspace
// rows are written by the external onboarding service; this service only reads.
type WorkspaceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	OwnerName  string    `gorm:"type:varchar(255);not null"`
	OwnerEmail string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the WorkspaceModel.
func (WorkspaceModel) TableName() string {
	return "workspaces"
}

// ToEntity converts a WorkspaceModel to a domain Workspace entity.
func (m *WorkspaceModel) ToEntity() *entity.Workspace {
	return &entity.Workspace{
		ID:         m.ID,
		Name:       m.Name,
		OwnerName:  m.OwnerName,
		OwnerEmail: m.OwnerEmail,
		CreatedAt:  m.CreatedAt,
	}
}
