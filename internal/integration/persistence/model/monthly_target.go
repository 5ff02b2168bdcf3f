// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

// MonthlyTargetModel represents the monthly_targets table in the database.
// One row per (workspace, year, month).
type MonthlyTargetModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WorkspaceID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_target_workspace_period"`
	Year             int             `gorm:"not null;uniqueIndex:idx_target_workspace_period"`
	Month            int             `gorm:"not null;uniqueIndex:idx_target_workspace_period"`
	SalesTarget      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CollectionTarget decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MonthlyTargetModel.
func (MonthlyTargetModel) TableName() string {
	return "monthly_targets"
}

// ToEntity converts a MonthlyTargetModel to a domain MonthlyTarget entity.
func (m *MonthlyTargetModel) ToEntity() *entity.MonthlyTarget {
	return &entity.MonthlyTarget{
		ID:               m.ID,
		WorkspaceID:      m.WorkspaceID,
		Year:             m.Year,
		Month:            time.Month(m.Month),
		SalesTarget:      m.SalesTarget,
		CollectionTarget: m.CollectionTarget,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// TargetFromEntity creates a MonthlyTargetModel from a domain MonthlyTarget entity.
func TargetFromEntity(target *entity.MonthlyTarget) *MonthlyTargetModel {
	return &MonthlyTargetModel{
		ID:               target.ID,
		WorkspaceID:      target.WorkspaceID,
		Year:             target.Year,
		Month:            int(target.Month),
		SalesTarget:      target.SalesTarget,
		CollectionTarget: target.CollectionTarget,
		CreatedAt:        target.CreatedAt,
		UpdatedAt:        target.UpdatedAt,
	}
}
