// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LegacyGoalModel represents the goals table, the single-row predecessor of
// monthly_targets. Only old workspaces still have rows here; the table is read
// as the last target-resolution fallback and never written.
type LegacyGoalModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WorkspaceID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	SalesGoal      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CollectionGoal decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LegacyGoalModel.
func (LegacyGoalModel) TableName() string {
	return "goals"
}
