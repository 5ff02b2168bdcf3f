// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

// ReconciliationStreakModel represents the reconciliation_streaks table in the
// database. At most one row per workspace per streak type.
type ReconciliationStreakModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_streak_workspace_type"`
	Type        string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_streak_workspace_type"`
	Count       int       `gorm:"not null;default:0"`
	Record      int       `gorm:"not null;default:0"`
	StreakStart time.Time `gorm:"type:timestamptz;not null"`
	// The streak state machine owns this timestamp; gorm must not touch it.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName returns the table name for the ReconciliationStreakModel.
func (ReconciliationStreakModel) TableName() string {
	return "reconciliation_streaks"
}

// ToEntity converts a ReconciliationStreakModel to a domain entity.
func (m *ReconciliationStreakModel) ToEntity() *entity.ReconciliationStreak {
	return &entity.ReconciliationStreak{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		Type:        entity.StreakType(m.Type),
		Count:       m.Count,
		Record:      m.Record,
		StreakStart: m.StreakStart,
		UpdatedAt:   m.UpdatedAt,
	}
}

// StreakFromEntity creates a ReconciliationStreakModel from a domain entity.
func StreakFromEntity(streak *entity.ReconciliationStreak) *ReconciliationStreakModel {
	return &ReconciliationStreakModel{
		ID:          streak.ID,
		WorkspaceID: streak.WorkspaceID,
		Type:        string(streak.Type),
		Count:       streak.Count,
		Record:      streak.Record,
		StreakStart: streak.StreakStart,
		UpdatedAt:   streak.UpdatedAt,
	}
}
