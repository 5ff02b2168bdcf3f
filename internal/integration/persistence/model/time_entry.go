// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntryModel represents the time_entries table in the database.
type TimeEntryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProjectID   *uuid.UUID `gorm:"type:uuid;index"`
	Hours       float64    `gorm:"type:decimal(6,2);not null"`
	LoggedAt    time.Time  `gorm:"type:timestamptz;not null;index"`
	CreatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the TimeEntryModel.
func (TimeEntryModel) TableName() string {
	return "time_entries"
}
