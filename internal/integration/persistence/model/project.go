// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatusClosed marks projects whose figures feed the historical
// contribution margin.
const ProjectStatusClosed = "cerrado"

// ProjectModel represents the projects table in the database.
type ProjectModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WorkspaceID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Status          string          `gorm:"type:varchar(20);not null"`
	TotalBudget     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AccumulatedCost decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}
