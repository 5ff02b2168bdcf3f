// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpportunityStatusActive marks opportunities still in play; any other status
// is out of the freshness check.
const OpportunityStatusActive = "activa"

// OpportunityModel represents the opportunities table in the database.
type OpportunityModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2)"`
	Status      string          `gorm:"type:varchar(20);not null;default:'activa'"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the OpportunityModel.
func (OpportunityModel) TableName() string {
	return "opportunities"
}
