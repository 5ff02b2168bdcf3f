// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixed-expense statuses as stored.
const (
	FixedExpenseStatusDraft     = "borrador"
	FixedExpenseStatusConfirmed = "confirmado"
)

// FixedExpenseModel represents the fixed_expenses table in the database.
type FixedExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WorkspaceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'borrador'"`
	ConfirmedAt   *time.Time      `gorm:"type:timestamptz"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedExpenseModel.
func (FixedExpenseModel) TableName() string {
	return "fixed_expenses"
}
