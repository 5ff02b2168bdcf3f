// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel represents the clients table in the database. A client's fiscal
// data is complete when both tax id and regime are filled.
type ClientModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	TaxID       string    `gorm:"type:varchar(50)"`
	TaxRegime   string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}
