// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
)

// BalanceSnapshotModel represents the balance_snapshots table in the database.
// Rows are append-only.
type BalanceSnapshotModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Theoretical decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Difference  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Note        string          `gorm:"type:text"`
	ReportedAt  time.Time       `gorm:"type:timestamptz;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BalanceSnapshotModel.
func (BalanceSnapshotModel) TableName() string {
	return "balance_snapshots"
}

// ToEntity converts a BalanceSnapshotModel to a domain BalanceSnapshot entity.
func (m *BalanceSnapshotModel) ToEntity() *entity.BalanceSnapshot {
	return &entity.BalanceSnapshot{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		Amount:      m.Amount,
		Theoretical: m.Theoretical,
		Difference:  m.Difference,
		Note:        m.Note,
		ReportedAt:  m.ReportedAt,
		CreatedAt:   m.CreatedAt,
	}
}

// BalanceSnapshotFromEntity creates a BalanceSnapshotModel from a domain entity.
func BalanceSnapshotFromEntity(snapshot *entity.BalanceSnapshot) *BalanceSnapshotModel {
	return &BalanceSnapshotModel{
		ID:          snapshot.ID,
		WorkspaceID: snapshot.WorkspaceID,
		Amount:      snapshot.Amount,
		Theoretical: snapshot.Theoretical,
		Difference:  snapshot.Difference,
		Note:        snapshot.Note,
		ReportedAt:  snapshot.ReportedAt,
		CreatedAt:   snapshot.CreatedAt,
	}
}
