// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceSnapshot is a point-in-time declaration of the real bank balance of a
// workspace. Snapshots are append-only: they are created by the record-balance
// operation and never updated or deleted. The theoretical balance and the signed
// difference against it are computed at write time and stored alongside.
type BalanceSnapshot struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Amount      decimal.Decimal
	Theoretical decimal.Decimal
	Difference  decimal.Decimal
	Note        string
	ReportedAt  time.Time
	CreatedAt   time.Time
}

// NewBalanceSnapshot creates a snapshot for the given workspace and reported amount.
func NewBalanceSnapshot(workspaceID uuid.UUID, amount, theoretical decimal.Decimal, note string, reportedAt time.Time) *BalanceSnapshot {
	return &BalanceSnapshot{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Amount:      amount,
		Theoretical: theoretical,
		Difference:  amount.Sub(theoretical),
		Note:        note,
		ReportedAt:  reportedAt,
		CreatedAt:   time.Now().UTC(),
	}
}

// Age returns how long ago the snapshot was reported.
func (s *BalanceSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.ReportedAt)
}
