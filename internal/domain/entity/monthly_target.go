// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TargetSource says which resolver produced a resolved monthly target.
type TargetSource string

const (
	// TargetSourceExact means a target saved for exactly the requested period.
	TargetSourceExact TargetSource = "exact"
	// TargetSourceInherited means the most recent prior-period target was inherited.
	TargetSourceInherited TargetSource = "inherited"
	// TargetSourceLegacy means the value came from the legacy single-row goals table.
	TargetSourceLegacy TargetSource = "legacy"
)

// MonthlyTarget holds the sales and collection goals of a workspace for one
// calendar month. Inheritance across periods happens only at read time; saved
// rows are always exact.
type MonthlyTarget struct {
	ID               uuid.UUID       `json:"id"`
	WorkspaceID      uuid.UUID       `json:"workspace_id"`
	Year             int             `json:"year"`
	Month            time.Month      `json:"month"`
	SalesTarget      decimal.Decimal `json:"sales_target"`
	CollectionTarget decimal.Decimal `json:"collection_target"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NewMonthlyTarget creates a target row for the given workspace and period.
func NewMonthlyTarget(workspaceID uuid.UUID, period Period, salesTarget, collectionTarget decimal.Decimal) *MonthlyTarget {
	now := time.Now().UTC()
	return &MonthlyTarget{
		ID:               uuid.New(),
		WorkspaceID:      workspaceID,
		Year:             period.Year,
		Month:            period.Month,
		SalesTarget:      salesTarget,
		CollectionTarget: collectionTarget,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Period returns the period the target row belongs to.
func (t *MonthlyTarget) Period() Period {
	return Period{Year: t.Year, Month: t.Month}
}

// ResolvedTarget is a read-time view of the target for a period, annotated with
// the resolver that produced it.
type ResolvedTarget struct {
	SalesTarget      decimal.Decimal `json:"sales_target"`
	CollectionTarget decimal.Decimal `json:"collection_target"`
	Source           TargetSource    `json:"source"`
	SourcePeriod     Period          `json:"source_period"`
}
