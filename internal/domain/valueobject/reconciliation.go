// Package valueobject contains domain value objects for the Pulso system.
package valueobject

import (
	"github.com/shopspring/decimal"
)

// ToleranceConfig defines when a reconciliation difference is material: the
// effective tolerance is whichever is greater of the absolute threshold and the
// percentage of the reported balance. Boundaries are inclusive, a difference
// exactly at the tolerance is still within it.
type ToleranceConfig struct {
	AbsoluteThreshold decimal.Decimal
	BalancePercent    decimal.Decimal // 0.02 = 2%
}

// DefaultToleranceConfig returns the default reconciliation tolerance.
func DefaultToleranceConfig() ToleranceConfig {
	return ToleranceConfig{
		AbsoluteThreshold: decimal.NewFromInt(50000),
		BalancePercent:    decimal.NewFromFloat(0.02),
	}
}

// ToleranceFor returns the effective tolerance for a reported balance.
func (c ToleranceConfig) ToleranceFor(balance decimal.Decimal) decimal.Decimal {
	percent := balance.Abs().Mul(c.BalancePercent)
	if percent.GreaterThan(c.AbsoluteThreshold) {
		return percent
	}
	return c.AbsoluteThreshold
}

// IsMaterial reports whether a reconciliation difference exceeds the tolerance
// for the given balance.
func (c ToleranceConfig) IsMaterial(difference, balance decimal.Decimal) bool {
	return difference.Abs().GreaterThan(c.ToleranceFor(balance))
}

// Reconciliation pairs a reported real balance with the balance the recorded
// transactions say it should be.
type Reconciliation struct {
	RealBalance decimal.Decimal
	Theoretical decimal.Decimal
}

// Difference returns real minus theoretical, signed.
func (r Reconciliation) Difference() decimal.Decimal {
	return r.RealBalance.Sub(r.Theoretical)
}

// TheoreticalBalance reconstructs today's balance from the last known real
// balance plus every collection and minus every expense posted after it. With
// no snapshot yet the caller passes a zero lastReal and all-time sums, which
// yields the bootstrap value collections − expenses.
func TheoreticalBalance(lastReal, collectionsSince, expensesSince decimal.Decimal) decimal.Decimal {
	return lastReal.Add(collectionsSince).Sub(expensesSince)
}
