// Package valueobject contains domain value objects for the Pulso system.
package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestToleranceConfig_ToleranceFor(t *testing.T) {
	config := DefaultToleranceConfig()

	tests := []struct {
		name    string
		balance decimal.Decimal
		want    decimal.Decimal
	}{
		{"small balance uses the absolute threshold", decimal.NewFromInt(100000), decimal.NewFromInt(50000)},
		{"two percent wins on large balances", decimal.NewFromInt(10000000), decimal.NewFromInt(200000)},
		{"crossover at 2.5 million", decimal.NewFromInt(2500000), decimal.NewFromInt(50000)},
		{"negative balance uses its magnitude", decimal.NewFromInt(-10000000), decimal.NewFromInt(200000)},
		{"zero balance keeps the absolute floor", decimal.Zero, decimal.NewFromInt(50000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.ToleranceFor(tt.balance); !got.Equal(tt.want) {
				t.Errorf("ToleranceFor(%s) = %s, want %s", tt.balance, got, tt.want)
			}
		})
	}
}

func TestToleranceConfig_IsMaterial(t *testing.T) {
	config := DefaultToleranceConfig()
	balance := decimal.NewFromInt(1000000) // tolerance max(50000, 20000) = 50000

	tests := []struct {
		name       string
		difference decimal.Decimal
		want       bool
	}{
		{"zero difference is within tolerance", decimal.Zero, false},
		{"below tolerance is within", decimal.NewFromInt(49999), false},
		{"exactly at tolerance is within", decimal.NewFromInt(50000), false},
		{"one over tolerance is material", decimal.NewFromInt(50001), true},
		{"negative difference uses magnitude", decimal.NewFromInt(-50001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.IsMaterial(tt.difference, balance); got != tt.want {
				t.Errorf("IsMaterial(%s) = %v, want %v", tt.difference, got, tt.want)
			}
		})
	}
}

func TestTheoreticalBalance(t *testing.T) {
	t.Run("reconstruction from a snapshot", func(t *testing.T) {
		got := TheoreticalBalance(
			decimal.NewFromInt(500000),
			decimal.NewFromInt(300000),
			decimal.NewFromInt(120000),
		)
		if !got.Equal(decimal.NewFromInt(680000)) {
			t.Errorf("expected 680000, got %s", got)
		}
	})

	t.Run("bootstrap without a snapshot", func(t *testing.T) {
		got := TheoreticalBalance(decimal.Zero, decimal.NewFromInt(900000), decimal.NewFromInt(400000))
		if !got.Equal(decimal.NewFromInt(500000)) {
			t.Errorf("expected 500000, got %s", got)
		}
	})

	t.Run("no intervening transactions keeps the last balance", func(t *testing.T) {
		last := decimal.NewFromInt(750000)
		got := TheoreticalBalance(last, decimal.Zero, decimal.Zero)
		if !got.Equal(last) {
			t.Errorf("expected %s, got %s", last, got)
		}
	})
}

func TestReconciliation_Difference(t *testing.T) {
	rec := Reconciliation{
		RealBalance: decimal.NewFromInt(1000000),
		Theoretical: decimal.NewFromInt(950000),
	}
	if got := rec.Difference(); !got.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected 50000, got %s", got)
	}
}
