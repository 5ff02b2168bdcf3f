// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"
)

func TestParsePeriodKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    Period
		wantErr bool
	}{
		{"valid key", "2026-03", Period{Year: 2026, Month: time.March}, false},
		{"valid december", "2025-12", Period{Year: 2025, Month: time.December}, false},
		{"missing month", "2026", Period{}, true},
		{"month out of range", "2026-13", Period{}, true},
		{"not a date", "hola", Period{}, true},
		{"empty", "", Period{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriodKey(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for key %q", tt.key)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePeriodKey(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestPeriod_KeyRoundTrip(t *testing.T) {
	period := NewPeriod(2026, time.August)
	parsed, err := ParsePeriodKey(period.Key())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != period {
		t.Errorf("round trip changed the period: %+v != %+v", parsed, period)
	}
}

func TestPeriod_Bounds(t *testing.T) {
	period := NewPeriod(2026, time.March)

	if got := period.Start(); !got.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", got)
	}
	if got := period.End(); !got.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end: %v", got)
	}

	t.Run("end is exclusive", func(t *testing.T) {
		if period.Contains(period.End()) {
			t.Error("expected the end instant to fall outside the period")
		}
		lastInstant := period.End().Add(-time.Nanosecond)
		if !period.Contains(lastInstant) {
			t.Error("expected the last instant of the month to fall inside the period")
		}
	})
}

func TestPeriod_Previous(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		want   Period
	}{
		{"mid year", NewPeriod(2026, time.June), NewPeriod(2026, time.May)},
		{"january wraps to december", NewPeriod(2026, time.January), NewPeriod(2025, time.December)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.period.Previous(); got != tt.want {
				t.Errorf("Previous() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPeriod_DaysInMonth(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		want   int
	}{
		{"march", NewPeriod(2026, time.March), 31},
		{"april", NewPeriod(2026, time.April), 30},
		{"february", NewPeriod(2026, time.February), 28},
		{"leap february", NewPeriod(2028, time.February), 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.period.DaysInMonth(); got != tt.want {
				t.Errorf("DaysInMonth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPeriod_DayCursor(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("current period uses the wall-clock day", func(t *testing.T) {
		period := CurrentPeriod(now)
		if got := period.DayCursor(now); got != 15 {
			t.Errorf("DayCursor() = %d, want 15", got)
		}
	})

	t.Run("closed period uses the full month", func(t *testing.T) {
		period := NewPeriod(2026, time.January)
		if got := period.DayCursor(now); got != 31 {
			t.Errorf("DayCursor() = %d, want 31", got)
		}
	})
}
