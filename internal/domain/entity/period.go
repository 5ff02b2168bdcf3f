// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// Period identifies one calendar month of one workspace's activity. It is the
// unit of aggregation for every metric the engine produces.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodKeyLayout is the wire format for period keys ("2026-03").
const PeriodKeyLayout = "2006-01"

// NewPeriod creates a Period for the given year and month.
func NewPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

// CurrentPeriod returns the period containing the given instant.
func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: now.Month()}
}

// ParsePeriodKey parses a "YYYY-MM" key into a Period.
func ParsePeriodKey(key string) (Period, error) {
	t, err := time.Parse(PeriodKeyLayout, key)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period key %q: %w", key, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Key returns the "YYYY-MM" representation of the period.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// MarshalJSON renders the period as its "YYYY-MM" key.
func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", p.Key())), nil
}

// UnmarshalJSON parses a quoted "YYYY-MM" key.
func (p *Period) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err != nil {
		return err
	}
	parsed, err := ParsePeriodKey(key)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Start returns the first instant of the period (day 1, midnight UTC).
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the exclusive end of the period (first instant of the next month).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Previous returns the immediately preceding period.
func (p Period) Previous() Period {
	start := p.Start().AddDate(0, -1, 0)
	return Period{Year: start.Year(), Month: start.Month()}
}

// DaysInMonth returns the number of calendar days in the period.
func (p Period) DaysInMonth() int {
	return p.End().AddDate(0, 0, -1).Day()
}

// Contains reports whether the instant falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start()) && t.Before(p.End())
}

// IsCurrent reports whether the period is the in-progress one at the given instant.
// Pro-rata goal pacing only applies to the current period.
func (p Period) IsCurrent(now time.Time) bool {
	return p.Year == now.Year() && p.Month == now.Month()
}

// DayCursor returns the day-of-month to pace against: the wall-clock day for the
// in-progress period, the full month for any closed period.
func (p Period) DayCursor(now time.Time) int {
	if p.IsCurrent(now) {
		return now.Day()
	}
	return p.DaysInMonth()
}
