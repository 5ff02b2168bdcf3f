// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestReconciliationStreak_RegisterReport(t *testing.T) {
	workspaceID := uuid.New()
	// Monday, March 2nd 2026.
	monday := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("new streak starts at count 1 with record 1", func(t *testing.T) {
		streak := NewReconciliationStreak(workspaceID, StreakTypeReconciliation, monday)

		if streak.Count != 1 {
			t.Errorf("expected count 1, got %d", streak.Count)
		}
		if streak.Record != 1 {
			t.Errorf("expected record 1, got %d", streak.Record)
		}
		if !streak.StreakStart.Equal(monday) {
			t.Errorf("expected streak start %v, got %v", monday, streak.StreakStart)
		}
	})

	t.Run("same ISO week is a no-op", func(t *testing.T) {
		streak := NewReconciliationStreak(workspaceID, StreakTypeReconciliation, monday)
		sameWeek := monday.AddDate(0, 0, 3)

		if streak.RegisterReport(sameWeek) {
			t.Error("expected no change when reporting twice in the same ISO week")
		}
		if streak.Count != 1 {
			t.Errorf("expected count to stay 1, got %d", streak.Count)
		}
	})

	t.Run("next ISO week within the gap increments", func(t *testing.T) {
		streak := NewReconciliationStreak(workspaceID, StreakTypeReconciliation, monday)
		nextWeek := monday.AddDate(0, 0, 7)

		if !streak.RegisterReport(nextWeek) {
			t.Error("expected a change when reporting in the next ISO week")
		}
		if streak.Count != 2 {
			t.Errorf("expected count 2, got %d", streak.Count)
		}
		if streak.Record != 2 {
			t.Errorf("expected record 2, got %d", streak.Record)
		}
	})

	t.Run("gap over seven days breaks the streak but keeps the record", func(t *testing.T) {
		streak := NewReconciliationStreak(workspaceID, StreakTypeReconciliation, monday)
		current := monday
		for i := 0; i < 2; i++ {
			current = current.AddDate(0, 0, 7)
			streak.RegisterReport(current)
		}
		if streak.Count != 3 {
			t.Fatalf("expected count 3 before the break, got %d", streak.Count)
		}

		tenDaysLater := current.AddDate(0, 0, 10)
		if !streak.RegisterReport(tenDaysLater) {
			t.Error("expected a change when the streak breaks")
		}
		if streak.Count != 1 {
			t.Errorf("expected count reset to 1, got %d", streak.Count)
		}
		if streak.Record != 3 {
			t.Errorf("expected record preserved at 3, got %d", streak.Record)
		}
		if !streak.StreakStart.Equal(tenDaysLater) {
			t.Errorf("expected new streak start %v, got %v", tenDaysLater, streak.StreakStart)
		}
	})

	t.Run("gap of exactly seven days does not break", func(t *testing.T) {
		streak := NewReconciliationStreak(workspaceID, StreakTypeReconciliation, monday)
		exactlySeven := monday.Add(7 * 24 * time.Hour)

		streak.RegisterReport(exactlySeven)
		if streak.Count != 2 {
			t.Errorf("expected count 2 after an exactly-seven-day gap, got %d", streak.Count)
		}
	})

	t.Run("year boundary weeks compare as tuples", func(t *testing.T) {
		// Wednesday Dec 30 2026 and Monday Jan 4 2027 are ISO weeks 53 and 1.
		endOfYear := time.Date(2026, 12, 30, 12, 0, 0, 0, time.UTC)
		startOfYear := time.Date(2027, 1, 4, 12, 0, 0, 0, time.UTC)

		streak := NewReconciliationStreak(workspaceID, StreakTypeReconciliation, endOfYear)
		if !streak.RegisterReport(startOfYear) {
			t.Error("expected the first week of the new year to count as a new week")
		}
		if streak.Count != 2 {
			t.Errorf("expected count 2 across the year boundary, got %d", streak.Count)
		}
	})

	t.Run("record never decreases over many cycles", func(t *testing.T) {
		streak := NewReconciliationStreak(workspaceID, StreakTypeReconciliation, monday)
		current := monday
		for i := 0; i < 4; i++ {
			current = current.AddDate(0, 0, 7)
			streak.RegisterReport(current)
		}
		record := streak.Record

		// Break and rebuild a shorter streak.
		current = current.AddDate(0, 0, 15)
		streak.RegisterReport(current)
		current = current.AddDate(0, 0, 7)
		streak.RegisterReport(current)

		if streak.Record < record {
			t.Errorf("record decreased from %d to %d", record, streak.Record)
		}
	})
}

func TestBadgeForCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  StreakBadge
	}{
		{"below bronze", 3, StreakBadgeNone},
		{"bronze at four", 4, StreakBadgeBronze},
		{"silver at twelve", 12, StreakBadgeSilver},
		{"gold at twenty-six", 26, StreakBadgeGold},
		{"trophy at fifty-two", 52, StreakBadgeTrophy},
		{"trophy above fifty-two", 80, StreakBadgeTrophy},
		{"zero", 0, StreakBadgeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BadgeForCount(tt.count); got != tt.want {
				t.Errorf("BadgeForCount(%d) = %q, want %q", tt.count, got, tt.want)
			}
		})
	}
}
