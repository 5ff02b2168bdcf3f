// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StreakType identifies what kind of weekly habit a streak row tracks.
type StreakType string

// StreakTypeReconciliation tracks "a bank balance was reported this calendar week".
const StreakTypeReconciliation StreakType = "conciliacion"

// streakBreakGap is the gap after which a streak is considered broken. The gap
// check is strict (>), the tolerance checks elsewhere are inclusive (<=).
const streakBreakGap = 7 * 24 * time.Hour

// StreakBadge is a milestone badge derived from the current streak count.
type StreakBadge string

const (
	StreakBadgeNone   StreakBadge = ""
	StreakBadgeBronze StreakBadge = "🥉"
	StreakBadgeSilver StreakBadge = "🥈"
	StreakBadgeGold   StreakBadge = "🥇"
	StreakBadgeTrophy StreakBadge = "🏆"
)

// ReconciliationStreak counts consecutive calendar weeks in which a workspace
// reconciled its bank balance at least once. One row per workspace per type.
type ReconciliationStreak struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Type        StreakType
	Count       int
	Record      int
	StreakStart time.Time
	UpdatedAt   time.Time
}

// NewReconciliationStreak starts a fresh streak at the given instant.
func NewReconciliationStreak(workspaceID uuid.UUID, streakType StreakType, now time.Time) *ReconciliationStreak {
	return &ReconciliationStreak{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Type:        streakType,
		Count:       1,
		Record:      1,
		StreakStart: now,
		UpdatedAt:   now,
	}
}

// RegisterReport advances the streak state machine for a balance report at the
// given instant and returns whether the stored row changed.
//
//   - gap since last update > 7 days: streak broken; count resets to 1 and a new
//     streak start is set, but the record never decreases.
//   - gap <= 7 days, same ISO week as the last update: already counted, no-op.
//   - gap <= 7 days, different ISO week: count increments and may set a new record.
func (s *ReconciliationStreak) RegisterReport(now time.Time) bool {
	gap := now.Sub(s.UpdatedAt)
	if gap > streakBreakGap {
		s.Count = 1
		s.StreakStart = now
		s.UpdatedAt = now
		return true
	}

	lastYear, lastWeek := isoWeek(s.UpdatedAt)
	curYear, curWeek := isoWeek(now)
	if lastYear == curYear && lastWeek == curWeek {
		return false
	}

	s.Count++
	if s.Count > s.Record {
		s.Record = s.Count
	}
	s.UpdatedAt = now
	return true
}

// Badge returns the milestone badge for the current count.
func (s *ReconciliationStreak) Badge() StreakBadge {
	return BadgeForCount(s.Count)
}

// BadgeForCount maps a consecutive-week count to its milestone badge.
func BadgeForCount(count int) StreakBadge {
	switch {
	case count >= 52:
		return StreakBadgeTrophy
	case count >= 26:
		return StreakBadgeGold
	case count >= 12:
		return StreakBadgeSilver
	case count >= 4:
		return StreakBadgeBronze
	default:
		return StreakBadgeNone
	}
}

// isoWeek returns the ISO-8601 week as a (year, week) tuple. Comparing the full
// tuple avoids year-boundary bugs around week 1 and week 52/53.
func isoWeek(t time.Time) (int, int) {
	return t.ISOWeek()
}
