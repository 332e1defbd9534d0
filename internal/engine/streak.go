package engine

import (
	"math"
	"time"
)

const (
	// MaxStreakBonusPercent caps the streak XP bonus.
	MaxStreakBonusPercent = 30

	// GraceWindow is how long after a completion the streak still counts as
	// alive: a 24h day plus a 4h grace period.
	GraceWindow = 28 * time.Hour
)

// StreakBonusPercent returns the XP bonus percentage for a streak count:
// 2% per day, capped at 30%.
func StreakBonusPercent(streakCount int) int {
	if streakCount <= 0 {
		return 0
	}
	bonus := streakCount * 2
	if bonus > MaxStreakBonusPercent {
		return MaxStreakBonusPercent
	}
	return bonus
}

// ApplyStreakBonus returns baseXP scaled by the bonus percentage, rounded to
// the nearest integer.
func ApplyStreakBonus(baseXP, bonusPercent int) int {
	return int(math.Round(float64(baseXP) * (1 + float64(bonusPercent)/100)))
}

// GraceActive reports whether now is still within the grace window of the
// last completion.
func GraceActive(lastCompletionAt, now time.Time) bool {
	return now.Sub(lastCompletionAt) <= GraceWindow
}

// NextStreak computes the streak count after a completion at now.
//
// Transitions compare calendar dates, not instants: a second completion on
// the same day leaves the streak alone, a completion on the next calendar day
// increments it, and a completion past midnight but inside the grace window
// still increments it. Anything else resets to 1.
func NextStreak(current int, lastCompletionAt *time.Time, now time.Time) int {
	if lastCompletionAt == nil {
		return 1
	}
	lastDay := startOfDay(*lastCompletionAt)
	today := startOfDay(now)
	switch {
	case lastDay.Equal(today):
		return current
	case lastDay.Equal(today.AddDate(0, 0, -1)):
		return current + 1
	case GraceActive(*lastCompletionAt, now):
		return current + 1
	default:
		return 1
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
