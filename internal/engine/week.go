package engine

import (
	"time"

	"levelup/internal/storage"
)

// StartOfWeek returns Monday 00:00 of the week containing t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 … Sunday=6
	return day.AddDate(0, 0, -offset)
}

// WeeklyXP sums xpAwarded over completions recorded for the week containing
// now. Completions that were later undone still count; undo does not delete
// the record.
func WeeklyXP(agg *storage.Aggregate, now time.Time) int {
	weekStart := StartOfWeek(now)
	total := 0
	for i := range agg.Completions {
		// Instant comparison: the store round-trips timestamps through UTC.
		if agg.Completions[i].WeekStart.Equal(weekStart) {
			total += agg.Completions[i].XPAwarded
		}
	}
	return total
}
