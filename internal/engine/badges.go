package engine

import (
	"time"

	"levelup/internal/storage"
)

// Badge is a catalog entry. The catalog is static: seven entries with stable
// ids, never loaded from storage.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// Catalog lists every badge in evaluation order.
var Catalog = []Badge{
	{ID: "first_steps", Name: "First Steps", Description: "Complete your first quest", Icon: "🎯"},
	{ID: "week_warrior", Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥"},
	{ID: "level_5", Name: "Rising Star", Description: "Reach level 5", Icon: "⭐"},
	{ID: "level_10", Name: "Champion", Description: "Reach level 10", Icon: "👑"},
	{ID: "skill_master", Name: "Skill Master", Description: "Max out any skill to level 10", Icon: "🏅"},
	{ID: "perfectionist", Name: "Perfectionist", Description: "100% daily completion for 7 days", Icon: "✨"},
	{ID: "century_club", Name: "Century Club", Description: "Complete 100 total quests", Icon: "📈"},
}

// BadgeByID returns the catalog entry for id, or nil.
func BadgeByID(id string) *Badge {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// badgeRules maps badge ids to their earn conditions over an aggregate
// snapshot. "perfectionist" has no rule yet: the catalog entry exists but
// nothing awards it.
var badgeRules = []struct {
	id     string
	earned func(agg *storage.Aggregate) bool
}{
	{"first_steps", func(agg *storage.Aggregate) bool {
		return len(agg.Completions) >= 1
	}},
	{"week_warrior", func(agg *storage.Aggregate) bool {
		return agg.User.StreakCount >= 7
	}},
	{"level_5", func(agg *storage.Aggregate) bool {
		return agg.User.Level >= 5
	}},
	{"level_10", func(agg *storage.Aggregate) bool {
		return agg.User.Level >= 10
	}},
	{"skill_master", func(agg *storage.Aggregate) bool {
		for i := range agg.Skills {
			if agg.Skills[i].Level >= 10 {
				return true
			}
		}
		return false
	}},
	{"century_club", func(agg *storage.Aggregate) bool {
		return len(agg.Completions) >= 100
	}},
}

// EvaluateBadges returns awards for every rule that is newly true, in rule
// order. A badge is awarded at most once; re-running with unchanged state
// returns nothing.
func EvaluateBadges(agg *storage.Aggregate, now time.Time) []storage.UserBadge {
	if agg.User == nil {
		return nil
	}
	var earned []storage.UserBadge
	for _, rule := range badgeRules {
		if agg.HasBadge(rule.id) {
			continue
		}
		if rule.earned(agg) {
			earned = append(earned, storage.UserBadge{BadgeID: rule.id, AwardedAt: now})
		}
	}
	return earned
}
