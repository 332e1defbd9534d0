package engine

import (
	"fmt"
	"testing"
	"time"

	"levelup/internal/storage"
)

func testAggregate() *storage.Aggregate {
	agg := storage.NewEmptyAggregate()
	agg.User = &storage.User{ID: "u1", Username: "test", DisplayName: "Test"}
	for _, name := range AllSkills {
		agg.Skills = append(agg.Skills, storage.Skill{Name: string(name)})
	}
	return agg
}

func badgeIDs(awards []storage.UserBadge) []string {
	ids := make([]string, 0, len(awards))
	for _, a := range awards {
		ids = append(ids, a.BadgeID)
	}
	return ids
}

func TestEvaluateBadgesFirstSteps(t *testing.T) {
	agg := testAggregate()
	now := time.Now()

	if got := EvaluateBadges(agg, now); len(got) != 0 {
		t.Fatalf("no completions: earned %v, want none", badgeIDs(got))
	}

	agg.Completions = append(agg.Completions, storage.Completion{ID: "c1", QuestID: "q1"})
	got := EvaluateBadges(agg, now)
	if len(got) != 1 || got[0].BadgeID != "first_steps" {
		t.Fatalf("one completion: earned %v, want [first_steps]", badgeIDs(got))
	}
}

func TestEvaluateBadgesIdempotent(t *testing.T) {
	agg := testAggregate()
	agg.User.StreakCount = 7
	agg.Completions = append(agg.Completions, storage.Completion{ID: "c1"})
	now := time.Now()

	first := EvaluateBadges(agg, now)
	if len(first) == 0 {
		t.Fatalf("expected badges on first pass")
	}
	agg.UserBadges = append(agg.UserBadges, first...)

	if second := EvaluateBadges(agg, now); len(second) != 0 {
		t.Fatalf("second pass with unchanged state earned %v, want none", badgeIDs(second))
	}
}

func TestEvaluateBadgesSkillMaster(t *testing.T) {
	agg := testAggregate()
	agg.Skills[2].Level = 10

	got := EvaluateBadges(agg, time.Now())
	if len(got) != 1 || got[0].BadgeID != "skill_master" {
		t.Fatalf("earned %v, want [skill_master]", badgeIDs(got))
	}
}

func TestCenturyClubAtExactlyHundred(t *testing.T) {
	agg := testAggregate()
	now := time.Now()
	for i := 0; i < 99; i++ {
		agg.Completions = append(agg.Completions, storage.Completion{ID: fmt.Sprintf("c%d", i)})
	}
	agg.UserBadges = append(agg.UserBadges, EvaluateBadges(agg, now)...)
	if agg.HasBadge("century_club") {
		t.Fatalf("century_club earned at 99 completions")
	}

	agg.Completions = append(agg.Completions, storage.Completion{ID: "c99"})
	got := EvaluateBadges(agg, now)
	if len(got) != 1 || got[0].BadgeID != "century_club" {
		t.Fatalf("earned %v at 100 completions, want [century_club]", badgeIDs(got))
	}
	agg.UserBadges = append(agg.UserBadges, got...)

	agg.Completions = append(agg.Completions, storage.Completion{ID: "c100"})
	if again := EvaluateBadges(agg, now); len(again) != 0 {
		t.Fatalf("century_club earned twice: %v", badgeIDs(again))
	}
}

func TestPerfectionistIsInert(t *testing.T) {
	if BadgeByID("perfectionist") == nil {
		t.Fatalf("perfectionist missing from catalog")
	}
	if len(Catalog) != 7 {
		t.Fatalf("catalog has %d entries, want 7", len(Catalog))
	}

	// Even a maxed-out aggregate never earns it.
	agg := testAggregate()
	agg.User.StreakCount = 100
	agg.User.Level = 50
	for i := range agg.Skills {
		agg.Skills[i].Level = 50
	}
	for i := 0; i < 200; i++ {
		agg.Completions = append(agg.Completions, storage.Completion{ID: fmt.Sprintf("c%d", i)})
	}
	for _, award := range EvaluateBadges(agg, time.Now()) {
		if award.BadgeID == "perfectionist" {
			t.Fatalf("perfectionist should have no trigger")
		}
	}
}
