package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(db, nil), db
}

func TestLoadEmptyDatabase(t *testing.T) {
	store, _ := newTestStore(t)
	agg := store.Load(context.Background())

	if agg.User != nil {
		t.Fatalf("expected nil user, got %+v", agg.User)
	}
	if agg.Skills == nil || agg.Quests == nil || agg.Completions == nil || agg.UserBadges == nil {
		t.Fatalf("expected well-formed empty collections, got %+v", agg)
	}
	if len(agg.Quests) != 0 || len(agg.Completions) != 0 {
		t.Fatalf("expected empty collections, got %+v", agg)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	lastAt := time.Date(2025, 6, 10, 21, 30, 0, 0, time.Local)
	due := time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local)
	agg := NewEmptyAggregate()
	agg.User = &User{
		ID:               "u1",
		Username:         "tester",
		DisplayName:      "Tester",
		Level:            3,
		TotalXP:          25,
		StreakCount:      2,
		LastCompletionAt: &lastAt,
		CreatedAt:        time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local),
	}
	agg.Skills = []Skill{
		{Name: "strength", XP: 0, Level: 0},
		{Name: "discipline", XP: 25, Level: 3},
	}
	agg.Quests = []Quest{{
		ID:          "q1",
		UserID:      "u1",
		Title:       "Morning run",
		Description: "5k around the park",
		Skill:       "discipline",
		Size:        "M",
		XPReward:    25,
		Completed:   true,
		DueDate:     &due,
		IsRecurring: true,
		CreatedAt:   time.Date(2025, 6, 2, 8, 0, 0, 0, time.Local),
	}}
	agg.Completions = []Completion{{
		ID:          "c1",
		QuestID:     "q1",
		UserID:      "u1",
		CompletedAt: lastAt,
		XPAwarded:   25,
		WeekStart:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local),
	}}
	agg.UserBadges = []UserBadge{{BadgeID: "first_steps", AwardedAt: lastAt}}

	if err := store.Save(ctx, agg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := store.Load(ctx)
	if got.User == nil {
		t.Fatalf("user not persisted")
	}
	if got.User.ID != "u1" || got.User.TotalXP != 25 || got.User.StreakCount != 2 {
		t.Fatalf("user roundtrip mismatch: %+v", got.User)
	}
	if got.User.LastCompletionAt == nil || !got.User.LastCompletionAt.Equal(lastAt) {
		t.Fatalf("last completion roundtrip mismatch: %v", got.User.LastCompletionAt)
	}
	if len(got.Skills) != 2 || got.Skills[1].XP != 25 || got.Skills[1].Level != 3 {
		t.Fatalf("skills roundtrip mismatch: %+v", got.Skills)
	}
	if len(got.Quests) != 1 {
		t.Fatalf("quests roundtrip mismatch: %+v", got.Quests)
	}
	q := got.Quests[0]
	if !q.Completed || !q.IsRecurring || q.Description != "5k around the park" || q.XPReward != 25 {
		t.Fatalf("quest fields mismatch: %+v", q)
	}
	if q.DueDate == nil || !q.DueDate.Equal(due) {
		t.Fatalf("due date mismatch: %v", q.DueDate)
	}
	if len(got.Completions) != 1 || !got.Completions[0].CompletedAt.Equal(lastAt) {
		t.Fatalf("completions roundtrip mismatch: %+v", got.Completions)
	}
	if len(got.UserBadges) != 1 || got.UserBadges[0].BadgeID != "first_steps" {
		t.Fatalf("badges roundtrip mismatch: %+v", got.UserBadges)
	}
}

func TestSaveReplacesPreviousState(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	agg := NewEmptyAggregate()
	agg.User = &User{ID: "u1", Username: "a", DisplayName: "a", CreatedAt: time.Now()}
	agg.Quests = []Quest{
		{ID: "q1", UserID: "u1", Title: "One", Skill: "social", Size: "S", XPReward: 10, CreatedAt: time.Now()},
		{ID: "q2", UserID: "u1", Title: "Two", Skill: "social", Size: "S", XPReward: 10, CreatedAt: time.Now()},
	}
	if err := store.Save(ctx, agg); err != nil {
		t.Fatalf("save: %v", err)
	}

	agg.Quests = agg.Quests[:1]
	if err := store.Save(ctx, agg); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got := store.Load(ctx)
	if len(got.Quests) != 1 || got.Quests[0].ID != "q1" {
		t.Fatalf("expected replaced state, got %+v", got.Quests)
	}
}

func TestLoadCorruptDataFallsBackToEmpty(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	// A users row with garbage where timestamps and integers belong.
	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, username, display_name, level, total_xp, streak_count, last_completion_at, created_at)
		VALUES ('u1', 'x', 'x', 'not-a-level', 'garbage', 0, NULL, 'not-a-date')
	`)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	agg := store.Load(ctx)
	if agg.User != nil {
		t.Fatalf("expected empty aggregate for corrupt data, got user %+v", agg.User)
	}
	if agg.Quests == nil || agg.Completions == nil {
		t.Fatalf("expected well-formed empty collections")
	}
}
