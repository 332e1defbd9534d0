package engine

import (
	"context"

	"github.com/google/uuid"

	"levelup/internal/storage"
)

// CompleteResult describes a successful completion transaction. Presenting
// it (toasts, log lines) is entirely the caller's job.
type CompleteResult struct {
	QuestID      string
	XPAwarded    int
	BonusPercent int
	StreakCount  int
	LevelBefore  int
	LevelAfter   int
	LevelUp      bool
	NewBadges    []Badge
}

// UndoResult describes a reverted completion.
type UndoResult struct {
	QuestID     string
	XPDeducted  int
	LevelBefore int
	LevelAfter  int
	LevelDown   bool
}

// CompleteQuest runs the completion transaction for the quest: award XP with
// the streak bonus, append a completion record, advance the streak, bump
// skill and user XP, and evaluate badges, all against one aggregate
// snapshot that is saved once.
//
// Preconditions: a user exists, the quest exists, and it is not already
// completed. If any fail, nothing changes and nil is returned; callers
// needing feedback check the snapshot themselves.
func (s *Service) CompleteQuest(ctx context.Context, questID string) *CompleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := s.store.Load(ctx)
	if agg.User == nil {
		return nil
	}
	quest := agg.Quest(questID)
	if quest == nil || quest.Completed {
		return nil
	}

	user := agg.User
	now := s.now()
	levelBefore := user.Level

	bonusPercent := StreakBonusPercent(user.StreakCount)
	awardedXP := ApplyStreakBonus(quest.XPReward, bonusPercent)

	quest.Completed = true

	agg.Completions = append(agg.Completions, storage.Completion{
		ID:          uuid.NewString(),
		QuestID:     quest.ID,
		UserID:      user.ID,
		CompletedAt: now,
		XPAwarded:   awardedXP,
		WeekStart:   StartOfWeek(now),
	})

	user.StreakCount = NextStreak(user.StreakCount, user.LastCompletionAt, now)
	completedAt := now
	user.LastCompletionAt = &completedAt

	if skill := agg.Skill(quest.Skill); skill != nil {
		skill.XP += awardedXP
		skill.Level = LevelForXP(skill.XP)
	}

	user.TotalXP += awardedXP
	user.Level = LevelForXP(user.TotalXP)

	var newBadges []Badge
	for _, ub := range EvaluateBadges(agg, now) {
		agg.UserBadges = append(agg.UserBadges, ub)
		if b := BadgeByID(ub.BadgeID); b != nil {
			newBadges = append(newBadges, *b)
		}
	}

	s.persist(ctx, agg)

	return &CompleteResult{
		QuestID:      quest.ID,
		XPAwarded:    awardedXP,
		BonusPercent: bonusPercent,
		StreakCount:  user.StreakCount,
		LevelBefore:  levelBefore,
		LevelAfter:   user.Level,
		LevelUp:      user.Level > levelBefore,
		NewBadges:    newBadges,
	}
}

// UndoCompletion reverts the latest completion of the quest: the completed
// flag flips back and the recorded XP is subtracted (clamped at zero) from
// the skill and the user total.
//
// The completion record itself stays in the ledger, and streak and badge
// state are not reverted, so weekly XP and completion-count badges can
// overcount after an undo.
func (s *Service) UndoCompletion(ctx context.Context, questID string) *UndoResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := s.store.Load(ctx)
	if agg.User == nil {
		return nil
	}
	quest := agg.Quest(questID)
	if quest == nil || !quest.Completed {
		return nil
	}
	completion := agg.LastCompletionForQuest(quest.ID)
	if completion == nil {
		return nil
	}

	user := agg.User
	levelBefore := user.Level

	quest.Completed = false

	if skill := agg.Skill(quest.Skill); skill != nil {
		skill.XP -= completion.XPAwarded
		if skill.XP < 0 {
			skill.XP = 0
		}
		skill.Level = LevelForXP(skill.XP)
	}

	user.TotalXP -= completion.XPAwarded
	if user.TotalXP < 0 {
		user.TotalXP = 0
	}
	user.Level = LevelForXP(user.TotalXP)

	s.persist(ctx, agg)

	return &UndoResult{
		QuestID:     quest.ID,
		XPDeducted:  completion.XPAwarded,
		LevelBefore: levelBefore,
		LevelAfter:  user.Level,
		LevelDown:   user.Level < levelBefore,
	}
}
