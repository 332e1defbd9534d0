package storage

import "time"

// User is the single local player profile. Level is cached and recomputed
// from TotalXP on every XP change.
type User struct {
	ID               string
	Username         string
	DisplayName      string
	Level            int
	TotalXP          int
	StreakCount      int
	LastCompletionAt *time.Time
	CreatedAt        time.Time
}

type Skill struct {
	Name  string
	XP    int
	Level int
}

type Quest struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Skill       string
	Size        string
	XPReward    int
	Completed   bool
	DueDate     *time.Time
	IsRecurring bool
	CreatedAt   time.Time
}

// Completion is an append-only record of one successful quest completion.
// Undo never deletes these rows.
type Completion struct {
	ID          string
	QuestID     string
	UserID      string
	CompletedAt time.Time
	XPAwarded   int
	WeekStart   time.Time
}

type UserBadge struct {
	BadgeID   string
	AwardedAt time.Time
}

// Aggregate is the unit of atomic load/save: everything the engine needs to
// run a progression transaction.
type Aggregate struct {
	User        *User
	Skills      []Skill
	Quests      []Quest
	Completions []Completion
	UserBadges  []UserBadge
}

// NewEmptyAggregate returns the well-formed zero state: no user, empty
// collections.
func NewEmptyAggregate() *Aggregate {
	return &Aggregate{
		Skills:      []Skill{},
		Quests:      []Quest{},
		Completions: []Completion{},
		UserBadges:  []UserBadge{},
	}
}

// Quest returns the quest with the given id, or nil.
func (a *Aggregate) Quest(id string) *Quest {
	for i := range a.Quests {
		if a.Quests[i].ID == id {
			return &a.Quests[i]
		}
	}
	return nil
}

// Skill returns the named skill, or nil.
func (a *Aggregate) Skill(name string) *Skill {
	for i := range a.Skills {
		if a.Skills[i].Name == name {
			return &a.Skills[i]
		}
	}
	return nil
}

// HasBadge reports whether the badge id has already been awarded.
func (a *Aggregate) HasBadge(badgeID string) bool {
	for i := range a.UserBadges {
		if a.UserBadges[i].BadgeID == badgeID {
			return true
		}
	}
	return false
}

// LastCompletionForQuest returns the most recent completion record for the
// quest by CompletedAt, or nil if the quest was never completed.
func (a *Aggregate) LastCompletionForQuest(questID string) *Completion {
	var last *Completion
	for i := range a.Completions {
		c := &a.Completions[i]
		if c.QuestID != questID {
			continue
		}
		if last == nil || c.CompletedAt.After(last.CompletedAt) {
			last = c
		}
	}
	return last
}
