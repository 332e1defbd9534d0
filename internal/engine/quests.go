package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"levelup/internal/storage"
)

var (
	ErrNoUser     = errors.New("no user profile; run init first")
	ErrUserExists = errors.New("user profile already exists")
)

type QuestInput struct {
	Title       string
	Description string
	Skill       SkillType
	Size        QuestSize
	DueDate     *time.Time
	IsRecurring bool
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

func (in *QuestInput) validate() error {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return err
	}
	in.Title = title
	if !in.Skill.IsValid() {
		return fmt.Errorf("invalid skill: %q", in.Skill)
	}
	if !in.Size.IsValid() {
		return fmt.Errorf("invalid size: %q", in.Size)
	}
	return nil
}

// InitUser creates the user profile and its five zero-XP skills. There is
// exactly one profile per installation.
func (s *Service) InitUser(ctx context.Context, username, displayName string) (*storage.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = username
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	agg := s.store.Load(ctx)
	if agg.User != nil {
		return nil, ErrUserExists
	}

	now := s.now()
	agg.User = &storage.User{
		ID:          uuid.NewString(),
		Username:    username,
		DisplayName: displayName,
		Level:       LevelForXP(0),
		TotalXP:     0,
		StreakCount: 0,
		CreatedAt:   now,
	}
	for _, name := range AllSkills {
		agg.Skills = append(agg.Skills, storage.Skill{
			Name:  string(name),
			XP:    0,
			Level: LevelForXP(0),
		})
	}

	s.persist(ctx, agg)
	return agg.User, nil
}

// CreateQuest adds a quest with its XP reward copied from the size table.
func (s *Service) CreateQuest(ctx context.Context, in QuestInput) (*storage.Quest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	agg := s.store.Load(ctx)
	if agg.User == nil {
		return nil, ErrNoUser
	}

	quest := storage.Quest{
		ID:          uuid.NewString(),
		UserID:      agg.User.ID,
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Skill:       string(in.Skill),
		Size:        string(in.Size),
		XPReward:    SizeXP[in.Size],
		DueDate:     in.DueDate,
		IsRecurring: in.IsRecurring,
		CreatedAt:   s.now(),
	}
	agg.Quests = append(agg.Quests, quest)

	s.persist(ctx, agg)
	return &quest, nil
}

// UpdateQuest edits a quest's fields. The XP reward is re-copied from the
// size table; the completed flag is owned by the ledger and never touched
// here.
func (s *Service) UpdateQuest(ctx context.Context, questID string, in QuestInput) (*storage.Quest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	agg := s.store.Load(ctx)
	if agg.User == nil {
		return nil, ErrNoUser
	}
	quest := agg.Quest(questID)
	if quest == nil {
		return nil, fmt.Errorf("quest %s not found", questID)
	}

	quest.Title = in.Title
	quest.Description = strings.TrimSpace(in.Description)
	quest.Skill = string(in.Skill)
	quest.Size = string(in.Size)
	quest.XPReward = SizeXP[in.Size]
	quest.DueDate = in.DueDate
	quest.IsRecurring = in.IsRecurring

	s.persist(ctx, agg)
	out := *quest
	return &out, nil
}

// DeleteQuest removes a quest. Completion records referencing it stay in the
// ledger.
func (s *Service) DeleteQuest(ctx context.Context, questID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := s.store.Load(ctx)
	if agg.User == nil {
		return ErrNoUser
	}
	for i := range agg.Quests {
		if agg.Quests[i].ID == questID {
			agg.Quests = append(agg.Quests[:i], agg.Quests[i+1:]...)
			s.persist(ctx, agg)
			return nil
		}
	}
	return fmt.Errorf("quest %s not found", questID)
}

// Reset wipes the whole aggregate back to the empty state.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist(ctx, storage.NewEmptyAggregate())
}
