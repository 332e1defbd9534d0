package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Store owns the persisted aggregate. Its whole surface is Load and Save:
// every mutation upstream is a read-modify-write of the full aggregate, so
// there is no partial-update API here.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

func NewStore(db *sql.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{db: db, log: log}
}

// Load reads the full aggregate. It never fails: missing or unreadable data
// is logged and mapped to the well-formed empty aggregate.
func (s *Store) Load(ctx context.Context) *Aggregate {
	agg, err := s.load(ctx)
	if err != nil {
		s.log.Warn("load aggregate failed, starting empty", "err", err)
		return NewEmptyAggregate()
	}
	return agg
}

func (s *Store) load(ctx context.Context) (*Aggregate, error) {
	agg := NewEmptyAggregate()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, display_name, level, total_xp, streak_count, last_completion_at, created_at
		FROM users
		LIMIT 1
	`)
	var (
		u       User
		lastAt  sql.NullTime
		scanErr = row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Level, &u.TotalXP, &u.StreakCount, &lastAt, &u.CreatedAt)
	)
	switch scanErr {
	case nil:
		if lastAt.Valid {
			t := lastAt.Time
			u.LastCompletionAt = &t
		}
		agg.User = &u
	case sql.ErrNoRows:
		// No user yet; collections may still be empty but well formed.
	default:
		return nil, fmt.Errorf("user scan: %w", scanErr)
	}

	if agg.User != nil {
		rows, err := s.db.QueryContext(ctx, `SELECT name, xp, level FROM skills WHERE user_id = ? ORDER BY rowid ASC`, agg.User.ID)
		if err != nil {
			return nil, fmt.Errorf("skills query: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var sk Skill
			if err := rows.Scan(&sk.Name, &sk.XP, &sk.Level); err != nil {
				return nil, fmt.Errorf("skill scan: %w", err)
			}
			agg.Skills = append(agg.Skills, sk)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("skills rows: %w", err)
		}
	}

	quests, err := s.loadQuests(ctx)
	if err != nil {
		return nil, err
	}
	agg.Quests = quests

	completions, err := s.loadCompletions(ctx)
	if err != nil {
		return nil, err
	}
	agg.Completions = completions

	rows, err := s.db.QueryContext(ctx, `SELECT badge_id, awarded_at FROM user_badges ORDER BY awarded_at ASC, badge_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("badges query: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ub UserBadge
		if err := rows.Scan(&ub.BadgeID, &ub.AwardedAt); err != nil {
			return nil, fmt.Errorf("badge scan: %w", err)
		}
		agg.UserBadges = append(agg.UserBadges, ub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("badges rows: %w", err)
	}

	return agg, nil
}

func (s *Store) loadQuests(ctx context.Context) ([]Quest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, description, skill, size, xp_reward, completed, due_date, is_recurring, created_at
		FROM quests
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("quests query: %w", err)
	}
	defer rows.Close()

	out := []Quest{}
	for rows.Next() {
		var (
			q         Quest
			desc      sql.NullString
			due       sql.NullTime
			completed int
			recurring int
		)
		if err := rows.Scan(&q.ID, &q.UserID, &q.Title, &desc, &q.Skill, &q.Size, &q.XPReward, &completed, &due, &recurring, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("quest scan: %w", err)
		}
		if desc.Valid {
			q.Description = desc.String
		}
		if due.Valid {
			t := due.Time
			q.DueDate = &t
		}
		q.Completed = completed != 0
		q.IsRecurring = recurring != 0
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quests rows: %w", err)
	}
	return out, nil
}

func (s *Store) loadCompletions(ctx context.Context) ([]Completion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, quest_id, user_id, completed_at, xp_awarded, week_start
		FROM completions
		ORDER BY completed_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("completions query: %w", err)
	}
	defer rows.Close()

	out := []Completion{}
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.ID, &c.QuestID, &c.UserID, &c.CompletedAt, &c.XPAwarded, &c.WeekStart); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completions rows: %w", err)
	}
	return out, nil
}

// Save writes the full aggregate in one transaction, replacing whatever was
// persisted before. Callers treat a failure as best-effort: it is returned so
// they can log it, nothing more.
func (s *Store) Save(ctx context.Context, agg *Aggregate) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, table := range []string{"user_badges", "completions", "quests", "skills", "users"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		if agg.User == nil {
			return nil
		}
		u := agg.User
		var lastAt any
		if u.LastCompletionAt != nil {
			lastAt = u.LastCompletionAt.UTC()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, username, display_name, level, total_xp, streak_count, last_completion_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, u.ID, u.Username, u.DisplayName, u.Level, u.TotalXP, u.StreakCount, lastAt, u.CreatedAt.UTC()); err != nil {
			return fmt.Errorf("user insert: %w", err)
		}

		for _, sk := range agg.Skills {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO skills (user_id, name, xp, level) VALUES (?, ?, ?, ?)
			`, u.ID, sk.Name, sk.XP, sk.Level); err != nil {
				return fmt.Errorf("skill insert: %w", err)
			}
		}

		for _, q := range agg.Quests {
			var due any
			if q.DueDate != nil {
				due = q.DueDate.UTC()
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO quests (id, user_id, title, description, skill, size, xp_reward, completed, due_date, is_recurring, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, q.ID, q.UserID, q.Title, q.Description, q.Skill, q.Size, q.XPReward, boolToInt(q.Completed), due, boolToInt(q.IsRecurring), q.CreatedAt.UTC()); err != nil {
				return fmt.Errorf("quest insert: %w", err)
			}
		}

		for _, c := range agg.Completions {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO completions (id, quest_id, user_id, completed_at, xp_awarded, week_start)
				VALUES (?, ?, ?, ?, ?, ?)
			`, c.ID, c.QuestID, c.UserID, c.CompletedAt.UTC(), c.XPAwarded, c.WeekStart.UTC()); err != nil {
				return fmt.Errorf("completion insert: %w", err)
			}
		}

		for _, ub := range agg.UserBadges {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO user_badges (badge_id, awarded_at) VALUES (?, ?)
			`, ub.BadgeID, ub.AwardedAt.UTC()); err != nil {
				return fmt.Errorf("badge insert: %w", err)
			}
		}
		return nil
	})
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
