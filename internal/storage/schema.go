package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			display_name TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			total_xp INTEGER NOT NULL DEFAULT 0,
			streak_count INTEGER NOT NULL DEFAULT 0,
			last_completion_at DATETIME,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS skills (
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			xp INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, name),
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			skill TEXT NOT NULL,
			size TEXT NOT NULL,
			xp_reward INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			due_date DATETIME,
			is_recurring INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		// Append-only; undo keeps these rows (weekly XP / completion counts
		// intentionally include undone completions).
		`CREATE TABLE IF NOT EXISTS completions (
			id TEXT PRIMARY KEY,
			quest_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			completed_at DATETIME NOT NULL,
			xp_awarded INTEGER NOT NULL,
			week_start DATETIME NOT NULL,
			FOREIGN KEY(quest_id) REFERENCES quests(id)
		);`,
		`CREATE TABLE IF NOT EXISTS user_badges (
			badge_id TEXT PRIMARY KEY,
			awarded_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_user_id ON quests(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_quest_id_completed_at ON completions(quest_id, completed_at);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_week_start ON completions(week_start);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
