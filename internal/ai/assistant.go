// Package ai is the boundary to the external text-generation collaborator.
//
// The progression engine never depends on this package and never sees its
// failures: every method degrades to an empty result or a static fallback
// string instead of returning an error.
package ai

import "context"

// SkillSummary is the slice of skill state the collaborator needs.
type SkillSummary struct {
	Name  string
	Level int
	XP    int
}

// SuggestionContext is the prompt-shaped context for quest suggestions.
type SuggestionContext struct {
	Skills       []SkillSummary
	UserLevel    int
	RecentQuests []string
}

// Suggestion is one proposed quest. Skill and Size are validated against the
// engine's fixed sets before a suggestion is surfaced.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Skill       string `json:"skill"`
	Size        string `json:"size"`
}

// MotivationContext feeds the short coach one-liner.
type MotivationContext struct {
	StreakCount       int
	Level             int
	RecentCompletions int
	TopSkill          string
}

// InsightContext feeds the weekly progress summary.
type InsightContext struct {
	WeeklyXP        int
	CompletedQuests int
	TopSkills       []SkillSummary
	StreakCount     int
}

// Message is one turn of coach conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant is the narrow contract the CLI consumes. Implementations must
// never propagate failures: no suggestions and fallback text are the error
// values.
type Assistant interface {
	SuggestQuests(ctx context.Context, sc SuggestionContext) []Suggestion
	MotivationalMessage(ctx context.Context, mc MotivationContext) string
	WeeklyInsight(ctx context.Context, ic InsightContext) string
	Chat(ctx context.Context, message string, history []Message) string
}
