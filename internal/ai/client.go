package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"levelup/internal/engine"
)

const (
	fallbackMotivation = "Keep pushing forward! You're doing great! 🚀"
	fallbackInsight    = "Great progress this week! Keep maintaining your streak and focus on balanced skill development."
	fallbackChat       = "I'm having trouble connecting right now. Please try again in a moment!"

	maxSuggestions = 3
)

// Client talks to an OpenAI-compatible chat-completions endpoint (Groq by
// default). It implements Assistant.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  slog.Default(),
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, messages []Message) (string, error) {
	if !c.cfg.Configured() {
		return "", errors.New("api key not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat request: status %s", resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("empty choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// SuggestQuests asks for up to three quest ideas. Any failure (transport,
// malformed JSON, out-of-set skill or size) yields an empty list.
func (c *Client) SuggestQuests(ctx context.Context, sc SuggestionContext) []Suggestion {
	skillParts := make([]string, 0, len(sc.Skills))
	for _, s := range sc.Skills {
		skillParts = append(skillParts, fmt.Sprintf("%s (Lv %d)", s.Name, s.Level))
	}
	recent := strings.Join(sc.RecentQuests, ", ")
	if recent == "" {
		recent = "None yet"
	}

	messages := []Message{
		{Role: "system", Content: "You are an AI coach for a gamification app. Generate personalized quest suggestions that are realistic, achievable, and help users improve their life skills. Focus on practical, real-world activities."},
		{Role: "user", Content: fmt.Sprintf(`Generate 3 quest suggestions for a user with:
- Level: %d
- Skills: %s
- Recent quests: %s

For each quest, provide:
1. A clear, actionable title (max 50 chars)
2. A brief description (max 100 chars)
3. The most relevant skill (strength, intelligence, discipline, social, or finance)
4. Size (S for 15min, M for 30min, L for 1hr, XL for 2hr+)

Format as JSON array:
[{"title": "...", "description": "...", "skill": "...", "size": "..."}]`, sc.UserLevel, strings.Join(skillParts, ", "), recent)},
	}

	text, err := c.complete(ctx, messages)
	if err != nil {
		c.log.Warn("quest suggestions unavailable", "err", err)
		return nil
	}
	return parseSuggestions(text)
}

// parseSuggestions extracts the first JSON array from free text and keeps
// only well-formed entries.
func parseSuggestions(text string) []Suggestion {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil
	}

	var raw []Suggestion
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil
	}

	out := make([]Suggestion, 0, maxSuggestions)
	for _, s := range raw {
		skill, okSkill := engine.ParseSkill(s.Skill)
		size, okSize := engine.ParseSize(s.Size)
		if strings.TrimSpace(s.Title) == "" || !okSkill || !okSize {
			continue
		}
		s.Skill = string(skill)
		s.Size = string(size)
		out = append(out, s)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// MotivationalMessage returns a short coach one-liner, or static fallback
// copy when the collaborator is unreachable.
func (c *Client) MotivationalMessage(ctx context.Context, mc MotivationContext) string {
	messages := []Message{
		{Role: "system", Content: "You are an enthusiastic AI coach who provides short, motivating messages to users. Keep messages under 100 characters, positive, and action-oriented."},
		{Role: "user", Content: fmt.Sprintf(`Generate a motivational message for a user with:
- %d day streak
- Level %d
- %d quests completed recently
- Top skill: %s

Keep it brief, encouraging, and personalized.`, mc.StreakCount, mc.Level, mc.RecentCompletions, mc.TopSkill)},
	}

	text, err := c.complete(ctx, messages)
	if err != nil {
		c.log.Warn("motivational message unavailable", "err", err)
		return fallbackMotivation
	}
	return strings.Trim(strings.TrimSpace(text), `'"`)
}

// WeeklyInsight summarizes the week's progress with one actionable tip.
func (c *Client) WeeklyInsight(ctx context.Context, ic InsightContext) string {
	skillParts := make([]string, 0, len(ic.TopSkills))
	for _, s := range ic.TopSkills {
		skillParts = append(skillParts, fmt.Sprintf("%s (Lv %d)", s.Name, s.Level))
	}

	messages := []Message{
		{Role: "system", Content: "You are an AI coach providing weekly progress insights. Be specific, encouraging, and offer actionable advice. Keep response under 200 characters."},
		{Role: "user", Content: fmt.Sprintf(`Provide weekly insights for:
- %d XP earned this week
- %d quests completed
- Top skills: %s
- %d day streak

Give a brief, encouraging summary with one actionable tip.`, ic.WeeklyXP, ic.CompletedQuests, strings.Join(skillParts, ", "), ic.StreakCount)},
	}

	text, err := c.complete(ctx, messages)
	if err != nil {
		c.log.Warn("weekly insight unavailable", "err", err)
		return fallbackInsight
	}
	return strings.TrimSpace(text)
}

// Chat answers a free-text message with optional conversation history.
func (c *Client) Chat(ctx context.Context, message string, history []Message) string {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: `You are a helpful AI assistant for a gamification app called LevelUp. Help users with:
- Creating and managing quests
- Setting goals
- Staying motivated
- Understanding the app features
- General productivity advice

Be friendly, concise, and action-oriented. Keep responses under 200 characters when possible.`})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: message})

	text, err := c.complete(ctx, messages)
	if err != nil {
		c.log.Warn("chat unavailable", "err", err)
		return fallbackChat
	}
	return strings.TrimSpace(text)
}

var _ Assistant = (*Client)(nil)
