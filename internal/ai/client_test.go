package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func chatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model == "" || len(req.Messages) == 0 {
			t.Errorf("incomplete request: %+v", req)
		}

		w.WriteHeader(status)
		body, _ := json.Marshal(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		})
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(url string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: url,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

func TestSuggestQuests(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `Here are some ideas:
[{"title": "Read 20 pages", "description": "Any book", "skill": "intelligence", "size": "M"},
 {"title": "Go for a run", "description": "5k", "skill": "strength", "size": "L"}]
Good luck!`)

	got := testClient(srv.URL).SuggestQuests(context.Background(), SuggestionContext{
		UserLevel: 3,
		Skills:    []SkillSummary{{Name: "strength", Level: 2}},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %+v", got)
	}
	if got[0].Title != "Read 20 pages" || got[0].Skill != "intelligence" || got[0].Size != "M" {
		t.Fatalf("unexpected first suggestion: %+v", got[0])
	}
}

func TestSuggestQuestsServerError(t *testing.T) {
	srv := chatServer(t, http.StatusInternalServerError, "")

	got := testClient(srv.URL).SuggestQuests(context.Background(), SuggestionContext{UserLevel: 1})
	if got != nil {
		t.Fatalf("expected nil on server error, got %+v", got)
	}
}

func TestSuggestQuestsUnconfigured(t *testing.T) {
	c := NewClient(Config{Timeout: time.Second})
	if got := c.SuggestQuests(context.Background(), SuggestionContext{}); got != nil {
		t.Fatalf("expected nil without api key, got %+v", got)
	}
}

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plain array", `[{"title": "A", "skill": "social", "size": "S"}]`, 1},
		{"array in prose", `Sure! [{"title": "A", "skill": "finance", "size": "XL"}] Enjoy.`, 1},
		{"no array", "I could not come up with anything.", 0},
		{"malformed json", `[{"title": "A", "skill":`, 0},
		{"invalid skill dropped", `[{"title": "A", "skill": "charisma", "size": "S"}, {"title": "B", "skill": "social", "size": "S"}]`, 1},
		{"invalid size dropped", `[{"title": "A", "skill": "social", "size": "XXL"}]`, 0},
		{"empty title dropped", `[{"title": "  ", "skill": "social", "size": "S"}]`, 0},
		{
			"capped at three",
			`[{"title": "A", "skill": "social", "size": "S"},
			  {"title": "B", "skill": "social", "size": "S"},
			  {"title": "C", "skill": "social", "size": "S"},
			  {"title": "D", "skill": "social", "size": "S"}]`,
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSuggestions(tt.text)
			if len(got) != tt.want {
				t.Fatalf("expected %d suggestions, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseSuggestionsNormalizesCase(t *testing.T) {
	got := parseSuggestions(`[{"title": "A", "skill": "Social", "size": "s"}]`)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %+v", got)
	}
	if got[0].Skill != "social" || got[0].Size != "S" {
		t.Fatalf("expected normalized skill and size, got %+v", got[0])
	}
}

func TestMotivationalMessage(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `"You're on fire — keep that 5-day streak alive!"`)

	got := testClient(srv.URL).MotivationalMessage(context.Background(), MotivationContext{StreakCount: 5, Level: 4})
	if got != "You're on fire — keep that 5-day streak alive!" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestMotivationalMessageFallback(t *testing.T) {
	srv := chatServer(t, http.StatusBadGateway, "")

	got := testClient(srv.URL).MotivationalMessage(context.Background(), MotivationContext{})
	if got != fallbackMotivation {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestWeeklyInsightFallback(t *testing.T) {
	c := NewClient(Config{Timeout: time.Second})
	if got := c.WeeklyInsight(context.Background(), InsightContext{WeeklyXP: 120}); got != fallbackInsight {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestChat(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "Try breaking the goal into S-sized quests.\n")

	got := testClient(srv.URL).Chat(context.Background(), "How do I start?", []Message{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello!"},
	})
	if got != "Try breaking the goal into S-sized quests." {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestChatFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)

	got := testClient(srv.URL).Chat(context.Background(), "hello", nil)
	if got != fallbackChat {
		t.Fatalf("expected fallback, got %q", got)
	}
}
