package ai

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config configures the chat-completions endpoint and HTTP behavior.
type Config struct {
	APIKey  string        `env:"GROQ_API_KEY"`
	BaseURL string        `env:"LEVELUP_AI_URL" envDefault:"https://api.groq.com/openai/v1/chat/completions"`
	Model   string        `env:"LEVELUP_AI_MODEL" envDefault:"llama-3.1-8b-instant"`
	Timeout time.Duration `env:"LEVELUP_AI_TIMEOUT" envDefault:"20s"`
}

// LoadConfig reads configuration from the environment, after loading a local
// .env file if one exists.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse ai config: %w", err)
	}
	return cfg, nil
}

// Configured reports whether an API key is present. An unconfigured client
// still works; it just answers with fallbacks.
func (c Config) Configured() bool {
	return c.APIKey != ""
}
