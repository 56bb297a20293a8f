package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	ScheduleFile string `env:"SCHEDULE_FILE" envDefault:"data/schedule-data.json"`

	AI   AIConfig
	Auth AuthConfig

	ViewCacheTTL     time.Duration `env:"VIEW_CACHE_TTL" envDefault:"5m"`
	AIRatePerMinute  float64       `env:"AI_RATE_PER_MINUTE" envDefault:"5"`
	CORSAllowOrigins []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

type AIConfig struct {
	Provider      string `env:"AI_PROVIDER" envDefault:"openai"`
	Model         string `env:"AI_MODEL"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
}

type AuthConfig struct {
	Username   string        `env:"AUTH_USERNAME"`
	Password   string        `env:"AUTH_PASSWORD"`
	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	if cfg.AI.Model == "" {
		cfg.AI.Model = cfg.AI.DefaultModel()
	}
	return &cfg, nil
}

// APIKey is the credential of the selected provider.
func (c AIConfig) APIKey() string {
	if c.Provider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

func (c AIConfig) DefaultModel() string {
	if c.Provider == "gemini" {
		return "gemini-1.5-flash"
	}
	return "gpt-4o"
}

func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
