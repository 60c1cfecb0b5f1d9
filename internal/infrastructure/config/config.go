package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Embedder EmbedderConfig
	Calendar CalendarConfig
	Jobs     JobsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=coordination"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type EmbedderConfig struct {
	BaseURL string `env:"EMBEDDER_BASE_URL, default=https://api.openai.com"`
	APIKey  string `env:"EMBEDDER_API_KEY"`
	Model   string `env:"EMBEDDER_MODEL,    default=text-embedding-3-small"`
}

type CalendarConfig struct {
	BaseURL      string        `env:"CALENDAR_BASE_URL,      default=https://www.googleapis.com/calendar/v3"`
	CalendarID   string        `env:"CALENDAR_ID"`
	ClientID     string        `env:"CALENDAR_CLIENT_ID"`
	ClientSecret string        `env:"CALENDAR_CLIENT_SECRET"`
	TokenURL     string        `env:"CALENDAR_TOKEN_URL,     default=https://oauth2.googleapis.com/token"`
	SyncInterval time.Duration `env:"CALENDAR_SYNC_INTERVAL, default=15m"`
}

type JobsConfig struct {
	EmbeddingWorkers int           `env:"EMBEDDING_WORKERS,     default=4"`
	ProgressInterval time.Duration `env:"JOB_PROGRESS_INTERVAL, default=2s"`
}

// SyncEnabled reports whether the calendar mirror has enough configuration to run.
func (c CalendarConfig) SyncEnabled() bool {
	return c.CalendarID != "" && c.ClientID != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
