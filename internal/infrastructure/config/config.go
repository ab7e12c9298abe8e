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

	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL,  default=168h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=720h"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/mess_feedback?sslmode=disable"`
}

// IsDevelopment reports whether the process runs in development mode.
// Development mode enables pretty logging and error detail in responses.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
