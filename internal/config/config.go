// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the RBAC server.
type Config struct {
	AppName   string        `env:"WOLF_APP_NAME" envDefault:"Wolf RBAC"`
	Env       string        `env:"WOLF_ENV" envDefault:"DEV"`
	Port      string        `env:"WOLF_PORT" envDefault:"8080"`
	DataFile  string        `env:"WOLF_DATA_FILE" envDefault:"wolf.db"`
	RootToken string        `env:"WOLF_ROOT_TOKEN"`
	TokenTTL  time.Duration `env:"WOLF_TOKEN_TTL" envDefault:"720h"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.RootToken) == "" {
		return Config{}, fmt.Errorf("WOLF_ROOT_TOKEN is required")
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
