// Package config loads EchoSheet client settings from the environment
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the client
type Config struct {
	Backend    BackendConfig    `envPrefix:"ECHOSHEET_"`
	Redis      RedisConfig      `envPrefix:"ECHOSHEET_REDIS_"`
	Compendium CompendiumConfig `envPrefix:"ECHOSHEET_COMPENDIUM_"`
	Drafts     DraftConfig      `envPrefix:"ECHOSHEET_"`

	LogLevel string `env:"ECHOSHEET_LOG_LEVEL" envDefault:"warn"`
}

// BackendConfig points at the EchoSheet web application
type BackendConfig struct {
	BaseURL     string        `env:"BASE_URL" envDefault:"http://localhost:5000"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// RedisConfig holds the draft store connection. An empty Addr selects the
// in-memory store.
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// CompendiumConfig holds the SRD lookup settings. Enabled=false skips
// spell enrichment entirely.
type CompendiumConfig struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	BaseURL  string        `env:"URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// DraftConfig covers draft lifetime and sheet auto-save
type DraftConfig struct {
	TTL           time.Duration `env:"DRAFT_TTL" envDefault:"24h"`
	AutosaveDelay time.Duration `env:"AUTOSAVE_DELAY" envDefault:"1s"`
	Session       string        `env:"SESSION" envDefault:"default"`
}

// Load parses configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that parse but make no sense
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("ECHOSHEET_BASE_URL %q is not an absolute URL", c.Backend.BaseURL)
	}
	if c.Backend.HTTPTimeout <= 0 {
		return fmt.Errorf("ECHOSHEET_HTTP_TIMEOUT must be positive")
	}
	if c.Drafts.TTL <= 0 {
		return fmt.Errorf("ECHOSHEET_DRAFT_TTL must be positive")
	}
	if c.Drafts.AutosaveDelay < 0 {
		return fmt.Errorf("ECHOSHEET_AUTOSAVE_DELAY must not be negative")
	}
	if strings.TrimSpace(c.Drafts.Session) == "" {
		return fmt.Errorf("ECHOSHEET_SESSION must not be empty")
	}
	if c.Compendium.CacheTTL < 0 {
		return fmt.Errorf("ECHOSHEET_COMPENDIUM_CACHE_TTL must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to slog
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("ECHOSHEET_LOG_LEVEL %q: %w", level, err)
	}
	return l, nil
}
