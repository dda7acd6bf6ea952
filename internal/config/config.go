// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Lookup modes.
const (
	LookupFixture = "fixture"
	LookupScrape  = "scrape"
)

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Search  SearchConfig
	Lookup  LookupConfig
	Storage StorageConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"40s"`
}

// SearchConfig holds settings for the multi-date search.
type SearchConfig struct {
	MaxConcurrency int           `env:"SEARCH_MAX_CONCURRENCY" envDefault:"10"`
	GlobalTimeout  time.Duration `env:"SEARCH_GLOBAL_TIMEOUT" envDefault:"30s"`
	PerDateTimeout time.Duration `env:"SEARCH_PER_DATE_TIMEOUT" envDefault:"10s"`
	SelectionLimit int           `env:"SEARCH_SELECTION_LIMIT" envDefault:"3"`
}

// LookupConfig selects and tunes the per-date flight source.
type LookupConfig struct {
	Mode        string        `env:"LOOKUP_MODE" envDefault:"fixture"`
	FixturePath string        `env:"LOOKUP_FIXTURE_PATH" envDefault:"docs/response-mock/flights.json"`
	BaseURL     string        `env:"LOOKUP_BASE_URL" envDefault:"https://www.google.com/travel/flights"`
	Language    string        `env:"LOOKUP_LANGUAGE" envDefault:"en"`
	Currency    string        `env:"LOOKUP_CURRENCY" envDefault:"INR"`
	UserAgent   string        `env:"LOOKUP_USER_AGENT" envDefault:"Mozilla/5.0 (X11; Linux x86_64) flyGPT/1.0"`
	HTTPTimeout time.Duration `env:"LOOKUP_HTTP_TIMEOUT" envDefault:"8s"`

	RatePerSecond float64 `env:"LOOKUP_RATE_PER_SECOND" envDefault:"5"`
	Burst         int     `env:"LOOKUP_BURST" envDefault:"5"`

	RetryAttempts  int           `env:"LOOKUP_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"LOOKUP_RETRY_BASE_DELAY" envDefault:"200ms"`
	RetryMaxDelay  time.Duration `env:"LOOKUP_RETRY_MAX_DELAY" envDefault:"2s"`

	BreakerMaxFailures uint32        `env:"LOOKUP_BREAKER_MAX_FAILURES" envDefault:"5"`
	BreakerTimeout     time.Duration `env:"LOOKUP_BREAKER_TIMEOUT" envDefault:"30s"`
}

// StorageConfig selects where search snapshots are kept.
type StorageConfig struct {
	Driver    string        `env:"STORAGE_DRIVER" envDefault:"memory"`
	MySQLDSN  string        `env:"MYSQL_DSN"`
	MemoryTTL time.Duration `env:"STORAGE_MEMORY_TTL" envDefault:"24h"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if err := validateSearch(cfg.Search); err != nil {
		return err
	}

	// The response must be writable after the slowest search.
	if cfg.Server.WriteTimeout <= cfg.Search.GlobalTimeout {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT (%s) should be greater than SEARCH_GLOBAL_TIMEOUT (%s)",
			cfg.Server.WriteTimeout, cfg.Search.GlobalTimeout)
	}

	if err := validateLookup(cfg.Lookup); err != nil {
		return err
	}
	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateSearch(s SearchConfig) error {
	if s.MaxConcurrency < 1 {
		return fmt.Errorf("SEARCH_MAX_CONCURRENCY must be at least 1, got %d", s.MaxConcurrency)
	}
	if s.GlobalTimeout <= 0 {
		return fmt.Errorf("SEARCH_GLOBAL_TIMEOUT must be positive")
	}
	if s.PerDateTimeout <= 0 {
		return fmt.Errorf("SEARCH_PER_DATE_TIMEOUT must be positive")
	}
	if s.PerDateTimeout > s.GlobalTimeout {
		return fmt.Errorf("SEARCH_PER_DATE_TIMEOUT (%s) should not exceed SEARCH_GLOBAL_TIMEOUT (%s)",
			s.PerDateTimeout, s.GlobalTimeout)
	}
	if s.SelectionLimit < 1 {
		return fmt.Errorf("SEARCH_SELECTION_LIMIT must be at least 1, got %d", s.SelectionLimit)
	}
	return nil
}

func validateLookup(l LookupConfig) error {
	switch l.Mode {
	case LookupFixture:
		if l.FixturePath == "" {
			return fmt.Errorf("LOOKUP_FIXTURE_PATH is required when LOOKUP_MODE=fixture")
		}
	case LookupScrape:
		if l.BaseURL == "" {
			return fmt.Errorf("LOOKUP_BASE_URL is required when LOOKUP_MODE=scrape")
		}
		if l.HTTPTimeout <= 0 {
			return fmt.Errorf("LOOKUP_HTTP_TIMEOUT must be positive")
		}
	default:
		return fmt.Errorf("LOOKUP_MODE must be one of: fixture, scrape; got %q", l.Mode)
	}

	if l.RatePerSecond < 0 {
		return fmt.Errorf("LOOKUP_RATE_PER_SECOND cannot be negative")
	}
	if l.RatePerSecond > 0 && l.Burst < 1 {
		return fmt.Errorf("LOOKUP_BURST must be at least 1 when rate limiting is enabled")
	}
	if l.RetryAttempts < 1 {
		return fmt.Errorf("LOOKUP_RETRY_ATTEMPTS must be at least 1, got %d", l.RetryAttempts)
	}
	if l.RetryBaseDelay < 0 || l.RetryMaxDelay < 0 {
		return fmt.Errorf("LOOKUP_RETRY delays cannot be negative")
	}
	if l.BreakerMaxFailures > 0 && l.BreakerTimeout <= 0 {
		return fmt.Errorf("LOOKUP_BREAKER_TIMEOUT must be positive when the breaker is enabled")
	}
	return nil
}

func validateStorage(s StorageConfig) error {
	switch s.Driver {
	case StorageMemory:
		if s.MemoryTTL < 0 {
			return fmt.Errorf("STORAGE_MEMORY_TTL cannot be negative")
		}
	case StorageMySQL:
		if s.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN is required when STORAGE_DRIVER=mysql")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: memory, mysql; got %q", s.Driver)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
