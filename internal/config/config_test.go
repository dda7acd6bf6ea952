package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "40s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Search defaults
	assert.Equal(t, 10, cfg.Search.MaxConcurrency)
	assert.Equal(t, "30s", cfg.Search.GlobalTimeout.String())
	assert.Equal(t, "10s", cfg.Search.PerDateTimeout.String())
	assert.Equal(t, 3, cfg.Search.SelectionLimit)

	// Lookup defaults
	assert.Equal(t, LookupFixture, cfg.Lookup.Mode)
	assert.Equal(t, "docs/response-mock/flights.json", cfg.Lookup.FixturePath)
	assert.Equal(t, "INR", cfg.Lookup.Currency)
	assert.Equal(t, 3, cfg.Lookup.RetryAttempts)
	assert.Equal(t, uint32(5), cfg.Lookup.BreakerMaxFailures)

	// Storage defaults
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "24h0m0s", cfg.Storage.MemoryTTL.String())

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":             "3000",
		"SERVER_WRITE_TIMEOUT":    "1m",
		"SEARCH_MAX_CONCURRENCY":  "4",
		"SEARCH_GLOBAL_TIMEOUT":   "20s",
		"SEARCH_PER_DATE_TIMEOUT": "5s",
		"LOOKUP_MODE":             "scrape",
		"LOOKUP_CURRENCY":         "USD",
		"LOOKUP_RATE_PER_SECOND":  "2.5",
		"STORAGE_DRIVER":          "mysql",
		"MYSQL_DSN":               "user:pass@tcp(localhost:3306)/flygpt",
		"LOG_LEVEL":               "debug",
		"LOG_FORMAT":              "console",
		"APP_ENV":                 "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "1m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, 4, cfg.Search.MaxConcurrency)
	assert.Equal(t, "20s", cfg.Search.GlobalTimeout.String())
	assert.Equal(t, "5s", cfg.Search.PerDateTimeout.String())
	assert.Equal(t, LookupScrape, cfg.Lookup.Mode)
	assert.Equal(t, "USD", cfg.Lookup.Currency)
	assert.InDelta(t, 2.5, cfg.Lookup.RatePerSecond, 1e-9)
	assert.Equal(t, StorageMySQL, cfg.Storage.Driver)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/flygpt", cfg.Storage.MySQLDSN)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"valid port 1", "1", false},
		{"valid port 8080", "8080", false},
		{"valid port 65535", "65535", false},
		{"invalid port 0", "0", true},
		{"invalid port negative", "-1", true},
		{"invalid port too high", "65536", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "SERVER_PORT must be between 1 and 65535")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_Search tests search limits and timeouts.
func TestLoad_Validation_Search(t *testing.T) {
	tests := []struct {
		name   string
		vars   map[string]string
		errMsg string
	}{
		{"zero concurrency", map[string]string{"SEARCH_MAX_CONCURRENCY": "0"}, "SEARCH_MAX_CONCURRENCY must be at least 1"},
		{"zero global timeout", map[string]string{"SEARCH_GLOBAL_TIMEOUT": "0s"}, "SEARCH_GLOBAL_TIMEOUT must be positive"},
		{"negative per-date timeout", map[string]string{"SEARCH_PER_DATE_TIMEOUT": "-1s"}, "SEARCH_PER_DATE_TIMEOUT must be positive"},
		{"per-date above global", map[string]string{
			"SEARCH_GLOBAL_TIMEOUT":   "5s",
			"SEARCH_PER_DATE_TIMEOUT": "6s",
		}, "should not exceed SEARCH_GLOBAL_TIMEOUT"},
		{"zero selection limit", map[string]string{"SEARCH_SELECTION_LIMIT": "0"}, "SEARCH_SELECTION_LIMIT must be at least 1"},
		{"write timeout below search", map[string]string{"SERVER_WRITE_TIMEOUT": "30s"}, "should be greater than SEARCH_GLOBAL_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_Lookup tests lookup mode and resilience settings.
func TestLoad_Validation_Lookup(t *testing.T) {
	tests := []struct {
		name   string
		vars   map[string]string
		errMsg string
	}{
		{"unknown mode", map[string]string{"LOOKUP_MODE": "serpapi"}, "LOOKUP_MODE must be one of"},
		{"negative rate", map[string]string{"LOOKUP_RATE_PER_SECOND": "-1"}, "LOOKUP_RATE_PER_SECOND cannot be negative"},
		{"zero burst with rate", map[string]string{"LOOKUP_BURST": "0"}, "LOOKUP_BURST must be at least 1"},
		{"zero attempts", map[string]string{"LOOKUP_RETRY_ATTEMPTS": "0"}, "LOOKUP_RETRY_ATTEMPTS must be at least 1"},
		{"breaker without timeout", map[string]string{"LOOKUP_BREAKER_TIMEOUT": "0s"}, "LOOKUP_BREAKER_TIMEOUT must be positive"},
		{"scrape without http timeout", map[string]string{
			"LOOKUP_MODE":         "scrape",
			"LOOKUP_HTTP_TIMEOUT": "0s",
		}, "LOOKUP_HTTP_TIMEOUT must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Lookup_DisabledLimits tests that a zero rate and zero breaker
// failures switch those layers off without further checks.
func TestLoad_Lookup_DisabledLimits(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"LOOKUP_RATE_PER_SECOND":      "0",
		"LOOKUP_BURST":                "0",
		"LOOKUP_BREAKER_MAX_FAILURES": "0",
		"LOOKUP_BREAKER_TIMEOUT":      "0s",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Lookup.RatePerSecond)
	assert.Zero(t, cfg.Lookup.BreakerMaxFailures)
}

// TestLoad_Validation_Storage tests storage driver validation.
func TestLoad_Validation_Storage(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{"memory", map[string]string{"STORAGE_DRIVER": "memory"}, ""},
		{"mysql with dsn", map[string]string{"STORAGE_DRIVER": "mysql", "MYSQL_DSN": "root@/flygpt"}, ""},
		{"mysql without dsn", map[string]string{"STORAGE_DRIVER": "mysql"}, "MYSQL_DSN is required"},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "redis"}, "STORAGE_DRIVER must be one of"},
		{"negative ttl", map[string]string{"STORAGE_MEMORY_TTL": "-1h"}, "STORAGE_MEMORY_TTL cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogFormatAndEnv tests log format and app env validation.
func TestLoad_Validation_LogFormatAndEnv(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"LOG_FORMAT": "text"})
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT must be one of")

	clearEnvVars(t)
	setEnvVars(t, map[string]string{"APP_ENV": "local"})
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_ENV must be one of")
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

func TestConfig_EnvHelpers(t *testing.T) {
	tests := []struct {
		env         string
		development bool
		production  bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.development, cfg.IsDevelopment())
			assert.Equal(t, tt.production, cfg.IsProduction())
		})
	}
}

// Helper functions

var configEnvVars = []string{
	"SERVER_PORT",
	"SERVER_READ_TIMEOUT",
	"SERVER_WRITE_TIMEOUT",
	"SEARCH_MAX_CONCURRENCY",
	"SEARCH_GLOBAL_TIMEOUT",
	"SEARCH_PER_DATE_TIMEOUT",
	"SEARCH_SELECTION_LIMIT",
	"LOOKUP_MODE",
	"LOOKUP_FIXTURE_PATH",
	"LOOKUP_BASE_URL",
	"LOOKUP_LANGUAGE",
	"LOOKUP_CURRENCY",
	"LOOKUP_USER_AGENT",
	"LOOKUP_HTTP_TIMEOUT",
	"LOOKUP_RATE_PER_SECOND",
	"LOOKUP_BURST",
	"LOOKUP_RETRY_ATTEMPTS",
	"LOOKUP_RETRY_BASE_DELAY",
	"LOOKUP_RETRY_MAX_DELAY",
	"LOOKUP_BREAKER_MAX_FAILURES",
	"LOOKUP_BREAKER_TIMEOUT",
	"STORAGE_DRIVER",
	"MYSQL_DSN",
	"STORAGE_MEMORY_TTL",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"APP_ENV",
}

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables and unsets them when the test ends.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
	t.Cleanup(func() {
		for k := range vars {
			os.Unsetenv(k)
		}
	})
}
