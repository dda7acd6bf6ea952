package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "flygpt-test"}, &buf)
	log.Info().Msg("search started")

	result := decode(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "search started", result["message"])
	assert.Equal(t, "flygpt-test", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewWithOutput_Console(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "flygpt-test"}, &buf)
	log.Info().Msg("search started")

	assert.Contains(t, buf.String(), "search started")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		emit      func(*Logger)
		shouldLog bool
	}{
		{"debug at debug", "debug", func(l *Logger) { l.Debug().Msg("x") }, true},
		{"debug at info", "info", func(l *Logger) { l.Debug().Msg("x") }, false},
		{"warn at info", "info", func(l *Logger) { l.Warn().Msg("x") }, true},
		{"info at warn", "warn", func(l *Logger) { l.Info().Msg("x") }, false},
		{"error at error", "error", func(l *Logger) { l.Error().Msg("x") }, true},
		{"unknown level falls back to info", "verbose", func(l *Logger) { l.Info().Msg("x") }, true},
		{"empty level falls back to info", "", func(l *Logger) { l.Debug().Msg("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(NewWithOutput(Config{Level: tt.level, Format: "json"}, &buf))

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewWithOutput_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)
	log.Info().Msg("x")

	result := decode(t, &buf)
	require.Contains(t, result, "caller")
	assert.Contains(t, result["caller"].(string), "logger_test.go")
}

func TestLogger_ContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	log.WithSearchID("s-1").WithDate("2025-05-01").WithLookup("fixture").Info().Msg("fetched")

	result := decode(t, &buf)
	assert.Equal(t, "s-1", result["search_id"])
	assert.Equal(t, "2025-05-01", result["date"])
	assert.Equal(t, "fixture", result["lookup"])
}

func TestFromZerolog(t *testing.T) {
	var buf bytes.Buffer
	log := FromZerolog(zerolog.New(&buf))
	log.WithContext("k", "v").Info().Msg("x")

	assert.Equal(t, "v", decode(t, &buf)["k"])
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.EnableCaller)
	assert.Equal(t, "flygpt", cfg.ServiceName)
}

func TestGlobal(t *testing.T) {
	t.Cleanup(func() { global = nil })

	global = nil
	assert.NotNil(t, L())

	var buf bytes.Buffer
	SetGlobal(NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "global"}, &buf))
	L().Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "global")
}
