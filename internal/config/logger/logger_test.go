package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logpanel/internal/config"
)

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		expected zerolog.Level
	}{
		{name: "Default", expected: zerolog.InfoLevel},
		{name: "Debug level", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Warn level and json format", level: WarnLevel, format: JSONFormat, expected: zerolog.WarnLevel},
		{name: "Error level", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Trace level", level: TraceLevel, expected: zerolog.TraceLevel},
		{name: "Unknown level falls back to info", level: "loud", expected: zerolog.InfoLevel},
		{name: "Unknown format", format: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			logger := NewLogger(cfg)

			appLogger, ok := logger.(*AppLogger)
			require.True(t, ok)
			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
		})
	}
}

func Test_NewLogger_FillsEmptyConfig(t *testing.T) {
	cfg := &config.Config{}

	NewLogger(cfg)

	assert.Equal(t, InfoLevel, cfg.Logging.Level)
	assert.Equal(t, ConsoleFormat, cfg.Logging.Format)
}

func Test_Logger_WithComponent(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = DebugLevel

	logger := NewLoggerWithOutput(cfg, &buf).WithComponent("PANEL")
	logger.Warn().Msg("attached")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "PANEL", entry["component"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "attached", entry["message"])
	assert.Equal(t, config.Version, entry["version"])
}

func Test_Logger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = ErrorLevel

	logger := NewLoggerWithOutput(cfg, &buf)
	logger.Debug().Msg("debug")
	logger.Info().Msg("info")
	logger.Warn().Msg("warn")

	assert.Empty(t, buf.String())

	logger.Error().Msg("error")
	assert.Contains(t, buf.String(), "error")
}

func Test_NewWriter(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, &buf, newWriter(JSONFormat, &buf))

	_, ok := newWriter(ConsoleFormat, &buf).(zerolog.ConsoleWriter)
	assert.True(t, ok)
}
