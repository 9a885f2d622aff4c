package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/confd/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "info"}, &buf)
	logger.Info("path resolved", slog.String("filename", "library.json"))

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "path resolved", entry["msg"])
	assert.Equal(t, "library.json", entry["filename"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestNewLogger_Threshold(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		configLevel string
		enabled     []slog.Level
		disabled    []slog.Level
	}{
		{"debug", []slog.Level{slog.LevelDebug, slog.LevelError}, nil},
		{"info", []slog.Level{slog.LevelInfo}, []slog.Level{slog.LevelDebug}},
		{"warning", []slog.Level{slog.LevelWarn}, []slog.Level{slog.LevelInfo}},
		{"ERROR", []slog.Level{slog.LevelError}, []slog.Level{slog.LevelWarn}},
		{"", []slog.Level{slog.LevelInfo}, []slog.Level{slog.LevelDebug}},
		{"verbose", []slog.Level{slog.LevelInfo}, []slog.Level{slog.LevelDebug}},
	}

	for _, testCase := range testCases {
		t.Run("level "+testCase.configLevel, func(t *testing.T) {
			t.Parallel()

			logger := logging.NewLogger(logging.LoggerConfig{Level: testCase.configLevel}, &bytes.Buffer{})

			for _, level := range testCase.enabled {
				assert.True(t, logger.Enabled(context.Background(), level), "%s should be enabled", level)
			}

			for _, level := range testCase.disabled {
				assert.False(t, logger.Enabled(context.Background(), level), "%s should be disabled", level)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logging.ParseLevel(" Debug "))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("nonsense"))
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "INFO", "warn", "warning", "error"} {
		assert.True(t, logging.ValidLevel(level), level)
	}

	for _, level := range []string{"", "trace", "fatal"} {
		assert.False(t, logging.ValidLevel(level), level)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	var logger logging.Logger = logging.Discard()

	assert.NotPanics(t, func() {
		logger.Debug("dropped")
		logger.Error("dropped", "error", "boom")
	})
}
