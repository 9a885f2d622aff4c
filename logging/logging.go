package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Logger is the diagnostic capability injected into core components.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(config.Level),
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a level name to slog.Level, case-insensitively.
// Unknown names map to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether level is one of the names ParseLevel recognises.
func ValidLevel(level string) bool {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
		return true
	default:
		return false
	}
}
