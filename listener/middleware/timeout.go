package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Timeout returns a middleware that answers 503 when the handler runs past duration.
// A non-positive duration falls back to 30s.
func Timeout(duration time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	if duration <= 0 {
		logger.Warn("middleware: timeout must be positive, using default",
			"provided", duration, "default", defaultTimeout)

		duration = defaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, duration, "Service Unavailable")
	}
}
