package middleware

import (
	"context"
	"log/slog"
	"sync"
)

type logRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

type captureHandler struct {
	mu      sync.Mutex
	records []logRecord
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error { //nolint:varnamelen
	rec := logRecord{Level: r.Level, Message: r.Message, Attrs: make(map[string]any)}

	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.Any()

		return true
	})

	h.mu.Lock()
	h.records = append(h.records, rec)
	h.mu.Unlock()

	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func (h *captureHandler) snapshot() []logRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]logRecord(nil), h.records...)
}

func captureLogger() (*slog.Logger, *captureHandler) {
	h := &captureHandler{}

	return slog.New(h), h
}
