package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// recoveryWriter tracks whether the response has been started.
type recoveryWriter struct {
	http.ResponseWriter

	written bool
}

func (w *recoveryWriter) WriteHeader(code int) {
	w.written = true

	w.ResponseWriter.WriteHeader(code)
}

func (w *recoveryWriter) Write(b []byte) (int, error) {
	w.written = true

	return w.ResponseWriter.Write(b) //nolint:wrapcheck
}

func (w *recoveryWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Recovery returns a middleware that turns a panic in a downstream handler into a
// bodyless 500. http.ErrAbortHandler is re-raised. When the response has already
// started only the log entry is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recWriter := &recoveryWriter{ResponseWriter: w, written: false}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				attrs := []any{
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}

				if reqID := GetRequestID(r.Context()); reqID != "" {
					attrs = append(attrs, slog.String("request_id", reqID))
				}

				if recWriter.written {
					logger.Error("panic recovered after response was written", attrs...)

					return
				}

				logger.Error("panic recovered", attrs...)
				recWriter.WriteHeader(http.StatusInternalServerError)
			}()

			next.ServeHTTP(recWriter, r)
		})
	}
}
