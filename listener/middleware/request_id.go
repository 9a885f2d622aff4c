package middleware

import (
	"context"
	"net/http"

	"github.com/oklog/ulid/v2"
)

const (
	// RequestIDHeader is the HTTP header used for request IDs.
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 256
)

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{} //nolint:gochecknoglobals

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	val, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}

	return val
}

// RequestID assigns every request an ID, stored in the context and echoed in the
// X-Request-ID response header. A client-supplied header is reused when it is
// printable ASCII of at most 256 bytes; otherwise a new ULID is generated.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = ulid.Make().String()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < 0x20 || id[i] > 0x7E {
			return false
		}
	}

	return true
}
