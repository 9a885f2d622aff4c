package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/0xalexb/confd/logging"
	"github.com/0xalexb/confd/resolve"
)

const (
	// DefaultPrefix is the path prefix lookups are served under.
	DefaultPrefix = "/api/v1"

	healthPath  = "/health"
	infoPath    = "/info"
	metricsPath = "/metrics"
)

var (
	// ErrNilResolver is returned when NewHandler is given no resolver.
	ErrNilResolver = errors.New("resolver must not be nil")
	// ErrInvalidPrefix is returned for a prefix that does not start with a slash or ends with one.
	ErrInvalidPrefix = errors.New("prefix must start with '/' and not end with '/'")
)

// Resolver answers a lookup for a request path.
type Resolver interface {
	Resolve(requestPath string) resolve.Outcome
}

// BuildInfo is reported by /info.
type BuildInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	CompiledAt string `json:"compiled_at"`
}

// Handler routes lookup, health, info and metrics requests.
type Handler struct {
	resolver Resolver
	logger   logging.Logger
	prefix   string
	info     BuildInfo
	metrics  *Metrics
	mux      *http.ServeMux
}

// Option configures a Handler.
type Option func(*Handler)

// WithPrefix sets the lookup prefix. The default is DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(h *Handler) {
		h.prefix = prefix
	}
}

// WithBuildInfo sets the payload of /info.
func WithBuildInfo(info BuildInfo) Option {
	return func(h *Handler) {
		h.info = info
	}
}

// WithMetrics records lookups on metrics and serves them on /metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(h *Handler) {
		h.metrics = metrics
	}
}

// NewHandler creates a Handler serving lookups from resolver.
func NewHandler(resolver Resolver, logger logging.Logger, opts ...Option) (*Handler, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}

	handler := &Handler{
		resolver: resolver,
		logger:   logger,
		prefix:   DefaultPrefix,
		info:     BuildInfo{}, //nolint:exhaustruct
		metrics:  nil,
		mux:      http.NewServeMux(),
	}

	for _, apply := range opts {
		apply(handler)
	}

	if !ValidPrefix(handler.prefix) {
		return nil, ErrInvalidPrefix
	}

	handler.mux.HandleFunc("GET "+healthPath, handler.health)
	handler.mux.HandleFunc("GET "+infoPath, handler.buildInfo)

	if handler.metrics != nil {
		handler.mux.Handle("GET "+metricsPath, handler.metrics.Handler())
	}

	return handler, nil
}

// ValidPrefix reports whether prefix can serve as a lookup prefix.
func ValidPrefix(prefix string) bool {
	return len(prefix) > 1 && strings.HasPrefix(prefix, "/") && !strings.HasSuffix(prefix, "/")
}

// ServeHTTP implements http.Handler. Lookup paths bypass the mux so segments such as
// ".." or empty ones reach the resolver unchanged instead of being redirected.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestPath, ok := h.lookupPath(r.URL.Path)
	if !ok {
		h.mux.ServeHTTP(w, r)

		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)

		return
	}

	h.lookup(w, requestPath)
}

// lookupPath strips the prefix from urlPath when urlPath is the prefix or lies under it.
func (h *Handler) lookupPath(urlPath string) (string, bool) {
	if urlPath == h.prefix {
		return "", true
	}

	rest, ok := strings.CutPrefix(urlPath, h.prefix+"/")
	if !ok {
		return "", false
	}

	return "/" + rest, true
}

func (h *Handler) lookup(w http.ResponseWriter, requestPath string) {
	start := time.Now()
	outcome := h.resolver.Resolve(requestPath)
	h.metrics.Observe(outcome.Kind, time.Since(start))

	err := writeOutcome(w, outcome)
	if err != nil {
		h.logger.Error("writing response", "path", requestPath, "error", err)
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "UP"})
}

func (h *Handler) buildInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.info)
}
