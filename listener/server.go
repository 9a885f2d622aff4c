package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
)

// Server manages an HTTP server lifecycle.
type Server struct {
	name       string
	config     Config
	server     *http.Server
	listener   net.Listener
	logger     *slog.Logger
	onServeErr func()
}

// NewServer validates cfg and prepares an http.Server for handler.
// onServeErr, if non-nil, runs when the background Serve loop fails.
func NewServer(name string, handler http.Handler, cfg Config, logger *slog.Logger, onServeErr func()) (*Server, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if handler == nil {
		return nil, ErrNilHandler
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		name:   name,
		config: cfg,
		server: &http.Server{ //nolint:exhaustruct // only relevant fields needed
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		listener:   nil,
		logger:     logger.With("listener", name),
		onServeErr: onServeErr,
	}, nil
}

// Addr returns the bound address once Start has succeeded, otherwise the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.config.Address
}

// Start begins listening on TCP and serves HTTP requests in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	listenCfg := net.ListenConfig{} //nolint:exhaustruct // zero-value defaults are fine

	listener, err := listenCfg.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("failed to listen", "address", s.server.Addr, "error", err)

		return fmt.Errorf("%w: %w", ErrListenFailed, err)
	}

	s.listener = listener

	s.logger.Info("starting HTTP listener", "address", listener.Addr().String())

	go func() {
		serveErr := s.server.Serve(listener)
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			s.logger.Error("HTTP listener error", "error", serveErr)

			if s.onServeErr != nil {
				s.onServeErr()
			}
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP listener")

	err := s.server.Shutdown(ctx)
	if err != nil {
		s.logger.Error("shutdown failed", "error", err)

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	return nil
}
