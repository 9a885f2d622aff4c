// Package listener runs the HTTP server that fronts the config lookup API inside an Fx app.
package listener

import (
	"errors"
	"time"
)

// DefaultAddress is the address the listener binds when none is configured.
const DefaultAddress = ":20490"

// DefaultReadHeaderTimeout bounds how long a client may take to send request headers.
const DefaultReadHeaderTimeout = 10 * time.Second

var (
	// ErrEmptyAddress is returned when the address is empty.
	ErrEmptyAddress = errors.New("address must not be empty")
	// ErrListenFailed is returned when the server fails to listen on the configured address.
	ErrListenFailed = errors.New("failed to listen")
	// ErrShutdownFailed is returned when the server fails to shut down gracefully.
	ErrShutdownFailed = errors.New("shutdown failed")
	// ErrEmptyName is returned when the listener name is empty.
	ErrEmptyName = errors.New("listener name must not be empty")
	// ErrNilHandler is returned when a nil http.Handler is provided.
	ErrNilHandler = errors.New("handler must not be nil")
	// ErrNegativeTimeout is returned when ReadHeaderTimeout is negative.
	ErrNegativeTimeout = errors.New("read header timeout must not be negative")
)

// Config holds the configuration for an HTTP listener.
type Config struct {
	Address           string
	ReadHeaderTimeout time.Duration
}

// SetDefaults fills empty fields.
func (c *Config) SetDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}

	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if c.ReadHeaderTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}
