package confd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/0xalexb/confd/api"
	"github.com/0xalexb/confd/logging"
)

const (
	// DefaultRoot is the config root used when none is configured.
	DefaultRoot = "config"
	// DefaultAddress is the listen address used when none is configured.
	DefaultAddress = ":20490"
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
	// DefaultAPIPrefix is the URL prefix under which lookups are served.
	DefaultAPIPrefix = "/api/v1"
	// DefaultRequestTimeout bounds the handling time of a single request.
	DefaultRequestTimeout = "30s"
)

var (
	// ErrRootNotDirectory is returned when the configured root is not a directory.
	ErrRootNotDirectory = errors.New("root is not a directory")
	// ErrInvalidPrefix is returned for an API prefix that is not of the form /a/b.
	ErrInvalidPrefix = errors.New("api prefix must start with / and not end with /")
	// ErrInvalidLogLevel is returned for unknown log level names.
	ErrInvalidLogLevel = errors.New("unknown log level")
	// ErrInvalidTimeout is returned for unparsable or non-positive request timeouts.
	ErrInvalidTimeout = errors.New("request timeout must be a positive duration")
)

// Settings configures the config server.
type Settings struct {
	Root           string `yaml:"root"`
	Address        string `yaml:"address"`
	LogLevel       string `yaml:"log_level"`
	APIPrefix      string `yaml:"api_prefix"`
	RequestTimeout string `yaml:"request_timeout"`
}

// SetDefaults fills empty fields.
func (s *Settings) SetDefaults() bool {
	changed := false

	for _, field := range []struct {
		target *string
		value  string
	}{
		{&s.Root, DefaultRoot},
		{&s.Address, DefaultAddress},
		{&s.LogLevel, DefaultLogLevel},
		{&s.APIPrefix, DefaultAPIPrefix},
		{&s.RequestTimeout, DefaultRequestTimeout},
	} {
		if *field.target == "" {
			*field.target = field.value
			changed = true
		}
	}

	return changed
}

// Validate checks that the root exists and the remaining fields are well formed.
func (s *Settings) Validate() error {
	info, err := os.Stat(s.Root)
	if err != nil {
		return fmt.Errorf("root %q: %w", s.Root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrRootNotDirectory, s.Root)
	}

	if !api.ValidPrefix(s.APIPrefix) {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, s.APIPrefix)
	}

	if !logging.ValidLevel(s.LogLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.LogLevel)
	}

	_, err = s.Timeout()
	if err != nil {
		return err
	}

	return nil
}

// Timeout parses RequestTimeout.
func (s *Settings) Timeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(s.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTimeout, err)
	}

	if timeout <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, s.RequestTimeout)
	}

	return timeout, nil
}
