package confd

import (
	"io"

	"github.com/0xalexb/confd/listener"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithHTTPListener adds a named HTTP listener module. It serves the http.Handler
// tagged with the same name.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithServer adds the config server described by settings.
func WithServer(settings Settings) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, ServerModule(settings))
	}
}

// WithLogLevel sets the log level: "debug", "info", "warn" or "error".
// Anything else falls back to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogOutput redirects the application log. The default is stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
