// Package logging provides structured logging using Go's standard library log/slog.
// It builds JSON loggers for the server and defines the narrow Logger capability the
// resolution core depends on, so components receive their logger at construction time.
package logging
