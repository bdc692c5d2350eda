// Package logger provides the structured loggers used across the tool.
//
// It is a thin factory over log/slog: a text logger for interactive use on
// stderr (stdout belongs to command output), a JSON logger for scripted
// use, and a no-op logger as the default for library code that was not
// handed one.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a text-formatted logger writing to stderr at the given level.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSON creates a JSON-formatted logger writing to stderr at the given
// level, for use when output is collected by other tooling.
func NewJSON(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
