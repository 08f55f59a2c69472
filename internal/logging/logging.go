// Package logging provides the shared, structured logger for notestats.
//
// It wraps the standard library's [log/slog] package behind a single
// initialization point so every component shares one handler and level.
// Two environment variables control output at startup:
//
//	NOTESTATS_LOG_LEVEL   debug, info, warn, error (default: info)
//	NOTESTATS_LOG_FORMAT  text or json (default: text)
//
// Usage:
//
//	log := logging.New("config")       // logger tagged with component="config"
//	log.Info("loaded config", "path", p)
//	log.Error("failed to save", "error", err)
//
// All output is written to stderr: stdout belongs to the terminal UI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	// initLogger ensures the base logger is created exactly once across all
	// goroutines, even if multiple components call New concurrently.
	initLogger sync.Once

	// baseLogger is the singleton shared by all components.
	// Component-specific loggers are derived from it via With().
	baseLogger *slog.Logger
)

// New returns a structured logger scoped to the given component name.
//
// The component name is added as a "component" attribute to every entry the
// returned logger produces, so log output can be filtered by subsystem
// (e.g. "app", "config", "watcher"). An empty component returns the base
// logger unchanged. The base logger is lazily initialized on first call
// from the NOTESTATS_LOG_LEVEL and NOTESTATS_LOG_FORMAT environment
// variables and reused afterwards.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(newHandler(
			os.Stderr,
			os.Getenv("NOTESTATS_LOG_FORMAT"),
			os.Getenv("NOTESTATS_LOG_LEVEL"),
		))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// newHandler builds the slog handler for the requested format and level.
// "json" selects the JSON handler; anything else falls back to text.
func newHandler(w io.Writer, format, level string) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.ToLower(strings.TrimSpace(format)) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLevel converts a human-readable log level string to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "info"            → slog.LevelInfo
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo (the default)
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
