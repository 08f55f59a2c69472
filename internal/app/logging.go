package app

import (
	"log/slog"

	"github.com/aferrant/notestats/internal/logging"
)

// appLog is the package-level structured logger for the app package, tagged
// with component="app". Output goes to stderr so it never interferes with
// the Bubble Tea UI on stdout; the level is controlled by the
// NOTESTATS_LOG_LEVEL environment variable.
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// simultaneously logs a structured error entry with full context. The status
// parameter is displayed verbatim in the UI; err and any additional slog-style
// key-value attrs appear only in the log entry.
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
