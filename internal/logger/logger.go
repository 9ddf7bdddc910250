// Package logger provides a thin wrapper around zerolog.Logger used for the
// diagnostics dotconf writes while reading schema and configuration files.
//
// Log output goes to the writer passed to New, stderr in the CLI, so that
// the rendered document on stdout stays machine readable.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API (Debug, Info, Warn,
// Error) directly on *Logger.
type Logger struct {
	zerolog.Logger
}

// Levels lists the level names accepted by ParseLevel.
var Levels = []string{"debug", "info", "warn", "error", "disabled"}

// ParseLevel converts a level name into a zerolog.Level.
// An empty name selects the warn level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return zerolog.WarnLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off", "none":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q, must be one of: %s", name, strings.Join(Levels, ", "))
	}
}

// New constructs a *Logger writing human-readable lines to w at the given
// level. The timestamp is omitted; a dotconf run is too short for it to
// carry information.
func New(w io.Writer, level zerolog.Level, noColor bool) *Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}

	return &Logger{zerolog.New(console).Level(level).With().Logger()}
}

// Nop returns a *Logger that discards all log output.
// It is intended for tests and library callers that do not want
// diagnostics.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithField returns a child logger carrying an extra string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}
