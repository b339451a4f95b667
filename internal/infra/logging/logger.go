// Package logging provides the zerolog-backed implementation of
// domain.Logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/mtoledo/credtrack/internal/domain"
)

// Ensure Logger implements domain.Logger.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps a zerolog.Logger behind the domain port.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger writing human-readable output to w.
func New(w io.Writer, level zerolog.Level) *Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	zl := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &Logger{zl: zl}
}

// ParseLevel parses a level string, defaulting to info on unknown
// input.
func ParseLevel(levelStr string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(levelStr)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.zl.Error().Msg(msg)
}
