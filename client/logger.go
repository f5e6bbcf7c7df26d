package client

import "github.com/rs/zerolog"

// Logger receives non-fatal diagnostics from the fallback walk.
type Logger interface {
	// Debugf logs a formatted debug message.
	Debugf(format string, args ...any)
	// Warnf logs a formatted warning message.
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}

type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger to the package Logger interface.
func NewZerologLogger(log zerolog.Logger) Logger {
	return zerologLogger{log: log}
}

func (l zerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}
