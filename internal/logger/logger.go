package logger

import (
	"io"

	"go.uber.org/zap"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New returns a logger writing to stdout at the provided level.
// Unknown levels fall back to debug.
func New(level string) *Logger {
	return stdoutLogger(level)
}

// NewWithWriter is New writing to w instead of stdout.
func NewWithWriter(level string, w io.Writer) *Logger {
	return newZapLogger(level, w)
}

// NewNop returns a logger that discards everything. Used by tests and by
// components that were constructed without a logger.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return NewNop()
	}
	return l
}
