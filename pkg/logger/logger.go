// pkg/logger/logger.go
package logger

import (
	"context"
	"log/slog"
	"os"
)

// Log levels re-exported so callers don't import slog directly
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelError = slog.LevelError
)

// Logger emits structured JSON log entries tagged with a service name
// and an action constant (see internal/core/domain/types).
type Logger struct {
	log *slog.Logger
}

// InitLogger creates a logger for the given service
func InitLogger(service string, level slog.Level) Logger {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown-host"
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})

	return Logger{
		log: slog.New(handler).With(
			"service", service,
			"hostname", hostname,
		),
	}
}

// Debug logs a DEBUG message
func (l Logger) Debug(ctx context.Context, action, message string, args ...any) {
	l.log.DebugContext(ctx, message, append([]any{"action", action}, args...)...)
}

// Info logs an INFO message
func (l Logger) Info(ctx context.Context, action, message string, args ...any) {
	l.log.InfoContext(ctx, message, append([]any{"action", action}, args...)...)
}

// Error logs an ERROR message with the underlying error attached
func (l Logger) Error(ctx context.Context, action, message string, err error, args ...any) {
	l.log.ErrorContext(ctx, message, append([]any{"action", action, "error", err}, args...)...)
}
