// Package logger configures the process-wide slog logger. Output goes to
// stderr so that stdout carries only the query reports.
package logger

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// SetupWriter installs the default logger writing to w.
func SetupWriter(w io.Writer, level string, format string) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// WithCommand tags ctx with the CLI command being executed.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, contextKey{}, command)
}

// FromContext returns the default logger, annotated with the command stored
// in ctx if there is one.
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()
	if command, ok := ctx.Value(contextKey{}).(string); ok {
		logger = logger.With("command", command)
	}
	return logger
}

func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
