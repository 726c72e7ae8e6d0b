package bitarray

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitarray-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSize adds a size (bit count) field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithStep adds a step (generation) field to the logger.
func (l *Logger) WithStep(step int) *Logger {
	return &Logger{
		Logger: l.Logger.With("step", step),
	}
}

// LogOperation logs the outcome of a named operation on an array of size bits.
func (l *Logger) LogOperation(ctx context.Context, op string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, op+" failed",
			"size", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, op+" completed",
			"size", size,
		)
	}
}

// LogAttractor logs the result of an attractor search.
func (l *Logger) LogAttractor(ctx context.Context, steps, period int, found bool) {
	if !found {
		l.WarnContext(ctx, "no attractor found",
			"steps", steps,
		)
	} else {
		l.InfoContext(ctx, "attractor found",
			"steps", steps,
			"period", period,
		)
	}
}
