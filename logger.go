package collections

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with collection-specific helpers.
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
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogAdd logs a point add operation.
func (l *Logger) LogAdd(ctx context.Context, pending int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add failed",
			"pending", pending,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "add completed",
			"pending", pending,
		)
	}
}

// LogBuild logs a tree build.
func (l *Logger) LogBuild(ctx context.Context, points, depth int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"points", points,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "build completed",
			"points", points,
			"depth", depth,
			"elapsed", elapsed,
		)
	}
}

// LogNearest logs a nearest lookup.
func (l *Logger) LogNearest(ctx context.Context, found bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "nearest failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "nearest completed",
			"found", found,
		)
	}
}

// LogRange logs a range query.
func (l *Logger) LogRange(ctx context.Context, matches int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "range failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "range completed",
			"matches", matches,
		)
	}
}
