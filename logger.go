package quadtree

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with quadtree-specific helpers.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithID adds an element ID field to the logger.
func (l *Logger) WithID(id ID) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", uint32(id)),
	}
}

// WithKind adds an element kind field to the logger.
func (l *Logger) WithKind(kind Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind.String()),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(id ID, kind Kind, added bool) {
	l.Debug("insert completed",
		"id", uint32(id),
		"kind", kind.String(),
		"added", added,
	)
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(id ID, removed bool) {
	l.Debug("remove completed",
		"id", uint32(id),
		"removed", removed,
	)
}

// LogUpdate logs an update operation.
func (l *Logger) LogUpdate(id ID, updated bool) {
	l.Debug("update completed",
		"id", uint32(id),
		"updated", updated,
	)
}

// LogQuery logs a query operation.
func (l *Logger) LogQuery(op string, results int) {
	l.Debug("query completed",
		"op", op,
		"results", results,
	)
}
