package treego

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with treego-specific helpers.
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

// WithHandle adds a handle field to the logger.
func (l *Logger) WithHandle(h Handle) *Logger {
	return &Logger{
		Logger: l.Logger.With("handle", h.String()),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(h Handle, parent Handle, err error) {
	if err != nil {
		l.Error("insert failed",
			"parent", parent.String(),
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"handle", h.String(),
			"parent", parent.String(),
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(h Handle, removed int, ok bool) {
	if !ok {
		l.Debug("remove skipped, handle is stale",
			"handle", h.String(),
		)
	} else {
		l.Debug("remove completed",
			"handle", h.String(),
			"removed", removed,
		)
	}
}

// LogMove logs an append-child (subtree relocation) operation.
func (l *Logger) LogMove(parent, child Handle, err error) {
	if err != nil {
		l.Error("append child failed",
			"parent", parent.String(),
			"child", child.String(),
			"error", err,
		)
	} else {
		l.Debug("append child completed",
			"parent", parent.String(),
			"child", child.String(),
		)
	}
}
