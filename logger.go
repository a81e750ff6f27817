package quadtree

import (
	"context"
	"log/slog"
	"os"

	"github.com/leonidovia/UltimateQuadTree/geom"
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRect adds the bounding rectangle of a tree to the logger.
func (l *Logger) WithRect(r geom.Rect) *Logger {
	return &Logger{
		Logger: l.Logger.With("rect", r.String()),
	}
}

// LogInsert logs an accepted insert.
func (l *Logger) LogInsert(box geom.Box, count int) {
	l.Debug("insert completed",
		"left", box.Left,
		"top", box.Top,
		"count", count,
	)
}

// LogRejected logs an insert refused because the object lies outside the tree.
func (l *Logger) LogRejected(box geom.Box) {
	l.Debug("insert rejected: outside bounds",
		"left", box.Left,
		"right", box.Right,
		"top", box.Top,
		"bottom", box.Bottom,
	)
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(removed bool, count int) {
	l.Debug("remove completed",
		"removed", removed,
		"count", count,
	)
}

// LogQuarter logs a leaf split.
func (l *Logger) LogQuarter(level int, r geom.Rect) {
	l.Debug("sector quartered",
		"level", level,
		"sector", r.String(),
	)
}

// LogCollapse logs a node merged back into a leaf.
func (l *Logger) LogCollapse(level int, r geom.Rect) {
	l.Debug("sector collapsed",
		"level", level,
		"sector", r.String(),
	)
}

// LogRange logs a range insert or remove.
func (l *Logger) LogRange(op string, count, applied int, err error) {
	if err != nil {
		l.Warn(op+" stopped early",
			"total", count,
			"applied", applied,
			"error", err,
		)
	} else {
		l.Debug(op+" completed",
			"total", count,
			"applied", applied,
		)
	}
}

// LogBatch logs a batch of nearest-object queries.
func (l *Logger) LogBatch(ctx context.Context, queries, candidates int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "nearest batch failed",
			"queries", queries,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "nearest batch completed",
			"queries", queries,
			"candidates", candidates,
		)
	}
}
