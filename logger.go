package refstore

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with storage-specific context.
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

// NoopLogger creates a Logger that discards all log output.
// It is the default for every constructor in this module: storage failures
// here are non-fatal, and an embedding application opts into visibility.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLibrary adds a library field to the logger.
func (l *Logger) WithLibrary(lib LibraryID) *Logger {
	return &Logger{
		Logger: l.Logger.With("library", lib.String()),
	}
}

// LogMkdir logs a directory creation failure. Creation failures are not
// surfaced to callers; the write that follows fails naturally instead.
func (l *Logger) LogMkdir(path string, err error) {
	if err != nil {
		l.Warn("directory creation failed",
			"path", path,
			"error", err,
		)
	}
}

// LogSave logs the outcome of persisting a named blob.
func (l *Logger) LogSave(name string, err error) {
	if err != nil {
		l.Error("save failed, keeping in-memory state",
			"name", name,
			"error", err,
		)
	} else {
		l.Debug("save completed",
			"name", name,
		)
	}
}

// LogLoad logs a load that degraded to absent.
func (l *Logger) LogLoad(name string, err error) {
	l.Warn("load degraded to absent",
		"name", name,
		"error", err,
	)
}
