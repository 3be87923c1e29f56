// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/mate/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger  *slog.Logger
	mu      sync.RWMutex
	output  io.Writer
	verbose bool
}

// New creates a new Logger instance writing to stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// rebuild swaps in a handler matching the current output and level.
// Callers must hold the write lock or have exclusive access.
func (l *Logger) rebuild() {
	level := slog.LevelInfo
	if l.verbose {
		level = slog.LevelDebug
	}

	handler := NewPrettyHandler(l.output, &slog.HandlerOptions{
		Level: level,
	})
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination.
// This is thread-safe and updates the underlying slog handler.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetVerbose toggles debug-level logging.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetVerbose(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.verbose = enable
	l.rebuild()
}

// Debug logs a debug message. Suppressed unless verbose mode is enabled.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain rendered hierarchically.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	l.logger.Error(formatErrorChain(collectErrorMessages(err)))
}
