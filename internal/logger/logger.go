// Package logger provides verbose logging for convert-hex.
// When verbose mode is enabled via the --verbose flag, parse and emit
// progress is logged to stderr through a log/slog text handler. Converted
// records never go through this package.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	handler = newHandler(os.Stderr)
)

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	handler = newHandler(w)
}

func logf(level slog.Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	// A zero time keeps the handler from writing a timestamp.
	rec := slog.NewRecord(time.Time{}, level, fmt.Sprintf(format, args...), 0)
	_ = handler.Handle(context.Background(), rec)
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

// Section logs a section header if verbose mode is enabled.
func Section(name string) {
	logf(slog.LevelInfo, "=== %s ===", name)
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

// Warn logs a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}
