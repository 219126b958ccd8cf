// Package logging provides file-based logging for taskdeck.
// Entries are appended to taskdeck.log in the data directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/taskdeck/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// LogFileName is the name of the log file inside the data directory.
const LogFileName = "taskdeck.log"

// Logger writes leveled, timestamped entries to a single log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file  *os.File
	dir   string
	mu    sync.Mutex
	level slog.Level
}

// New creates a new Logger that writes into dir.
// If dir is empty, logging is disabled (returns a no-op logger).
func New(dir string, level slog.Level) *Logger {
	return &Logger{
		dir:   dir,
		level: level,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file, nil
	}

	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(l.dir, LogFileName)
	// G302: Log files are append-only and need read access by the owner's tools
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatEntry formats a log entry in the specified format.
// Format: [2025-12-30 09:32:51] [INFO] [category] message
func formatEntry(t time.Time, level slog.Level, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes a log entry if the level passes the configured threshold.
func (l *Logger) log(level slog.Level, category, msg string) {
	if l.dir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return // Skip if below minimum level
	}

	entry := formatEntry(time.Now(), level, category, msg)
	if f, err := l.ensureFile(); err == nil {
		_, _ = io.WriteString(f, entry)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(category, msg string) {
	l.log(slog.LevelDebug, category, msg)
}

// Info logs an info message.
func (l *Logger) Info(category, msg string) {
	l.log(slog.LevelInfo, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, msg string) {
	l.log(slog.LevelWarn, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(category, msg string) {
	l.log(slog.LevelError, category, msg)
}
