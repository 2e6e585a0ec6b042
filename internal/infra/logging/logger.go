// Package logging provides file-based logging for freewipe.
// Entries are appended to <tool dir>/logs/freewipe.log and can be mirrored
// to a slog.Logger for console diagnostics.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/freewipe/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes formatted entries to a log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file    *os.File
	mirror  *slog.Logger
	logsDir string
	now     func() time.Time
	mu      sync.Mutex
	level   slog.Level
}

// New creates a new Logger that writes to logsDir.
// If logsDir is empty, file logging is disabled.
func New(logsDir string, level slog.Level) *Logger {
	return &Logger{
		logsDir: logsDir,
		level:   level,
		now:     time.Now,
	}
}

// WithMirror also sends every entry at or above the level to m.
func (l *Logger) WithMirror(m *slog.Logger) *Logger {
	l.mirror = m
	return l
}

// Path returns the log file path.
func (l *Logger) Path() string {
	if l.logsDir == "" {
		return ""
	}
	return filepath.Join(l.logsDir, domain.LogFileName)
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

	if err := os.MkdirAll(l.logsDir, 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(l.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
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

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [C:\] [wipe] message
func formatLog(t time.Time, level slog.Level, scope, category, msg string) string {
	if scope == "" {
		scope = "global"
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
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

func (l *Logger) log(level slog.Level, scope, category, msg string) {
	if level < l.level {
		return
	}

	if l.mirror != nil {
		attrs := []any{slog.String("category", category)}
		if scope != "" {
			attrs = append(attrs, slog.String("drive", scope))
		}
		l.mirror.Log(context.Background(), level, msg, attrs...)
	}

	if l.logsDir == "" {
		return
	}
	if f, err := l.ensureFile(); err == nil {
		_, _ = io.WriteString(f, formatLog(l.now(), level, scope, category, msg))
	}
}

// Info logs an info message.
func (l *Logger) Info(scope, category, msg string) {
	l.log(slog.LevelInfo, scope, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(scope, category, msg string) {
	l.log(slog.LevelDebug, scope, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(scope, category, msg string) {
	l.log(slog.LevelWarn, scope, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(scope, category, msg string) {
	l.log(slog.LevelError, scope, category, msg)
}
