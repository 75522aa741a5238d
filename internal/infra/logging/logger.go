// Package logging provides file-based logging for todo.
// The TUI owns the terminal, so log entries only ever go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled entries to a single append-only file.
// The file is opened on first use.
type Logger struct {
	file      *os.File
	logger    *log.Logger
	path      string
	formatter log.Formatter
	level     log.Level
	mu        sync.Mutex
}

// New creates a new Logger writing to path.
// If path is empty, logging is disabled.
func New(path string, level log.Level, formatter log.Formatter) *Logger {
	return &Logger{
		path:      path,
		level:     level,
		formatter: formatter,
	}
}

// NewFromConfig creates a Logger from the [log] config section.
func NewFromConfig(cfg domain.LogConfig) *Logger {
	return New(cfg.File, ParseLevel(cfg.Level), ParseFormatter(cfg.Format))
}

// ParseLevel parses a log level string.
func ParseLevel(levelStr string) log.Level {
	switch levelStr {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a log format string.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// ensureLogger opens the log file and builds the underlying logger.
func (l *Logger) ensureLogger() (*log.Logger, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logger != nil {
		return l.logger, nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	l.logger = log.NewWithOptions(f, log.Options{
		Level:           l.level,
		Formatter:       l.formatter,
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Prefix:          "todo",
	})
	return l.logger, nil
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
	l.logger = nil
	return err
}

// write sends one entry to the log file.
// Errors opening the file are swallowed; logging never breaks the board.
func (l *Logger) write(level log.Level, category, msg string) {
	if l.path == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	logger, err := l.ensureLogger()
	if err != nil {
		return
	}
	logger.Log(level, msg, "category", category)
}

// Debug logs a debug message.
func (l *Logger) Debug(category, msg string) {
	l.write(log.DebugLevel, category, msg)
}

// Info logs an info message.
func (l *Logger) Info(category, msg string) {
	l.write(log.InfoLevel, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, msg string) {
	l.write(log.WarnLevel, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(category, msg string) {
	l.write(log.ErrorLevel, category, msg)
}
