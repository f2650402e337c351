// Package logging provides structured file logging for navstack.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface the navigation core and
// the host binding log through.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string, args ...any)
	// Error logs an error message.
	Error(msg string, args ...any)
	// With returns a new logger with additional key-value pairs.
	With(args ...any) Logger
	// Shutdown flushes any buffered logs and releases resources.
	Shutdown() error
}

// Config holds logging configuration.
type Config struct {
	// Enabled determines whether logging is active.
	Enabled bool
	// Level is the minimum log level to record.
	Level string
	// Dir is the directory log files are written to. Empty means
	// {os.TempDir()}/navstack/logs.
	Dir string
	// MaxFiles is the maximum number of log files to retain.
	MaxFiles int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Enabled:  false,
		Level:    "info",
		MaxFiles: 10,
	}
}

// loggerImpl is the charmbracelet/log based implementation.
type loggerImpl struct {
	clogger *clog.Logger
	file    *os.File
	path    string
}

// Init initializes a new Logger with the given configuration.
// If cfg.Enabled is false, returns a no-op logger. It creates the log
// directory, applies file rotation, opens the log file, and configures
// the underlying logger with JSON formatting.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return nopLogger{}, nil
	}
	dir := cfg.Dir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "navstack", "logs")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := rotate(dir, cfg.MaxFiles); err != nil {
		// Non-fatal; log to stderr but continue.
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}
	fname := fmt.Sprintf("navstack_%s_PID%d.log",
		time.Now().Format("20060102_150405"), os.Getpid())
	path := filepath.Join(dir, fname)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	clogger := clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
	})
	clogger.SetFormatter(clog.JSONFormatter)
	return &loggerImpl{clogger: clogger, file: f, path: path}, nil
}

// parseLevel converts a string level to clog.Level.
func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, args ...any) { l.clogger.Debug(msg, args...) }
func (l *loggerImpl) Info(msg string, args ...any)  { l.clogger.Info(msg, args...) }
func (l *loggerImpl) Warn(msg string, args ...any)  { l.clogger.Warn(msg, args...) }
func (l *loggerImpl) Error(msg string, args ...any) { l.clogger.Error(msg, args...) }

func (l *loggerImpl) With(args ...any) Logger {
	return &loggerImpl{clogger: l.clogger.With(args...), file: l.file, path: l.path}
}

func (l *loggerImpl) Shutdown() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Path returns the full path to the log file, empty for no-op loggers.
func Path(l Logger) string {
	if impl, ok := l.(*loggerImpl); ok {
		return impl.path
	}
	return ""
}

// nopLogger discards all output.
type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (n nopLogger) With(args ...any) Logger     { return n }
func (nopLogger) Shutdown() error               { return nil }

// Nop returns a logger that discards everything. It is the default for
// controllers created without an explicit logger.
func Nop() Logger { return nopLogger{} }

// rotate removes the oldest log files in dir when the number of files
// exceeds maxFiles. Only files matching "navstack_*.log" are touched.
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var logFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "navstack_") && strings.HasSuffix(name, ".log") {
			logFiles = append(logFiles, filepath.Join(dir, name))
		}
	}
	if len(logFiles) <= maxFiles {
		return nil
	}
	sort.Slice(logFiles, func(i, j int) bool {
		info1, err1 := os.Stat(logFiles[i])
		info2, err2 := os.Stat(logFiles[j])
		if err1 != nil || err2 != nil {
			return logFiles[i] < logFiles[j]
		}
		return info1.ModTime().Before(info2.ModTime())
	})
	for i := 0; i < len(logFiles)-maxFiles; i++ {
		os.Remove(logFiles[i]) // ignore errors
	}
	return nil
}
