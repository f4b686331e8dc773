package system

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Logger writes to stdout and a daily-rotated file in logDir
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	entry  *log.Logger
	logDir string
	prefix string
	date   string
	now    func() time.Time
}

// Global logger instance
var globalLogger *Logger

// InitLogger initializes the global logger
func InitLogger(logDir string) error {
	l, err := NewLogger(logDir, "roster")
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

// NewLogger creates a Logger writing prefix-YYYY-MM-DD.log files in logDir
func NewLogger(logDir, prefix string) (*Logger, error) {
	if logDir == "" {
		logDir = "./logs"
	}

	// Create log directory if not exists
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{
		logDir: logDir,
		prefix: prefix,
		now:    time.Now,
		entry:  log.New(),
	}
	l.entry.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	if err := l.rotateIfNeeded(); err != nil {
		return nil, err
	}
	return l, nil
}

// rotateIfNeeded checks if log rotation is needed (daily)
func (l *Logger) rotateIfNeeded() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.now().Format("2006-01-02")
	if l.date == today && l.file != nil {
		return nil
	}

	// Close old file
	if l.file != nil {
		l.file.Close()
	}

	logPath := filepath.Join(l.logDir, fmt.Sprintf("%s-%s.log", l.prefix, today))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = file
	l.entry.SetOutput(io.MultiWriter(os.Stdout, file))
	l.date = today

	return nil
}

// WithFields returns a structured entry bound to this logger
func (l *Logger) WithFields(fields log.Fields) *log.Entry {
	_ = l.rotateIfNeeded()
	return l.entry.WithFields(fields)
}

// Log writes a formatted entry at level
func (l *Logger) Log(level log.Level, format string, args ...interface{}) {
	_ = l.rotateIfNeeded()
	l.entry.Logf(level, format, args...)
}

// Close closes the current log file
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}

// Package-level logging functions

// Info logs an info message
func Info(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Log(log.InfoLevel, format, args...)
	} else {
		log.Infof(format, args...)
	}
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Log(log.WarnLevel, format, args...)
	} else {
		log.Warnf(format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Log(log.ErrorLevel, format, args...)
	} else {
		log.Errorf(format, args...)
	}
}

// WithFields returns a structured entry on the global logger
func WithFields(fields log.Fields) *log.Entry {
	if globalLogger != nil {
		return globalLogger.WithFields(fields)
	}
	return log.WithFields(fields)
}

// Close closes the logger
func Close() {
	if globalLogger != nil {
		globalLogger.Close()
	}
}
