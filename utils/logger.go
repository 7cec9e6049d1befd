package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Log levels, in increasing severity.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger wraps the standard logger with file output and a level floor.
type Logger struct {
	*log.Logger
	file  *os.File
	level int
}

// NewLogger creates a logger that writes to both console and a
// timestamped file under logDir. level names one of debug, info, warn
// or error; anything below it is dropped.
func NewLogger(logDir, level string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("manglefuzz_%s.log", timestamp))

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	lvl, err := parseLevel(level)
	if err != nil {
		file.Close()
		return nil, err
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	return &Logger{
		Logger: log.New(multiWriter, "", log.LstdFlags),
		file:   file,
		level:  lvl,
	}, nil
}

func parseLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// logWithCaller logs a message with caller information.
func (l *Logger) logWithCaller(lvl int, name, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	message := fmt.Sprintf(format, v...)
	if _, file, line, ok := runtime.Caller(2); ok {
		l.Printf("%-20s [%s] %s", fmt.Sprintf("%s:%d:", filepath.Base(file), line), name, message)
	} else {
		l.Printf("%-20s [%s] %s", "", name, message)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logWithCaller(LevelDebug, "DEBUG", format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.logWithCaller(LevelInfo, "INFO", format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logWithCaller(LevelWarn, "WARN", format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.logWithCaller(LevelError, "ERROR", format, v...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logWithCaller(LevelError, "FATAL", format, v...)
	os.Exit(1)
}
