package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Color returns ANSI color codes for terminal output
func (l LogLevel) Color() string {
	switch l {
	case DEBUG:
		return "\033[36m" // Cyan
	case INFO:
		return "\033[38;5;195m" // Pale Blue
	case WARN:
		return "\033[33m" // Yellow
	case ERROR:
		return "\033[31m" // Red
	case FATAL:
		return "\033[35m" // Magenta
	default:
		return "\033[0m"
	}
}

const colorReset = "\033[0m"

// sink is one destination; color is only applied to terminal sinks
type sink struct {
	out   *log.Logger
	color bool
}

// Logger is a leveled logger writing to the console and, optionally, a log file
type Logger struct {
	mu     *sync.RWMutex
	level  *LogLevel
	prefix string
	sinks  []sink
	exit   func(int)
}

// Config holds logger configuration options
type Config struct {
	Level       string // "debug", "info", "warn", "error", "fatal"
	Output      io.Writer
	Prefix      string
	EnableColor bool
	File        io.Writer // plain text copy of every line, no colors
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Output:      os.Stdout,
		EnableColor: true,
	}
}

// ParseLevel converts a string level to LogLevel
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// OpenLogFile opens (or creates) an append-only log file named after today's
// date inside dir
func OpenLogFile(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}

// New creates a new Logger instance
func New(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	level := ParseLevel(config.Level)

	sinks := []sink{{out: log.New(config.Output, "", 0), color: config.EnableColor}}
	if config.File != nil {
		sinks = append(sinks, sink{out: log.New(config.File, "", 0)})
	}

	return &Logger{
		mu:     &sync.RWMutex{},
		level:  &level,
		prefix: config.Prefix,
		sinks:  sinks,
		exit:   os.Exit,
	}
}

// SetLevel sets the minimum log level for this logger and every logger derived from it
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.level = level
}

// IsLevelEnabled checks if the given level is enabled
func (l *Logger) IsLevelEnabled(level LogLevel) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= *l.level
}

// formatMessage formats a log line with level, timestamp and prefix
func (l *Logger) formatMessage(level LogLevel, message string, color bool) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	prefix := ""
	if l.prefix != "" {
		prefix = fmt.Sprintf("[%s] ", l.prefix)
	}

	line := fmt.Sprintf("%-5s %s %-30s%s", level.String(), timestamp, prefix, message)
	if color {
		return level.Color() + line + colorReset
	}
	return line
}

func (l *Logger) write(level LogLevel, message string) {
	if !l.IsLevelEnabled(level) {
		return
	}

	l.mu.RLock()
	for _, s := range l.sinks {
		s.out.Print(l.formatMessage(level, message, s.color))
	}
	l.mu.RUnlock()

	if level == FATAL {
		l.exit(1)
	}
}

// Debug logs a message at DEBUG level
func (l *Logger) Debug(args ...interface{}) {
	l.write(DEBUG, fmt.Sprint(args...))
}

// Debugf logs a formatted message at DEBUG level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(DEBUG, fmt.Sprintf(format, args...))
}

// Info logs a message at INFO level
func (l *Logger) Info(args ...interface{}) {
	l.write(INFO, fmt.Sprint(args...))
}

// Infof logs a formatted message at INFO level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(INFO, fmt.Sprintf(format, args...))
}

// Warn logs a message at WARN level
func (l *Logger) Warn(args ...interface{}) {
	l.write(WARN, fmt.Sprint(args...))
}

// Warnf logs a formatted message at WARN level
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(WARN, fmt.Sprintf(format, args...))
}

// Error logs a message at ERROR level
func (l *Logger) Error(args ...interface{}) {
	l.write(ERROR, fmt.Sprint(args...))
}

// Errorf logs a formatted message at ERROR level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(ERROR, fmt.Sprintf(format, args...))
}

// Fatal logs a message at FATAL level and exits the program
func (l *Logger) Fatal(args ...interface{}) {
	l.write(FATAL, fmt.Sprint(args...))
}

// Fatalf logs a formatted message at FATAL level and exits the program
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.write(FATAL, fmt.Sprintf(format, args...))
}

// WithPrefix returns a logger sharing this logger's outputs and level under a
// nested prefix, e.g. "Server:Auth"
func (l *Logger) WithPrefix(prefix string) *Logger {
	newPrefix := prefix
	if l.prefix != "" {
		newPrefix = l.prefix + ":" + prefix
	}
	return &Logger{
		mu:     l.mu,
		level:  l.level,
		prefix: newPrefix,
		sinks:  l.sinks,
		exit:   l.exit,
	}
}

// levelWriter adapts a Logger to io.Writer at a fixed level
type levelWriter struct {
	logger *Logger
	level  LogLevel
}

func (w levelWriter) Write(p []byte) (int, error) {
	w.logger.write(w.level, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// StdLogger returns a standard library logger that writes through l at level,
// for APIs such as http.Server.ErrorLog
func (l *Logger) StdLogger(level LogLevel) *log.Logger {
	return log.New(levelWriter{logger: l, level: level}, "", 0)
}
