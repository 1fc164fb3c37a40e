package logging

import (
	"io"
	"os"
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
	globalFile   io.Closer
)

// Initialize the global logger from LOG_LEVEL and LOG_COLOR so packages can log
// before configuration is loaded
func init() {
	globalLogger = New(Config{
		Level:       os.Getenv("LOG_LEVEL"),
		Output:      os.Stdout,
		EnableColor: os.Getenv("LOG_COLOR") != "false",
	})
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// FileConfig enables a daily log file next to the console output
type FileConfig struct {
	Enabled bool
	Dir     string
	Name    string
}

// Configure replaces the global logger. When file output is enabled the log
// file stays open until Close is called.
func Configure(config Config, file FileConfig) error {
	var closer io.Closer
	if file.Enabled {
		name := file.Name
		if name == "" {
			name = "league-history"
		}
		f, err := OpenLogFile(file.Dir, name)
		if err != nil {
			return err
		}
		config.File = f
		closer = f
	}

	logger := New(config)

	globalMu.Lock()
	previous := globalFile
	globalLogger, globalFile = logger, closer
	globalMu.Unlock()

	if previous != nil {
		previous.Close()
	}
	return nil
}

// Close releases the global log file, if any
func Close() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalFile == nil {
		return nil
	}
	err := globalFile.Close()
	globalFile = nil
	return err
}

// Debugf logs a formatted message at DEBUG level using the global logger
func Debugf(format string, args ...interface{}) {
	GetGlobalLogger().Debugf(format, args...)
}

// Info logs a message at INFO level using the global logger
func Info(args ...interface{}) {
	GetGlobalLogger().Info(args...)
}

// Infof logs a formatted message at INFO level using the global logger
func Infof(format string, args ...interface{}) {
	GetGlobalLogger().Infof(format, args...)
}

// Warnf logs a formatted message at WARN level using the global logger
func Warnf(format string, args ...interface{}) {
	GetGlobalLogger().Warnf(format, args...)
}

// Errorf logs a formatted message at ERROR level using the global logger
func Errorf(format string, args ...interface{}) {
	GetGlobalLogger().Errorf(format, args...)
}

// Fatalf logs a formatted message at FATAL level using the global logger and exits the program
func Fatalf(format string, args ...interface{}) {
	GetGlobalLogger().Fatalf(format, args...)
}

// WithPrefix returns a new logger with the specified prefix using the global logger
func WithPrefix(prefix string) *Logger {
	return GetGlobalLogger().WithPrefix(prefix)
}
