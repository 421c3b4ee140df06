package log

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"onebuttonprompt/internal/core"
)

// LogLevel defines the severity level for log messages.
type LogLevel int

// Log level constants.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelPrefixes = map[LogLevel]string{
	DEBUG: "[DEBUG] ",
	INFO:  "[INFO] ",
	WARN:  "[WARN] ",
	ERROR: "[ERROR] ",
	FATAL: "[FATAL] ",
}

// AppLogger is the application logger implementation.
type AppLogger struct {
	logger     *log.Logger
	debug      bool
	fileHandle *os.File
	mu         sync.RWMutex
}

// NewAppLoggerWithConfig creates a logger writing to output.
func NewAppLoggerWithConfig(output io.Writer, debugMode bool) *AppLogger {
	return &AppLogger{
		logger: log.New(output, "", log.LstdFlags),
		debug:  debugMode,
	}
}

func (l *AppLogger) write(level LogLevel, format string, args ...any) {
	if l == nil {
		return
	}
	if level == DEBUG && !l.debug {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Printf(levelPrefixes[level]+format, args...)
}

// Debug logs only when debug mode is on.
func (l *AppLogger) Debug(format string, args ...any) { l.write(DEBUG, format, args...) }

func (l *AppLogger) Info(format string, args ...any) { l.write(INFO, format, args...) }

func (l *AppLogger) Warn(format string, args ...any) { l.write(WARN, format, args...) }

func (l *AppLogger) Error(format string, args ...any) { l.write(ERROR, format, args...) }

// Fatal logs at FATAL level and terminates the process.
func (l *AppLogger) Fatal(format string, args ...any) {
	target := log.New(os.Stderr, "", log.LstdFlags)
	if l != nil {
		target = l.logger
	}
	target.Fatalf(levelPrefixes[FATAL]+format, args...)
}

// Close safely closes the debug file handle.
func (l *AppLogger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileHandle != nil {
		err := l.fileHandle.Close()
		l.fileHandle = nil
		l.logger.SetOutput(os.Stdout)
		return err
	}
	return nil
}

func containsPathTraversal(path string) bool {
	return strings.Contains(path, "..")
}

// openDebugFile resolves DEBUG_FILE. The returned warning is logged by the caller once
// a logger exists.
func openDebugFile(path string) (io.Writer, *os.File, string) {
	switch {
	case path == "":
		return os.Stdout, nil, ""
	case len(path) > core.MaxDebugFilePathLength:
		return os.Stdout, nil, "DEBUG_FILE path too long, falling back to stdout"
	case containsPathTraversal(path):
		return os.Stdout, nil, "DEBUG_FILE contains path traversal characters, falling back to stdout"
	}

	//nolint:gosec // G304: path from env var, validated above
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, core.FilePermissionReadWrite)
	if err != nil {
		return os.Stdout, nil, "failed to open DEBUG_FILE '" + path + "': " + err.Error() + ", falling back to stdout"
	}
	return file, file, ""
}

// IsDebug returns whether the app is running in debug mode.
func IsDebug() bool {
	return os.Getenv("GIN_MODE") == "debug"
}

// CreateLogger creates the process logger from GIN_MODE and DEBUG_FILE.
func CreateLogger() *AppLogger {
	output, fileHandle, warning := openDebugFile(os.Getenv("DEBUG_FILE"))

	logger := &AppLogger{
		logger:     log.New(output, "", log.LstdFlags),
		debug:      IsDebug(),
		fileHandle: fileHandle,
	}
	if warning != "" {
		logger.Warn("%s", warning)
	}
	return logger
}

var _ core.Logger = (*AppLogger)(nil)
