package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAppLoggerWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAppLoggerWithConfig(&buf, true)
	if logger == nil {
		t.Fatal("logger should not be nil")
	}
	if !logger.debug {
		t.Error("debug mode should be on")
	}
	if logger.fileHandle != nil {
		t.Error("external writer should not hold a file handle")
	}
}

func TestAppLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		message   string
		expectLog bool
	}{
		{"debug mode writes", true, "debug message", true},
		{"release mode is silent", false, "should not appear", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewAppLoggerWithConfig(&buf, tt.debugMode)
			logger.Debug(tt.message)
			output := buf.String()
			if strings.Contains(output, tt.message) != tt.expectLog {
				t.Errorf("expected log=%v, got %q", tt.expectLog, output)
			}
			if tt.expectLog && !strings.Contains(output, "[DEBUG]") {
				t.Error("debug output should carry the [DEBUG] prefix")
			}
		})
	}
}

func TestAppLogger_Levels(t *testing.T) {
	tests := []struct {
		name   string
		log    func(l *AppLogger)
		prefix string
		want   string
	}{
		{"info", func(l *AppLogger) { l.Info("generated %s", "sdxl") }, "[INFO]", "generated sdxl"},
		{"warn", func(l *AppLogger) { l.Warn("slow request: %d ms", 123) }, "[WARN]", "slow request: 123 ms"},
		{"error", func(l *AppLogger) { l.Error("generator failed: %v", "boom") }, "[ERROR]", "generator failed: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewAppLoggerWithConfig(&buf, false))
			output := buf.String()
			if !strings.Contains(output, tt.prefix) {
				t.Errorf("expected prefix %s in %q", tt.prefix, output)
			}
			if !strings.Contains(output, tt.want) {
				t.Errorf("expected %q in %q", tt.want, output)
			}
		})
	}
}

func TestAppLogger_NilSafety(t *testing.T) {
	var logger *AppLogger
	logger.Debug("no panic")
	logger.Info("no panic")
	logger.Warn("no panic")
	logger.Error("no panic")
	if err := logger.Close(); err != nil {
		t.Errorf("closing nil logger: %v", err)
	}
}

func TestAppLogger_CloseWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	if err := NewAppLoggerWithConfig(&buf, false).Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestContainsPathTraversal(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"plain path", "/var/log/app.log", false},
		{"parent segment", "/var/../etc/passwd", true},
		{"relative parent", "../secret.txt", true},
		{"current dir", "./local.log", false},
		{"windows parent", "..\\config.ini", true},
		{"empty", "", false},
		{"dotted file name", "/var/log/app.2024.log", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsPathTraversal(tt.path); got != tt.expected {
				t.Errorf("containsPathTraversal(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestOpenDebugFile(t *testing.T) {
	if w, f, warning := openDebugFile(""); w != os.Stdout || f != nil || warning != "" {
		t.Error("empty path should use stdout without warning")
	}
	if _, f, warning := openDebugFile("../escape.log"); f != nil || warning == "" {
		t.Error("traversal path should be rejected with a warning")
	}
	if _, f, warning := openDebugFile(strings.Repeat("a", 300)); f != nil || warning == "" {
		t.Error("long path should be rejected with a warning")
	}

	path := filepath.Join(t.TempDir(), "debug.log")
	_, f, warning := openDebugFile(path)
	if f == nil || warning != "" {
		t.Fatalf("expected file handle, warning=%q", warning)
	}
	_ = f.Close()
}

func TestCreateLogger_WritesToDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("DEBUG_FILE", path)
	t.Setenv("GIN_MODE", "debug")

	logger := CreateLogger()
	logger.Debug("written to %s", "file")
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[DEBUG] written to file") {
		t.Errorf("unexpected file contents %q", data)
	}
}

func TestIsDebug(t *testing.T) {
	tests := []struct {
		ginMode  string
		expected bool
	}{
		{"debug", true},
		{"release", false},
		{"test", false},
	}
	for _, tt := range tests {
		t.Run(tt.ginMode, func(t *testing.T) {
			t.Setenv("GIN_MODE", tt.ginMode)
			if got := IsDebug(); got != tt.expected {
				t.Errorf("IsDebug() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppLogger_MultipleWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAppLoggerWithConfig(&buf, true)
	logger.Debug("one")
	logger.Info("two")
	logger.Warn("three")
	logger.Error("four")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}
