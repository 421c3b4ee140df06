package util

import (
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/samber/lo"
)

// MarshalJSON wraps Sonic for performance
func MarshalJSON(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// MarshalIndentJSON renders v for terminal output.
func MarshalIndentJSON(v any) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(v, "", "  ")
}

// TruncateString keeps the first prefixLen and last suffixLen runes of s with replacement between them.
func TruncateString(s string, prefixLen, suffixLen int, replacement string) string {
	runes := []rune(s)
	if len(runes) > prefixLen+suffixLen {
		return string(runes[:prefixLen]) + replacement + string(runes[len(runes)-suffixLen:])
	}
	return s
}

// ParseEnvList parses comma-separated env var to trimmed slice
func ParseEnvList(envVar string) []string {
	if envVar == "" {
		return nil
	}
	return lo.FilterMap(strings.Split(envVar, ","), func(part string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(part)
		return trimmed, trimmed != ""
	})
}

// GetEnvWithDefault gets env var with default value
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt parses an integer env var. Missing or malformed values yield the default.
func GetEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
