// Package logging builds the structured logger shared by the front ends.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "SNAKE_LOG"

// ParseLevel maps a level name to a slog.Level. The empty string is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FromEnv builds a logger at the level named by SNAKE_LOG, read through
// getenv. An unknown level falls back to info and is reported once.
func FromEnv(w io.Writer, getenv func(string) string) *slog.Logger {
	var name string
	if getenv != nil {
		name = getenv(EnvLevel)
	}
	level, err := ParseLevel(name)
	logger := New(w, level)
	if err != nil {
		logger.Warn("ignoring "+EnvLevel, "err", err)
	}
	return logger
}
