package logging

import (
	"io"
	"log/slog"
	"strings"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "HORIZONFETCH_LOG"

// Setup installs a text logger on w as the slog default. Unknown or empty
// level names fall back to warn so that stderr stays quiet on a normal run.
func Setup(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
