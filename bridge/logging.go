package bridge

import (
	"io"
	"log/slog"
	"strings"
)

// LogConfig holds configuration for the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" koanf:"format"` // "json" or "text"
}

// NewLogger creates a slog logger writing to w. Stdout belongs to the
// confirmation line, so callers pass stderr.
func NewLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("service", "nlg-bridge"))
}
