package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config controls handler selection and the common fields stamped on every record.
type Config struct {
	Level   string
	Format  string
	Service string
	Version string
	RunID   string
}

// NewLogger returns a structured logger with sane defaults.
// Level accepts debug/info/warn/error (default info); Format accepts
// text or json (default text).
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)

	var attrs []any
	if cfg.Service != "" {
		attrs = append(attrs, slog.String(FieldService, cfg.Service))
	}
	if cfg.Version != "" {
		attrs = append(attrs, slog.String(FieldVersion, cfg.Version))
	}
	if cfg.RunID != "" {
		attrs = append(attrs, slog.String(FieldRunID, cfg.RunID))
	}
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}

	return logger
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
