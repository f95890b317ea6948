package app

import (
	"io"
	"log/slog"

	"storefront-api/internal/config"
)

// NewLogger returns a text or JSON slog.Logger according to LOG_FORMAT.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: cfg != nil && cfg.AppEnv != "prod"}
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
