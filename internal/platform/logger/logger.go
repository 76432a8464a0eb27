package logger

import (
	"log/slog"
	"os"
)

// New returns the structured JSON logger shared by every component. The
// service attribute keys aggregation across intake deployments.
func New() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler).With("service", "llm-intake")
}
