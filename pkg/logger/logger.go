package logger

import (
	"log/slog"
	"os"
)

// InitGlobalSlog sets the default logger to emit JSON on stderr, keeping
// stdout free for rendered tables. Warnings and up by default; set
// TRUCKCTL_DEBUG to see request traffic.
func InitGlobalSlog(service string) {
	level := slog.LevelWarn
	if os.Getenv("TRUCKCTL_DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	logger = logger.With("service", service)
	slog.SetDefault(logger)
}
