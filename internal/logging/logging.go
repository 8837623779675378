// Package logging configures the application log sink. The core
// itself never writes here directly; it reports through an injected
// events.Reporter, and main wires that reporter to this logger.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Init sets up logging to ~/.hito/logs/hito.log and installs the
// logger as the slog default. Text format for human readability.
func Init() (*slog.Logger, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	logDir := filepath.Join(homeDir, ".hito", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(logDir, "hito.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
