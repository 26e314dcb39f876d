package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tuikit/flipswitch/internal/config"
)

// Setup configures structured logging for the demo. The TUI owns stdout,
// so logs go to the configured file, or are discarded when none is set.
// The caller closes the returned file, if any.
func Setup(cfg *config.Config) (*slog.Logger, *os.File, error) {
	logLevel := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	var w io.Writer = io.Discard

	var f *os.File
	if cfg.LogFile != "" {
		var err error

		f, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		w = f
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger, f, nil
}
