package utils

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// NewLogger opens the configured log file and returns a text logger writing
// to it. The terminal belongs to the UI, so nothing is logged to stdout.
// Close the returned io.Closer on exit.
func NewLogger(cfg LogConfig) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}

	path := ExpandPath(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", AppName))
	return log, f, nil
}

// DiscardLogger drops everything; used when the log file cannot be opened.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
