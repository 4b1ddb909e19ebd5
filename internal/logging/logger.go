// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Options describe how to configure a logger instance.
type Options struct {
	Level  string
	Format string
	// Path is the log file. Empty disables logging; the terminal belongs to the UI.
	Path string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a structured logger. The returned closer releases the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	format, err := parseFormat(opts.Format)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(opts.Path) == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(opts.Path, "keix")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return newLogger(f, lvl, format), f, nil
}

// NewWriter creates a structured logger writing to w.
func NewWriter(w io.Writer, opts Options) (*slog.Logger, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	format, err := parseFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	return newLogger(w, lvl, format), nil
}

func newLogger(w io.Writer, lvl slog.Level, format string) *slog.Logger {
	handlerOpts := slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, &handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, &handlerOpts))
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level %q", level)
	}
}

func parseFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", "text", "console":
		return "text", nil
	case "json":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported log format %q", format)
	}
}
