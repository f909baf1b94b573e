// Package logger configures the process-wide slog logger
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Options selects the handler and threshold
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New builds a logger from options. Format "json" selects the JSON handler;
// anything else gets the text handler.
func New(opts *Options) (*slog.Logger, error) {
	if opts == nil || opts.Output == nil {
		return nil, errors.InvalidArgument("logger output is required")
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	return slog.New(handler), nil
}

// Setup builds a logger and installs it as the slog default
func Setup(opts *Options) (*slog.Logger, error) {
	l, err := New(opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return l, nil
}

// ParseLevel maps debug|info|warn|error to a slog level. Empty means info.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", raw)
}
