package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors for logger configuration.
var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// newLogger creates a slog.Logger writing to w. It does not set the
// global logger. --verbose and --quiet override --log-level.
func newLogger(f commonFlags, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(f.logFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be text or json)", ErrInvalidLogFormat, f.logFormat)
	}
}

// parseLogLevel maps a level name to slog.Level. Empty means info.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q (must be debug, info, warn, or error)", ErrInvalidLogLevel, s)
	}
}
