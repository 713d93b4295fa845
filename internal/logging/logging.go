// Package logging builds the structured logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tessro/gplay/internal/config"
)

// New returns a logger configured from cfg. verbose forces debug level.
// The returned close function releases the log file, if one was opened.
func New(cfg config.LogConfig, verbose bool) (*log.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		level = log.DebugLevel
	}

	var out io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "gplay",
		ReportTimestamp: cfg.File != "",
	})
	return logger, closeFn, nil
}

// ParseLevel maps a config level name to a log level. Empty means info.
func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.InfoLevel, nil
	}
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
