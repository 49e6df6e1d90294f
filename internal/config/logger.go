package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates a leveled logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "3bt",
	})
}

// OpenLogFile opens ~/.threebell/3bt.log for appending.
// The terminal belongs to the bar, so logs never go to stdout.
func OpenLogFile() (*os.File, error) {
	if err := EnsureGlobalDir(); err != nil {
		return nil, fmt.Errorf("failed to ensure global dir: %w", err)
	}
	path, err := GlobalLogFile()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
