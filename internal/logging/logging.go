// Package logging provides structured logging setup for the CLI.
package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the default slog logger. Logs go to stderr so
// command output on stdout stays clean; verbose mode lowers the level
// to debug.
func Setup(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
