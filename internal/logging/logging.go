// Package logging builds the slog loggers used by the CLI and tests.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// Options selects the handler and the attributes attached to every record.
type Options struct {
	Debug   bool      // Emit debug records
	Quiet   bool      // Only warnings and errors; ignored when Debug is set
	JSON    bool      // JSON lines instead of console output
	NoColor bool      // Disable ANSI colors in console output
	Service string    // "service" attribute, omitted when empty
	Version string    // "version" attribute, omitted when empty
	RunID   bool      // Attach a random "run" attribute
	Writer  io.Writer // Defaults to os.Stderr
}

// New returns a logger configured from opts.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	switch {
	case opts.Debug:
		level = slog.LevelDebug
	case opts.Quiet:
		level = slog.LevelWarn
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    opts.NoColor,
		})
	}

	logger := slog.New(handler)
	if opts.Service != "" {
		logger = logger.With("service", opts.Service)
	}
	if opts.Version != "" {
		logger = logger.With("version", opts.Version)
	}
	if opts.RunID {
		logger = logger.With("run", uuid.Must(uuid.NewRandom()).String())
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
