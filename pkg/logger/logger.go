// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Level  string // debug, info, warn, error
	Format string // json (default) or console
	Output io.Writer
}

// Setup installs a JSON (or text, for console) handler wrapped with
// CorrelationHandler as the slog default and returns it.
func Setup(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(opts.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "console") {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	l := slog.New(NewCorrelationHandler(handler))
	slog.SetDefault(l)
	return l
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
