// Package logger holds the structured logger used by the misuse paths of
// the empty collection types. Nothing logs on the happy path.
package logger

import (
	"io"
	"log/slog"
	"os"

	"go.uber.org/atomic"
)

// DefaultSubsystem is attached to every record until Options says otherwise.
const DefaultSubsystem = "nothing"

var (
	current   = atomic.NewPointer[slog.Logger](nil) //nolint:gochecknoglobals
	subsystem = atomic.NewString(DefaultSubsystem)  //nolint:gochecknoglobals
)

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// ConfigureLoggingWithOptions builds a text or JSON handler from opts and
// installs it as the package logger. It returns the new logger.
// Unlike an application logger it leaves slog.Default alone.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	var handler slog.Handler

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	if opts.Subsystem != "" {
		subsystem.Store(opts.Subsystem)
	} else {
		subsystem.Store(DefaultSubsystem)
	}

	logger := slog.New(handler)

	current.Store(logger)

	return Get()
}

// Set installs l as the package logger and returns the one it replaced,
// which may be nil. Passing nil falls back to slog.Default.
func Set(l *slog.Logger) *slog.Logger {
	return current.Swap(l)
}

// Get returns the package logger tagged with the subsystem.
func Get() *slog.Logger {
	l := current.Load()
	if l == nil {
		l = slog.Default()
	}

	return l.With("subsystem", subsystem.Load())
}
