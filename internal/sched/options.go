package sched

import (
	"io"
	"log/slog"
)

// Options holds configuration options for the [Scheduler].
type Options struct {
	Logger   *slog.Logger
	Observer func(StatusEvent)
}

// Option is a function that configures [Options].
type Option func(*Options)

// WithLogger sets the logger the [Scheduler] reports events to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver registers a callback that receives every [StatusEvent].
// It runs synchronously inside the scheduler call that caused the event.
func WithObserver(fn func(StatusEvent)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

func defaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
