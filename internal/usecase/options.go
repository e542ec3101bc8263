package usecase

import (
	"io"
	"log/slog"
)

type options struct {
	log *slog.Logger
}

// Option configures a use case.
type Option func(*options)

// WithLogger sets the logger used for progress and audit lines.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
