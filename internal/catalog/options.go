package catalog

import "github.com/rs/zerolog"

type options struct {
	logger zerolog.Logger
}

type Option func(*options)

// WithLogger sets the logger used for query debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
