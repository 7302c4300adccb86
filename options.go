package fsa

import "log/slog"

// DefaultDeterminizeWorkLimit is the default maximum number of states subset construction may create.
const DefaultDeterminizeWorkLimit = 10000

type options struct {
	workLimit int
	logger    *slog.Logger
}

// Option configures an Automaton or a single transform.
type Option func(*options)

// WithWorkLimit Bounds the number of states Determinize and ToDFA may create. A limit <= 0 disables the check.
func WithWorkLimit(limit int) Option {
	return func(o *options) {
		o.workLimit = limit
	}
}

// WithLogger Routes debug records about each transform to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		workLimit: DefaultDeterminizeWorkLimit,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		fn(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// with Applies per-call options on top of the automaton's own logger.
func (a *Automaton) with(opts ...Option) *options {
	return newOptions(append([]Option{WithLogger(a.logger)}, opts...)...)
}
