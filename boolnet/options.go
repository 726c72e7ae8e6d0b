package boolnet

import (
	"time"

	"github.com/hupe1980/bitarray"
)

type options struct {
	seed   int64
	logger *bitarray.Logger
}

// Option configures a Network.
type Option func(*options)

// WithSeed makes the random initial state and rules reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *bitarray.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = bitarray.NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		seed:   time.Now().UnixNano(),
		logger: bitarray.NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
