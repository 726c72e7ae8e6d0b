package bloom

import "github.com/hupe1980/bitarray"

// MinHashes is the smallest number of hash functions a Filter uses.
const MinHashes = 3

type options struct {
	hashes           int
	metricsCollector MetricsCollector
	logger           *bitarray.Logger
}

// Option configures a Filter.
type Option func(*options)

// WithHashes sets the number of hash functions. Values below MinHashes are
// raised to MinHashes.
func WithHashes(k int) Option {
	return func(o *options) {
		o.hashes = k
	}
}

// WithMetricsCollector configures metrics collection for adds and queries.
// Pass nil to disable metrics.
//
//	metrics := &bloom.BasicMetricsCollector{}
//	f, _ := bloom.New(1<<20, bloom.WithMetricsCollector(metrics))
//	// ... use f ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Hits: %d\n", stats.QueryCount, stats.QueryHits)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
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
		hashes:           MinHashes,
		metricsCollector: NoopMetricsCollector{},
		logger:           bitarray.NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.hashes < MinHashes {
		o.hashes = MinHashes
	}
	return o
}
