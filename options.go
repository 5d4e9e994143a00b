package treego

type options struct {
	capacity         int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() *options {
	return &options{
		capacity:         DefaultCapacity,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures Tree construction.
type Option func(*options)

// WithCapacity pre-allocates n node slots, so the first n insertions
// never grow the arena.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

// WithLogger configures structured logging. Structural mutations are
// logged at Debug level. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures operational metrics collection.
// If nil is passed, collection stays disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
