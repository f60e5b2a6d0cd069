package kdtree

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/collections"
)

// DefaultParallelMinPoints is the smallest subtree handed to another goroutine
// when parallel builds are enabled without an explicit threshold.
const DefaultParallelMinPoints = 4096

type options struct {
	logger            *collections.Logger
	metricsCollector  collections.MetricsCollector
	workers           int // 0 = sequential build
	parallelMinPoints int
}

// Option configures a Tree.
type Option func(*options)

// WithLogger configures structured logging for tree operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := collections.NewJSONLogger(slog.LevelInfo)
//	t, _ := kdtree.New[string](3, kdtree.WithLogger(logger))
func WithLogger(logger *collections.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = collections.NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(collections.NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = collections.NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
//	metrics := &collections.BasicMetricsCollector{}
//	t, _ := kdtree.New[int](2, kdtree.WithMetricsCollector(metrics))
//	// ... use t ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc collections.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = collections.NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithParallelBuild lets Build construct subtrees of at least minPoints points
// on up to workers goroutines. workers <= 0 means GOMAXPROCS; minPoints <= 1
// means DefaultParallelMinPoints.
//
// The resulting tree is identical to the one a sequential build produces.
func WithParallelBuild(workers, minPoints int) Option {
	return func(o *options) {
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		if minPoints <= 1 {
			minPoints = DefaultParallelMinPoints
		}
		o.workers = workers
		o.parallelMinPoints = minPoints
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           collections.NoopLogger(),
		metricsCollector: collections.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
