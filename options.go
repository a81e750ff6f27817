package quadtree

import (
	"log/slog"
	"runtime"
)

const (
	// DefaultMaxObjects is the bucket size at which a leaf splits.
	DefaultMaxObjects = 10
	// DefaultMaxLevel is the deepest level a leaf can be split to.
	DefaultMaxLevel = 5
)

type options struct {
	maxObjects       int
	maxLevel         int
	queryConcurrency int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures QuadTree constructor behavior.
type Option func(*options)

// WithMaxObjects sets how many objects a leaf holds before it splits.
// Leaves at the maximum level are not bounded by it.
//
// Values are not validated: with n <= 0 every leaf above the maximum level
// refuses inserts, so objects settle at the deepest level.
func WithMaxObjects(n int) Option {
	return func(o *options) {
		o.maxObjects = n
	}
}

// WithMaxLevel sets the maximum depth of the tree. The root is level 0.
func WithMaxLevel(n int) Option {
	return func(o *options) {
		o.maxLevel = n
	}
}

// WithQueryConcurrency bounds the number of goroutines NearestBatch uses.
// n <= 0 means runtime.GOMAXPROCS(0).
func WithQueryConcurrency(n int) Option {
	return func(o *options) {
		o.queryConcurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &quadtree.BasicMetricsCollector{}
//	qt, _ := quadtree.New(0, 0, 100, 100, bounds, quadtree.WithMetricsCollector(metrics))
//	// ... use qt ...
//	stats := metrics.GetStats()
//	fmt.Printf("Splits: %d, Collapses: %d\n", stats.QuarterCount, stats.CollapseCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := quadtree.NewJSONLogger(slog.LevelDebug)
//	qt, _ := quadtree.New(0, 0, 100, 100, bounds, quadtree.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxObjects:       DefaultMaxObjects,
		maxLevel:         DefaultMaxLevel,
		queryConcurrency: 0,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.queryConcurrency <= 0 {
		o.queryConcurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
