package quadtree

import "log/slog"

const (
	// DefaultMaxElements is the per-node capacity used when
	// WithMaxElements is not given.
	DefaultMaxElements = 50

	// DefaultMaxDepth disables the depth limit.
	DefaultMaxDepth = -1
)

type options[T any] struct {
	maxElements int
	maxDepth    int
	elements    []*Element[T]
	ids         *IDSource
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures tree construction.
type Option[T any] func(*options[T])

// WithMaxElements sets the per-node capacity: a leaf splits when its
// element count strictly exceeds this value (depth limit permitting).
// Default: 50.
func WithMaxElements[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.maxElements = n
	}
}

// WithMaxDepth sets the maximum node depth. Nodes at this depth never
// split, regardless of how many elements they hold. A negative value
// disables the limit (the default).
func WithMaxDepth[T any](depth int) Option[T] {
	return func(o *options[T]) {
		o.maxDepth = depth
	}
}

// WithElements seeds the tree with initial contents. Each element is
// inserted through the regular insert path, so elements outside the root
// bounds are silently skipped.
func WithElements[T any](elements ...*Element[T]) Option[T] {
	return func(o *options[T]) {
		o.elements = elements
	}
}

// WithIDSource makes the tree draw element IDs from a shared source
// instead of a fresh tree-local one. Use this when several trees (or the
// caller itself) must mint elements in a single ID space.
func WithIDSource[T any](ids *IDSource) Option[T] {
	return func(o *options[T]) {
		if ids != nil {
			o.ids = ids
		}
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger[T any](logger *Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel[T any](level slog.Level) Option[T] {
	return func(o *options[T]) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector[T any](mc MetricsCollector) Option[T] {
	return func(o *options[T]) {
		o.metrics = mc
	}
}

func applyOptions[T any](optFns []Option[T]) options[T] {
	o := options[T]{
		maxElements: DefaultMaxElements,
		maxDepth:    DefaultMaxDepth,
		metrics:     NoopMetricsCollector{},
		logger:      NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.ids == nil {
		o.ids = NewIDSource()
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}
