package quadtree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
//
// All methods may be called concurrently with each other when the caller
// runs read-only queries from multiple goroutines, so implementations must
// be safe for concurrent use.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// added reports whether the element gained membership.
	RecordInsert(duration time.Duration, added bool)

	// RecordRemove is called after each remove operation.
	// removed reports whether the element was a member.
	RecordRemove(duration time.Duration, removed bool)

	// RecordUpdate is called after each update operation.
	// updated reports whether the element was re-indexed.
	RecordUpdate(duration time.Duration, updated bool)

	// RecordQuery is called after each query operation.
	// results is the number of elements returned.
	RecordQuery(results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool) {}
func (NoopMetricsCollector) RecordRemove(time.Duration, bool) {}
func (NoopMetricsCollector) RecordUpdate(time.Duration, bool) {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertNoops      atomic.Int64
	InsertTotalNanos atomic.Int64
	RemoveCount      atomic.Int64
	RemoveNoops      atomic.Int64
	UpdateCount      atomic.Int64
	UpdateNoops      atomic.Int64
	QueryCount       atomic.Int64
	QueryResults     atomic.Int64
	QueryTotalNanos  atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, added bool) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if !added {
		b.InsertNoops.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, removed bool) {
	b.RemoveCount.Add(1)
	if !removed {
		b.RemoveNoops.Add(1)
	}
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(duration time.Duration, updated bool) {
	b.UpdateCount.Add(1)
	if !updated {
		b.UpdateNoops.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertNoops:    b.InsertNoops.Load(),
		InsertAvgNanos: b.getAvgInsertNanos(),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveNoops:    b.RemoveNoops.Load(),
		UpdateCount:    b.UpdateCount.Load(),
		UpdateNoops:    b.UpdateNoops.Load(),
		QueryCount:     b.QueryCount.Load(),
		QueryResults:   b.QueryResults.Load(),
		QueryAvgNanos:  b.getAvgQueryNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertNoops    int64
	InsertAvgNanos int64
	RemoveCount    int64
	RemoveNoops    int64
	UpdateCount    int64
	UpdateNoops    int64
	QueryCount     int64
	QueryResults   int64
	QueryAvgNanos  int64
}
