package quadtree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// promcollector package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordInsert is called after each Insert.
	// accepted is false when the object lay outside the tree.
	RecordInsert(duration time.Duration, accepted bool, err error)

	// RecordRemove is called after each Remove.
	RecordRemove(duration time.Duration, removed bool, err error)

	// RecordQuery is called after each nearest-object query.
	// candidates is the number of distinct objects returned.
	RecordQuery(candidates int, duration time.Duration, err error)

	// RecordRange is called after InsertRange and RemoveRange.
	// op is "insert" or "remove", failed is the number of elements not applied.
	RecordRange(op string, count, failed int, duration time.Duration)

	// RecordQuarter is called whenever a leaf at level splits.
	RecordQuarter(level int)

	// RecordCollapse is called whenever a node at level collapses.
	RecordCollapse(level int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool, error)     {}
func (NoopMetricsCollector) RecordRemove(time.Duration, bool, error)     {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordRange(string, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordQuarter(int)                           {}
func (NoopMetricsCollector) RecordCollapse(int)                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertRejected   atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	RemoveCount      atomic.Int64
	RemoveMisses     atomic.Int64
	RemoveErrors     atomic.Int64
	QueryCount       atomic.Int64
	QueryErrors      atomic.Int64
	QueryCandidates  atomic.Int64
	QueryTotalNanos  atomic.Int64
	RangeCount       atomic.Int64
	RangeItems       atomic.Int64
	RangeFailed      atomic.Int64
	QuarterCount     atomic.Int64
	CollapseCount    atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, accepted bool, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	} else if !accepted {
		b.InsertRejected.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, removed bool, err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
	} else if !removed {
		b.RemoveMisses.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(candidates int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
		return
	}
	b.QueryCandidates.Add(int64(candidates))
}

// RecordRange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRange(op string, count, failed int, duration time.Duration) {
	b.RangeCount.Add(1)
	b.RangeItems.Add(int64(count))
	b.RangeFailed.Add(int64(failed))
}

// RecordQuarter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuarter(level int) {
	b.QuarterCount.Add(1)
}

// RecordCollapse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCollapse(level int) {
	b.CollapseCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:     b.InsertCount.Load(),
		InsertRejected:  b.InsertRejected.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		InsertAvgNanos:  avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		RemoveCount:     b.RemoveCount.Load(),
		RemoveMisses:    b.RemoveMisses.Load(),
		RemoveErrors:    b.RemoveErrors.Load(),
		QueryCount:      b.QueryCount.Load(),
		QueryErrors:     b.QueryErrors.Load(),
		QueryCandidates: b.QueryCandidates.Load(),
		QueryAvgNanos:   avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		RangeCount:      b.RangeCount.Load(),
		RangeItems:      b.RangeItems.Load(),
		RangeFailed:     b.RangeFailed.Load(),
		QuarterCount:    b.QuarterCount.Load(),
		CollapseCount:   b.CollapseCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount     int64
	InsertRejected  int64
	InsertErrors    int64
	InsertAvgNanos  int64
	RemoveCount     int64
	RemoveMisses    int64
	RemoveErrors    int64
	QueryCount      int64
	QueryErrors     int64
	QueryCandidates int64
	QueryAvgNanos   int64
	RangeCount      int64
	RangeItems      int64
	RangeFailed     int64
	QuarterCount    int64
	CollapseCount   int64
}
