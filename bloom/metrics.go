package bloom

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting filter metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each added item.
	RecordAdd(duration time.Duration)

	// RecordQuery is called after each membership query.
	// hit reports whether the filter answered "maybe present".
	RecordQuery(hit bool, duration time.Duration)

	// RecordMerge is called after each merge; err is nil if successful.
	RecordMerge(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration)         {}
func (NoopMetricsCollector) RecordQuery(bool, time.Duration) {}
func (NoopMetricsCollector) RecordMerge(error)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	AddCount        atomic.Int64
	AddTotalNanos   atomic.Int64
	QueryCount      atomic.Int64
	QueryHits       atomic.Int64
	QueryTotalNanos atomic.Int64
	MergeCount      atomic.Int64
	MergeErrors     atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(hit bool, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if hit {
		b.QueryHits.Add(1)
	}
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(err error) {
	b.MergeCount.Add(1)
	if err != nil {
		b.MergeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:      b.AddCount.Load(),
		AddAvgNanos:   avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		QueryCount:    b.QueryCount.Load(),
		QueryHits:     b.QueryHits.Load(),
		QueryAvgNanos: avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		MergeCount:    b.MergeCount.Load(),
		MergeErrors:   b.MergeErrors.Load(),
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
	AddCount      int64
	AddAvgNanos   int64
	QueryCount    int64
	QueryHits     int64
	QueryAvgNanos int64
	MergeCount    int64
	MergeErrors   int64
}
