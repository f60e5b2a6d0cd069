package collections

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each point add. err is nil if the point was accepted.
	RecordAdd(err error)

	// RecordBuild is called after each tree build.
	// points is the size of the snapshot the tree was built from.
	RecordBuild(points int, duration time.Duration, err error)

	// RecordNearest is called after each nearest lookup.
	// found reports whether a payload was returned.
	RecordNearest(duration time.Duration, found bool, err error)

	// RecordRange is called after each range query.
	RecordRange(matches int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(error)                          {}
func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordNearest(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordRange(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount          atomic.Int64
	AddErrors         atomic.Int64
	BuildCount        atomic.Int64
	BuildErrors       atomic.Int64
	BuildPoints       atomic.Int64
	BuildTotalNanos   atomic.Int64
	NearestCount      atomic.Int64
	NearestErrors     atomic.Int64
	NearestMisses     atomic.Int64
	NearestTotalNanos atomic.Int64
	RangeCount        atomic.Int64
	RangeErrors       atomic.Int64
	RangeMatches      atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(err error) {
	b.AddCount.Add(1)
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(points int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildPoints.Add(int64(points))
}

// RecordNearest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearest(duration time.Duration, found bool, err error) {
	b.NearestCount.Add(1)
	b.NearestTotalNanos.Add(duration.Nanoseconds())
	switch {
	case err != nil:
		b.NearestErrors.Add(1)
	case !found:
		b.NearestMisses.Add(1)
	}
}

// RecordRange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRange(matches int, duration time.Duration, err error) {
	b.RangeCount.Add(1)
	if err != nil {
		b.RangeErrors.Add(1)
		return
	}
	b.RangeMatches.Add(int64(matches))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:        b.AddCount.Load(),
		AddErrors:       b.AddErrors.Load(),
		BuildCount:      b.BuildCount.Load(),
		BuildErrors:     b.BuildErrors.Load(),
		BuildPoints:     b.BuildPoints.Load(),
		BuildAvgNanos:   avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		NearestCount:    b.NearestCount.Load(),
		NearestErrors:   b.NearestErrors.Load(),
		NearestMisses:   b.NearestMisses.Load(),
		NearestAvgNanos: avg(b.NearestTotalNanos.Load(), b.NearestCount.Load()),
		RangeCount:      b.RangeCount.Load(),
		RangeErrors:     b.RangeErrors.Load(),
		RangeMatches:    b.RangeMatches.Load(),
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
	AddCount        int64
	AddErrors       int64
	BuildCount      int64
	BuildErrors     int64
	BuildPoints     int64
	BuildAvgNanos   int64
	NearestCount    int64
	NearestErrors   int64
	NearestMisses   int64
	NearestAvgNanos int64
	RangeCount      int64
	RangeErrors     int64
	RangeMatches    int64
}
