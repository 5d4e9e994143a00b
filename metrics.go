package treego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordRemove is called after each remove operation. removed is the
	// number of nodes deleted, including descendants.
	RecordRemove(removed int, duration time.Duration)

	// RecordMove is called after each append-child operation.
	RecordMove(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error) {}
func (NoopMetricsCollector) RecordRemove(int, time.Duration)   {}
func (NoopMetricsCollector) RecordMove(time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	RemoveCount      atomic.Int64
	RemovedNodes     atomic.Int64
	RemoveTotalNanos atomic.Int64
	MoveCount        atomic.Int64
	MoveErrors       atomic.Int64
	MoveTotalNanos   atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (c *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	c.InsertCount.Add(1)
	c.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (c *BasicMetricsCollector) RecordRemove(removed int, duration time.Duration) {
	c.RemoveCount.Add(1)
	c.RemovedNodes.Add(int64(removed))
	c.RemoveTotalNanos.Add(duration.Nanoseconds())
}

// RecordMove implements MetricsCollector.
func (c *BasicMetricsCollector) RecordMove(duration time.Duration, err error) {
	c.MoveCount.Add(1)
	c.MoveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.MoveErrors.Add(1)
	}
}
