// Package metrics provides a Prometheus implementation of parslice.Observer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/exascience/parslice"
)

// Label values for the path a call takes through the engine.
const (
	pathEmpty    = "empty"
	pathInline   = "inline"
	pathParallel = "parallel"
)

// A Collector records calls and chunks as Prometheus metrics.
type Collector struct {
	calls    *prometheus.CounterVec
	elements prometheus.Counter
	chunks   prometheus.Counter
	failures prometheus.Counter
	duration prometheus.Histogram
}

var _ parslice.Observer = (*Collector)(nil)

// NewCollector creates a Collector whose metric names are prefixed with
// namespace. The Collector must be registered before its metrics are exposed.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls_total",
				Help:      "Total number of operations, by execution path.",
			},
			[]string{"path"},
		),
		elements: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "elements_total",
				Help:      "Total number of input elements across all operations.",
			},
		),
		chunks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chunks_total",
				Help:      "Total number of chunks processed.",
			},
		),
		failures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chunk_failures_total",
				Help:      "Total number of chunks whose worker returned an error or panicked.",
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "chunk_seconds",
				Help:      "Time spent by a worker on one chunk, in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
	// Pre-initialize the label values so they are exposed with value 0.
	for _, path := range []string{pathEmpty, pathInline, pathParallel} {
		c.calls.WithLabelValues(path)
	}
	return c
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.calls, c.elements, c.chunks, c.failures, c.duration}
}

// Register registers all metrics of c with reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range c.collectors() {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is like Register, but panics if registration fails.
func (c *Collector) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(c.collectors()...)
}

// Partitioned implements parslice.Observer.
func (c *Collector) Partitioned(length, chunks int) {
	path := pathParallel
	switch chunks {
	case 0:
		path = pathEmpty
	case 1:
		path = pathInline
	}
	c.calls.WithLabelValues(path).Inc()
	c.elements.Add(float64(length))
}

// ChunkDone implements parslice.Observer.
func (c *Collector) ChunkDone(_ parslice.Chunk, elapsed time.Duration, err error) {
	c.chunks.Inc()
	c.duration.Observe(elapsed.Seconds())
	if err != nil {
		c.failures.Inc()
	}
}
