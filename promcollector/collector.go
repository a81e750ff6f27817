// Package promcollector exports quadtree operation metrics to Prometheus.
package promcollector

import (
	"strconv"
	"time"

	quadtree "github.com/leonidovia/UltimateQuadTree"
	"github.com/prometheus/client_golang/prometheus"
)

var _ quadtree.MetricsCollector = (*Collector)(nil)

// Collector implements quadtree.MetricsCollector with Prometheus metrics.
type Collector struct {
	opLatency  *prometheus.HistogramVec
	ops        *prometheus.CounterVec
	candidates prometheus.Counter
	rangeItems *prometheus.CounterVec
	quarters   *prometheus.CounterVec
	collapses  *prometheus.CounterVec
}

// New creates a Collector and registers its metrics on reg.
// namespace prefixes every metric name and may be empty.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quadtree_operation_latency_seconds",
			Help:      "Latency of quadtree operations",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"op"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quadtree_operations_total",
			Help:      "Quadtree operations by outcome",
		}, []string{"op", "status"}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quadtree_query_candidates_total",
			Help:      "Distinct candidates returned by nearest-object queries",
		}),
		rangeItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quadtree_range_items_total",
			Help:      "Elements passed to range operations by outcome",
		}, []string{"op", "status"}),
		quarters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quadtree_quarters_total",
			Help:      "Leaf splits by level",
		}, []string{"level"}),
		collapses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quadtree_collapses_total",
			Help:      "Node collapses by level",
		}, []string{"level"}),
	}

	for _, col := range []prometheus.Collector{c.opLatency, c.ops, c.candidates, c.rangeItems, c.quarters, c.collapses} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordInsert implements quadtree.MetricsCollector.
func (c *Collector) RecordInsert(d time.Duration, accepted bool, err error) {
	status := "accepted"
	switch {
	case err != nil:
		status = "error"
	case !accepted:
		status = "rejected"
	}
	c.opLatency.WithLabelValues("insert").Observe(d.Seconds())
	c.ops.WithLabelValues("insert", status).Inc()
}

// RecordRemove implements quadtree.MetricsCollector.
func (c *Collector) RecordRemove(d time.Duration, removed bool, err error) {
	status := "removed"
	switch {
	case err != nil:
		status = "error"
	case !removed:
		status = "missing"
	}
	c.opLatency.WithLabelValues("remove").Observe(d.Seconds())
	c.ops.WithLabelValues("remove", status).Inc()
}

// RecordQuery implements quadtree.MetricsCollector.
func (c *Collector) RecordQuery(candidates int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.opLatency.WithLabelValues("query").Observe(d.Seconds())
	c.ops.WithLabelValues("query", status).Inc()
	c.candidates.Add(float64(candidates))
}

// RecordRange implements quadtree.MetricsCollector.
func (c *Collector) RecordRange(op string, count, failed int, d time.Duration) {
	c.opLatency.WithLabelValues(op + "_range").Observe(d.Seconds())
	c.rangeItems.WithLabelValues(op, "applied").Add(float64(count - failed))
	c.rangeItems.WithLabelValues(op, "skipped").Add(float64(failed))
}

// RecordQuarter implements quadtree.MetricsCollector.
func (c *Collector) RecordQuarter(level int) {
	c.quarters.WithLabelValues(strconv.Itoa(level)).Inc()
}

// RecordCollapse implements quadtree.MetricsCollector.
func (c *Collector) RecordCollapse(level int) {
	c.collapses.WithLabelValues(strconv.Itoa(level)).Inc()
}
