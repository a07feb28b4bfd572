package uevloop

import "github.com/zoobzio/metricz"

// Metric keys, grounded on the corpus's metricz.Key const-block
// convention (zoobzio-pipz's Timeout*/Backoff* keys).
const (
	MetricTicksTotal           = metricz.Key("uevloop.ticks.total")
	MetricEventsDispatched     = metricz.Key("uevloop.events.dispatched.total")
	MetricEventPoolOutstanding = metricz.Key("uevloop.pool.events.outstanding")
	MetricNodePoolOutstanding  = metricz.Key("uevloop.pool.nodes.outstanding")
	MetricEventQueueDepth      = metricz.Key("uevloop.queue.depth")
)

// Metrics wraps a metricz.Registry with the counters and gauges the
// Engine updates on every Tick.
type Metrics struct {
	r *metricz.Registry
}

// NewMetrics allocates a fresh registry with every counter/gauge
// pre-registered.
func NewMetrics() *Metrics {
	r := metricz.New()
	r.Counter(MetricTicksTotal)
	r.Counter(MetricEventsDispatched)
	r.Gauge(MetricEventPoolOutstanding)
	r.Gauge(MetricNodePoolOutstanding)
	r.Gauge(MetricEventQueueDepth)
	return &Metrics{r: r}
}

// Registry exposes the underlying metricz.Registry for external
// scraping/export.
func (m *Metrics) Registry() *metricz.Registry {
	return m.r
}

func (m *Metrics) recordTick(dispatched int, sys *System) {
	m.r.Counter(MetricTicksTotal).Inc()
	m.r.Counter(MetricEventsDispatched).Add(float64(dispatched))
	m.r.Gauge(MetricEventPoolOutstanding).Set(float64(sys.events.Outstanding()))
	m.r.Gauge(MetricNodePoolOutstanding).Set(float64(sys.nodes.Outstanding()))
	m.r.Gauge(MetricEventQueueDepth).Set(float64(sys.EventQueueCount()))
}

// Metrics returns the Engine's metrics registry, or nil if metrics were
// not enabled via WithMetrics.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}
