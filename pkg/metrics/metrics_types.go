package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all metrics of the editor's frame loop
type Registry struct {
	// Input Metrics
	EventsTotal *prometheus.CounterVec

	// Ledger Metrics
	LedgerPatches    *prometheus.HistogramVec
	FoldErrorsTotal  *prometheus.CounterVec
	ConnectionsTotal prometheus.Counter

	// Tree Metrics
	RebuildDuration prometheus.Histogram
	Controls        prometheus.Gauge
	Behaviors       prometheus.Gauge

	// Graph Metrics
	GraphNodes       prometheus.Gauge
	GraphSockets     prometheus.Gauge
	GraphConnections prometheus.Gauge

	// SessionSeconds is read from the clock on every scrape.
	SessionSeconds prometheus.GaugeFunc

	registry *prometheus.Registry
	started  time.Time
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		started:  time.Now(),
	}

	// Initialize all metrics
	r.initInputMetrics()
	r.initLedgerMetrics()
	r.initTreeMetrics()
	r.initGraphMetrics()
	r.initSessionMetrics()
	reg.MustRegister(collectors.NewGoCollector())

	return r
}
