package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTreeMetrics() {
	r.RebuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "peacock_rebuild_duration_seconds",
			Help:    "Control tree rebuild latency in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	r.Controls = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "peacock_controls",
			Help: "Number of controls in the current tree",
		},
	)

	r.Behaviors = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "peacock_behaviors",
			Help: "Number of live behaviors",
		},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "peacock_graph_nodes",
			Help: "Number of nodes in the edited graph",
		},
	)

	r.GraphSockets = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "peacock_graph_sockets",
			Help: "Number of sockets across all nodes",
		},
	)

	r.GraphConnections = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "peacock_graph_connections",
			Help: "Number of connections in the edited graph",
		},
	)
}

func (r *Registry) initSessionMetrics() {
	r.SessionSeconds = promauto.With(r.registry).NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "peacock_session_seconds",
			Help: "Time the editing session has been open in seconds",
		},
		func() float64 { return time.Since(r.started).Seconds() },
	)
}
