package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/peacock/pkg/model"
)

// Event records one routed input event.
func (r *Registry) Event(kind string) {
	r.EventsTotal.WithLabelValues(kind).Inc()
}

// Patches records the number of patches one event registered for a kind.
func (r *Registry) Patches(kind string, n int) {
	r.LedgerPatches.WithLabelValues(kind).Observe(float64(n))
}

// Rebuild records a control tree rebuild
func (r *Registry) Rebuild(d time.Duration, controls, behaviors int) {
	r.RebuildDuration.Observe(d.Seconds())
	r.Controls.Set(float64(controls))
	r.Behaviors.Set(float64(behaviors))
}

func (r *Registry) FoldError(kind string) {
	r.FoldErrorsTotal.WithLabelValues(kind).Inc()
}

func (r *Registry) ConnectionsCreated(n int) {
	r.ConnectionsTotal.Add(float64(n))
}

// UpdateGraphMetrics sets the graph size gauges
func (r *Registry) UpdateGraphMetrics(g model.Graph) {
	sockets := 0
	for _, n := range g.Nodes {
		sockets += len(n.Sockets())
	}
	r.GraphNodes.Set(float64(len(g.Nodes)))
	r.GraphSockets.Set(float64(sockets))
	r.GraphConnections.Set(float64(len(g.Connections)))
}

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
