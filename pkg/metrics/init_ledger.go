package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLedgerMetrics() {
	r.LedgerPatches = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "peacock_ledger_patches",
			Help:    "Patches registered per event, by target kind",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"kind"},
	)

	r.FoldErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "peacock_fold_errors_total",
			Help: "Total number of ledger patches that failed to apply",
		},
		[]string{"kind"},
	)

	r.ConnectionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "peacock_connections_created_total",
			Help: "Total number of connections created",
		},
	)
}
