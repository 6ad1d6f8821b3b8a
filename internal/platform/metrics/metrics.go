// Package metrics registers the Prometheus instruments the service exposes
// on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	CropsRegistered    prometheus.Counter
	CropTransitions    *prometheus.CounterVec
	OwnershipTransfers prometheus.Counter
	OrdersPlaced       prometheus.Counter
	DisputesOpened     prometheus.Counter
	TraceLookups       prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CropsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agritrace_crops_registered_total",
			Help: "Total number of crops registered",
		}),
		CropTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "agritrace_crop_transitions_total",
			Help: "Total number of crop lifecycle transitions by target state",
		}, []string{"to_state"}),
		OwnershipTransfers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agritrace_ownership_transfers_total",
			Help: "Total number of completed ownership transfers",
		}),
		OrdersPlaced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agritrace_orders_placed_total",
			Help: "Total number of purchase orders placed",
		}),
		DisputesOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agritrace_disputes_opened_total",
			Help: "Total number of disputes opened",
		}),
		TraceLookups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "agritrace_trace_lookups_total",
			Help: "Total number of public trace token lookups",
		}),
	}
}

// ObserveCropTransition increments the transition counter for the target state.
func (m *Metrics) ObserveCropTransition(toState string) {
	m.CropTransitions.WithLabelValues(toState).Inc()
}
