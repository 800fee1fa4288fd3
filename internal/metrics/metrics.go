// Package metrics registers the operator's Prometheus series on the
// registerer it is given. cmd/operator creates one process-wide registry at
// startup, registers these series on it once, and serves it on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var reconcileBuckets = []float64{0.01, 0.1, 0.25, 0.5, 1, 5, 15, 60}

// Metrics holds the handles reconcilers observe into. Histograms and
// counters are lock-free atomics under the hood (client_golang), so these
// handles are safe to share across the concurrent set/proxy controllers.
type Metrics struct {
	SetReconcileDuration   prometheus.Histogram
	ProxyReconcileDuration prometheus.Histogram
	SetHandledEvents       prometheus.Counter
	ProxyHandledEvents     prometheus.Counter
}

// New registers the four series named in the external interface contract
// on the given registerer (cmd/operator and the tests each pass a fresh
// prometheus.NewRegistry()).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SetReconcileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mcset_controller_reconcile_duration_seconds",
			Help:    "The duration of mcset reconcile to complete in seconds",
			Buckets: reconcileBuckets,
		}),
		ProxyReconcileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mcproxy_controller_reconcile_duration_seconds",
			Help:    "The duration of mcproxy reconcile to complete in seconds",
			Buckets: reconcileBuckets,
		}),
		SetHandledEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mcset_controller_handled_events",
			Help: "mcset handled events",
		}),
		ProxyHandledEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "proxy_controller_handled_events",
			Help: "proxy handled events",
		}),
	}
	reg.MustRegister(
		m.SetReconcileDuration,
		m.ProxyReconcileDuration,
		m.SetHandledEvents,
		m.ProxyHandledEvents,
	)
	return m
}
