package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistersAllFourSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SetReconcileDuration.Observe(0.2)
	m.ProxyReconcileDuration.Observe(0.2)
	m.SetHandledEvents.Inc()
	m.ProxyHandledEvents.Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather returned error: %v", err)
	}

	names := map[string]*dto.MetricFamily{}
	for _, f := range families {
		names[f.GetName()] = f
	}

	for _, want := range []string{
		"mcset_controller_reconcile_duration_seconds",
		"mcproxy_controller_reconcile_duration_seconds",
		"mcset_controller_handled_events",
		"proxy_controller_handled_events",
	} {
		if _, ok := names[want]; !ok {
			t.Fatalf("expected metric family %q to be registered, got %v", want, names)
		}
	}
}
