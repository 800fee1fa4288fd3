package controller

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var errNotHeadless = errors.New("service is not headless")
var errMissingPluginsEnv = errors.New("MYCELIUM_PLUGINS env var not set on runner container")

// newTestRegistry gives each test its own Prometheus registry so that
// repeated MustRegister calls across specs never collide on already-
// registered collector names.
func newTestRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}
