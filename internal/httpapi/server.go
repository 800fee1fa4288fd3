// Package httpapi exposes the operator's read-only HTTP surface: a health
// check, the Prometheus metrics endpoint, the heartbeat state, and the
// proxy-discovery join query. It knows nothing about reconciliation; it
// reads state and join results through internal/manager and metrics from
// the prometheus.Gatherer passed to NewServer.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/njha/mycelium/internal/manager"
)

// NewServer builds the HTTP server for the operator's external surface.
// It binds no listener itself; the caller controls that via the returned
// *http.Server's Addr and lifecycle (see cmd/operator, which races it
// against the controller manager in an oklog/run.Group).
func NewServer(mgr *manager.Manager, reg prometheus.Gatherer) *http.Server {
	router := mux.NewRouter()
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/state", handleState(mgr)).Methods(http.MethodGet)
	router.HandleFunc("/servers/{namespace}/{name}", handleJoin(mgr)).Methods(http.MethodGet)

	return &http.Server{
		Addr:    "0.0.0.0:8080",
		Handler: accessLog(router),
	}
}

// accessLog logs every request except /health, which is polled too
// frequently by kubelet probes to be worth the log volume.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			ctrllog.Log.Info("http request", "method", r.Method, "path", r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("healthy"))
}

func handleState(mgr *manager.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(mgr.State.Snapshot())
	}
}

func handleJoin(mgr *manager.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		namespace, name := vars["namespace"], vars["name"]

		entries, err := mgr.Join(r.Context(), namespace, name)
		if err != nil {
			ctrllog.Log.Error(err, "join query failed", "namespace", namespace, "name", name)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if entries == nil {
			entries = []manager.VelocityServerEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)
	}
}
