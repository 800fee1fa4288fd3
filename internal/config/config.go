// Package config loads the operator's process-wide configuration from
// environment variables, failing fast at startup when a required variable
// is absent (spec §7: "Missing environment → abort process").
package config

import (
	"fmt"
	"os"

	"github.com/njha/mycelium/internal/operror"
)

// Config holds the operator-global settings threaded through every
// reconcile and the HTTP surface.
type Config struct {
	// ForwardingSecret is the global secret used to derive each
	// namespace's forwarding token (see internal/token).
	ForwardingSecret string

	// RunnerImage is the image used for both set and proxy pods.
	RunnerImage string

	// Endpoint is the URL injected into proxy pods as MYCELIUM_ENDPOINT.
	Endpoint string

	// OtelEndpoint is optional; if set, a future revision would attach a
	// tracing exporter here. Currently unused beyond being carried.
	// TODO: wire an OpenTelemetry exporter once tracing export is in scope.
	OtelEndpoint string
}

// Load reads the operator's configuration from the environment, returning
// a operror-wrapped KindMissingEnvironment error naming the first missing
// required variable.
func Load() (Config, error) {
	cfg := Config{
		OtelEndpoint: os.Getenv("OPENTELEMETRY_ENDPOINT_URL"),
	}

	required := []struct {
		name string
		dest *string
	}{
		{"MYCELIUM_FW_TOKEN", &cfg.ForwardingSecret},
		{"MYCELIUM_ENDPOINT", &cfg.Endpoint},
		{"MYCELIUM_RUNNER_IMAGE", &cfg.RunnerImage},
	}

	for _, r := range required {
		v, ok := os.LookupEnv(r.name)
		if !ok || v == "" {
			return Config{}, operror.New(operror.KindMissingEnvironment, "config.Load",
				fmt.Errorf("required environment variable %s is not set", r.name))
		}
		*r.dest = v
	}

	return cfg, nil
}
