// Package metrics provides Prometheus instrumentation for the relay: business
// operation counters and durations plus HTTP request metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider owns the Prometheus registry all relay metrics are registered in.
type Provider struct {
	namespace string
	registry  *prometheus.Registry
}

// NewProvider creates a provider with a private registry that already carries
// the Go runtime and process collectors. The namespace prefixes every metric
// name (e.g. "cookie_relay").
func NewProvider(namespace string) *Provider {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Provider{
		namespace: namespace,
		registry:  registry,
	}
}

// Handler serves the registry in Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registerer returns the registry for registering additional collectors.
func (p *Provider) Registerer() prometheus.Registerer {
	return p.registry
}

// Namespace returns the metric name prefix.
func (p *Provider) Namespace() string {
	return p.namespace
}
