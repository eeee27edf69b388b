package observability

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"resumatch/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// PrometheusConfig holds Prometheus-specific configuration
type PrometheusConfig struct {
	Enabled  bool
	Endpoint string
	Port     string
}

// prometheusExporter is a metric reader plus the scrape server that exposes it.
// Metrics go to a private registry so repeated managers in one process do not
// collide on the default registry.
type prometheusExporter struct {
	reader sdkmetric.Reader
	server *http.Server
}

func newPrometheusExporter(cfg PrometheusConfig) (*prometheusExporter, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	reader, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "/metrics"
	}
	mux := http.NewServeMux()
	mux.Handle("GET "+endpoint, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	return &prometheusExporter{
		reader: reader,
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

// start serves scrapes in the background until shutdown
func (p *prometheusExporter) start() {
	log.Printf("Starting Prometheus metrics server on %s", p.server.Addr)
	go func() {
		if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Prometheus server error: %v", err)
		}
	}()
}

func (p *prometheusExporter) shutdown(ctx context.Context) error {
	return p.server.Shutdown(ctx)
}

// GetPrometheusConfig creates Prometheus configuration from provided config.
// The exporter only runs when metrics are enabled as well.
func GetPrometheusConfig(cfg *config.Config) PrometheusConfig {
	if cfg == nil {
		return PrometheusConfig{
			Enabled:  true,
			Endpoint: "/metrics",
			Port:     "9090",
		}
	}

	prom := cfg.Observability.Prometheus
	return PrometheusConfig{
		Enabled:  prom.Enabled && cfg.Observability.Metrics.Enabled,
		Endpoint: prom.Endpoint,
		Port:     prom.Port,
	}
}
