package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leanhub/platform/api"
	"github.com/leanhub/platform/health"
	"github.com/leanhub/platform/observe"
	"github.com/leanhub/platform/version"
)

// Service bundles one deployable unit: its logger, metrics client,
// telemetry providers, health checks, and router.
type Service struct {
	cfg     Config
	version string

	Log       *observe.Logger
	Metrics   *observe.MetricsClient
	Telemetry *observe.Telemetry
	Health    *health.Aggregator

	router chi.Router
}

// New constructs a Service: one logger and one metrics client per process,
// wired into the router through the correlation, tracing, and monitoring
// middleware, with /health and /version mounted.
func New(ctx context.Context, cfg Config, serviceVersion string) (*Service, error) {
	log := observe.NewLogger(observe.Config{
		Service:   cfg.Service,
		ProjectID: cfg.ProjectID,
		Level:     cfg.LogLevel,
	})

	metrics := observe.NewMetricsClient(observe.MetricsConfig{
		Service: cfg.Service,
		Enabled: cfg.MetricsEnabled,
		Diag:    log,
	})

	telemetry, err := observe.NewTelemetry(ctx, observe.TelemetryConfig{
		ServiceName: cfg.Service,
		Version:     serviceVersion,
		Tracing: observe.TracingConfig{
			Enabled:   cfg.TraceExporter != "" && cfg.TraceExporter != "none",
			Exporter:  cfg.TraceExporter,
			SamplePct: cfg.TraceSamplePct,
		},
		Metrics: observe.OTelMetricsConfig{
			Enabled:  cfg.MetricExporter != "" && cfg.MetricExporter != "none",
			Exporter: cfg.MetricExporter,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry setup: %w", err)
	}

	agg := health.NewAggregator(0)
	agg.Register(&health.RuntimeChecker{})

	s := &Service{
		cfg:       cfg,
		version:   serviceVersion,
		Log:       log,
		Metrics:   metrics,
		Telemetry: telemetry,
		Health:    agg,
	}

	r := chi.NewRouter()
	r.Use(observe.CorrelationMiddleware(log))
	r.Use(telemetry.Middleware())
	r.Use(observe.MonitorMiddleware(metrics))

	r.Get("/health", health.Handler(agg, metrics))
	r.Get("/healthz", health.LivenessHandler())
	r.Get("/version", s.versionHandler)

	s.router = r
	return s, nil
}

// Router returns the service's router for mounting additional endpoints.
func (s *Service) Router() chi.Router {
	return s.router
}

// Name returns the configured service name.
func (s *Service) Name() string {
	return s.cfg.Service
}

// Version returns the service version.
func (s *Service) Version() string {
	return s.version
}

func (s *Service) versionHandler(w http.ResponseWriter, r *http.Request) {
	api.Respond(w, http.StatusOK, map[string]any{
		"service_version": s.version,
		"shared_lib_info": version.Get(),
	}, "")
}
