// Package telemetry exposes the bot's OpenTelemetry metrics in Prometheus format.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// DefaultServiceName is reported as service.name on every series.
	DefaultServiceName = "syncbot"

	readHeaderTimeout = 5 * time.Second
)

// Exporter owns the SDK meter provider and the HTTP server that serves it.
type Exporter struct {
	provider *sdkmetric.MeterProvider
	registry *prometheus.Registry
	server   *http.Server
}

// NewExporter creates a meter provider whose readings are collected on each Prometheus scrape.
func NewExporter(ctx context.Context, serviceName, serviceVersion string) (*Exporter, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	registry := prometheus.NewRegistry()
	reader, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	return &Exporter{
		provider: sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(reader),
		),
		registry: registry,
	}, nil
}

func (e *Exporter) MeterProvider() metric.MeterProvider {
	return e.provider
}

// Router serves /metrics and a trivial /healthz.
func (e *Exporter) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// Serve starts listening on addr and serves in the background until Shutdown.
func (e *Exporter) Serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	e.server = &http.Server{
		Handler:           e.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		if err := e.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server stopped", "error", err)
		}
	}()
	slog.Info("metrics server listening", "addr", ln.Addr().String())
	return nil
}

func (e *Exporter) Shutdown(ctx context.Context) error {
	var errs []error
	if e.server != nil {
		errs = append(errs, e.server.Shutdown(ctx))
	}
	errs = append(errs, e.provider.Shutdown(ctx))
	return errors.Join(errs...)
}
