// Package tracing installs the process TracerProvider and the echo
// request middleware. Tracing stays off until OTEL_EXPORTER_OTLP_ENDPOINT
// is set.
package tracing

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/internal/server"
	"github.com/amamam1231/ai-project-312/internal/version"
	"github.com/amamam1231/ai-project-312/pkg/logger"
)

var Module = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
	fx.Invoke(RegisterTracingLifecycle),
	fx.Invoke(RegisterEchoMiddleware),
)

type providerResult struct {
	fx.Out

	// nil when tracing is disabled
	SDKProvider *sdktrace.TracerProvider `name:"otelSDKProvider" optional:"true"`
}

// NewTracerProvider registers a global provider: an OTLP/HTTP exporter
// when configured, otherwise a no-op.
func NewTracerProvider(cfg *config.Config, log *slog.Logger) (providerResult, error) {
	log = log.With(logger.Scope("tracing"))
	oc := cfg.Otel

	if !oc.Enabled() {
		log.Debug("tracing disabled")
		otel.SetTracerProvider(noop.NewTracerProvider())
		return providerResult{}, nil
	}

	exp, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithEndpointURL(oc.ExporterEndpoint),
	)
	if err != nil {
		return providerResult{}, err
	}

	res, err := resource.New(context.Background(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(oc.ServiceName),
			semconv.ServiceVersion(version.Version),
		),
		resource.WithFromEnv(),
	)
	if err != nil {
		log.Warn("resource detection failed", logger.Error(err))
		res = resource.Empty()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(oc.SamplingRate)),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing enabled",
		slog.String("endpoint", oc.ExporterEndpoint),
		slog.String("service", oc.ServiceName),
		slog.Float64("sampling_rate", oc.SamplingRate))

	return providerResult{SDKProvider: tp}, nil
}

func sampler(rate float64) sdktrace.Sampler {
	if rate >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
}

type providerParam struct {
	fx.In
	SDKProvider *sdktrace.TracerProvider `name:"otelSDKProvider" optional:"true"`
}

// RegisterTracingLifecycle flushes pending spans on shutdown.
func RegisterTracingLifecycle(lc fx.Lifecycle, p providerParam) {
	if p.SDKProvider == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: p.SDKProvider.Shutdown,
	})
}

// RegisterEchoMiddleware traces every request except probe endpoints.
func RegisterEchoMiddleware(e *echo.Echo, cfg *config.Config) {
	if !cfg.Otel.Enabled() {
		return
	}
	e.Use(otelecho.Middleware(cfg.Otel.ServiceName,
		otelecho.WithSkipper(func(c echo.Context) bool {
			return server.Quiet(c.Request().URL.Path)
		}),
	))
}
