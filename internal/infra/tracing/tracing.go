// Package tracing configures OpenTelemetry trace export.
package tracing

import (
	"context"
	"log/slog"

	"accounts/config"
	"accounts/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"
)

// Shutdown flushes and stops the tracer provider.
type Shutdown func(context.Context) error

// Enabled reports whether an OTLP endpoint is configured.
func Enabled(cfg *config.Config) bool {
	return cfg.Tracing != nil && cfg.Tracing.Endpoint != ""
}

// Init configures an OTLP HTTP exporter when an endpoint is set.
// Without one, tracing stays a no-op and the returned Shutdown does nothing.
func Init(ctx context.Context, logger *slog.Logger, cfg *config.Config) (Shutdown, error) {
	if !Enabled(cfg) {
		logger.Info("Tracing disabled: no OTLP endpoint configured")

		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Tracing.Endpoint)}
	if cfg.Tracing.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create OTLP exporter")
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.Env.ServiceName),
			semconv.DeploymentEnvironment(cfg.Env.Env),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "build trace resource")
	}

	ratio := cfg.Tracing.Ratio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	logger.Info("Tracing initialized",
		slog.String("endpoint", cfg.Tracing.Endpoint),
		slog.Float64("ratio", ratio),
	)

	return tp.Shutdown, nil
}

// Params holds dependencies for tracing registration, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Register initializes tracing and flushes it on shutdown.
func Register(params Params) error {
	shutdown, err := Init(params.Ctx, params.Logger, params.Config)
	if err != nil {
		return err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})

	return nil
}
