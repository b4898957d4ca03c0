// Package trace wires OpenTelemetry tracing for animation groups.
package trace

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope for toast animation spans.
const TracerName = "toastfx/animator"

// OTLPExporter exports animation spans to an OTLP endpoint. A nil
// *OTLPExporter is valid and means tracing is disabled.
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// It returns a nil exporter and nil error when the endpoint is not configured.
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "toastfx"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return newExporter(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewWithProvider wraps an existing SDK provider (tests use an in-memory recorder).
func NewWithProvider(provider *sdktrace.TracerProvider) *OTLPExporter {
	return newExporter(provider)
}

func newExporter(provider *sdktrace.TracerProvider) *OTLPExporter {
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer(TracerName),
	}
}

// Tracer returns the exporter's tracer, or a no-op tracer when disabled.
func (e *OTLPExporter) Tracer() oteltrace.Tracer {
	if e == nil {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return e.tracer
}

// Shutdown flushes and closes the exporter.
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}

// GroupAttributes describes an animation group on its span.
func GroupAttributes(element string, duration time.Duration, members int, pivotX, pivotY float64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("toastfx.element", element),
		attribute.Int64("toastfx.duration_ms", duration.Milliseconds()),
		attribute.Int("toastfx.members", members),
		attribute.Float64("toastfx.pivot.x", pivotX),
		attribute.Float64("toastfx.pivot.y", pivotY),
	}
}

// Outcome maps a playback result to the outcome attribute.
func Outcome(err error) attribute.KeyValue {
	if err == nil {
		return attribute.String("toastfx.outcome", "completed")
	}
	return attribute.String("toastfx.outcome", err.Error())
}
