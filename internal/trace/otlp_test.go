package trace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewOTLPExporter_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	e, err := NewOTLPExporter(context.Background())
	require.NoError(t, err)
	assert.Nil(t, e)

	// A nil exporter still hands out a usable tracer and shuts down cleanly.
	_, span := e.Tracer().Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, e.Shutdown(context.Background()))
}

func TestNewWithProvider_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	e := NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))

	_, span := e.Tracer().Start(context.Background(), "toast.show")
	span.SetAttributes(GroupAttributes("toast-1", 300*time.Millisecond, 3, 200, 50)...)
	span.SetAttributes(Outcome(nil))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "toast.show", ended[0].Name())
	attrs := attribute.NewSet(ended[0].Attributes()...)
	v, ok := attrs.Value("toastfx.duration_ms")
	require.True(t, ok)
	assert.Equal(t, int64(300), v.AsInt64())
	v, _ = attrs.Value("toastfx.outcome")
	assert.Equal(t, "completed", v.AsString())

	require.NoError(t, e.Shutdown(context.Background()))
}

func TestOutcome_Error(t *testing.T) {
	kv := Outcome(errors.New("animation canceled"))
	assert.Equal(t, "animation canceled", kv.Value.AsString())
}
