package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// withTestTracer swaps the global tracer for one backed by an in-memory
// exporter, restoring it when the test finishes.
func withTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := Tracer
	Tracer = tp.Tracer("tracing-test")
	t.Cleanup(func() {
		Tracer = prev
		_ = tp.Shutdown(context.Background())
	})
	return exporter
}

func attrValue(attrs []attribute.KeyValue, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range attrs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestNewSpanRecordsAttributesAndError(t *testing.T) {
	exporter := withTestTracer(t)

	span, _ := NewSpan(context.Background(), "user.delete_cascade")
	span.AddAttributes(attribute.Int("user.id", 7))
	span.SetError(errors.New("boom"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 exported span, got %d", len(spans))
	}
	got := spans[0]
	if got.Name != "user.delete_cascade" {
		t.Fatalf("unexpected span name %q", got.Name)
	}
	if got.Status.Code != codes.Error {
		t.Fatalf("expected error status, got %v", got.Status.Code)
	}
	v, ok := attrValue(got.Attributes, "user.id")
	if !ok || v.AsInt64() != 7 {
		t.Fatalf("user.id attribute missing or wrong: %v", got.Attributes)
	}
}

func TestTraceRepositoryMethodSpanShape(t *testing.T) {
	exporter := withTestTracer(t)

	_, span := GetTraceLayer().TraceRepositoryMethod(context.Background(), "GetByID", "users")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 exported span, got %d", len(spans))
	}
	got := spans[0]
	if got.Name != "repository.GetByID" {
		t.Fatalf("unexpected span name %q", got.Name)
	}
	if v, ok := attrValue(got.Attributes, "db.table"); !ok || v.AsString() != "users" {
		t.Fatalf("db.table attribute missing or wrong: %v", got.Attributes)
	}
	if v, ok := attrValue(got.Attributes, "db.system"); !ok || v.AsString() != "postgresql" {
		t.Fatalf("db.system attribute missing or wrong: %v", got.Attributes)
	}
}

func TestTraceRedisOperationSpanShape(t *testing.T) {
	exporter := withTestTracer(t)

	_, span := GetTraceLayer().TraceRedisOperation(context.Background(), "get")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 exported span, got %d", len(spans))
	}
	got := spans[0]
	if got.Name != "redis.get" {
		t.Fatalf("unexpected span name %q", got.Name)
	}
	if v, ok := attrValue(got.Attributes, "db.system"); !ok || v.AsString() != "redis" {
		t.Fatalf("db.system attribute missing or wrong: %v", got.Attributes)
	}
}
