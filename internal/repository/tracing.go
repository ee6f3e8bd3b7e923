package repository

import (
	"context"

	"murmur/internal/observability"

	"go.opentelemetry.io/otel/trace"
)

// startSpan opens a repository-layer span for one store call.
func startSpan(ctx context.Context, method, table string) (context.Context, trace.Span) {
	return observability.GetTraceLayer().TraceRepositoryMethod(ctx, method, table)
}
