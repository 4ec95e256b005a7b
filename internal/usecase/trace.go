package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const usecaseInstrumentation = "github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"

// startUsecaseSpan opens a child span on the caller's tracer provider.
// Calls without a valid parent span get a no-op and never start a root.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if strings.TrimSpace(name) == "" || !parent.SpanContext().IsValid() {
		return ctx, noop.Span{}
	}
	return parent.TracerProvider().Tracer(usecaseInstrumentation).Start(ctx, name, trace.WithAttributes(attrs...))
}

// endUsecaseSpan records err on span, if any, and ends it.
func endUsecaseSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
