package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const apiInstrumentation = "github.com/riskibarqy/nfl-fantasy-pickem/internal/interfaces/httpapi"

// startSpan opens a child of the request span for handler names only, on
// the request span's own provider. Middleware and response helpers share
// the handler span. Filtered routes such as /api/health carry no request
// span and get a no-op.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noop.Span{}
	}
	return parent.TracerProvider().Tracer(apiInstrumentation).Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// annotateSpanError tags the active span with the mapped failure. Only
// 5xx responses mark it as errored.
func annotateSpanError(ctx context.Context, err error, mapped mappedError) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("error.reason", mapped.Reason),
		attribute.Int("http.response.status_code", mapped.HTTPStatus),
	)
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		span.RecordError(err)
		span.SetStatus(codes.Error, mapped.Reason)
	}
}
