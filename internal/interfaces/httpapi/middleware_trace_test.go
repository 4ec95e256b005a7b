package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/api/health":        false,
		"/healthz":           false,
		"/livez":             false,
		"/readyz":            false,
		" /API/health ":      false,
		"/api/nfl/teams":     true,
		"/api/pickem/groups": true,
		"/docs":              true,
	}
	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", path, got, want)
		}
	}
}

func TestRequestTracing_SpansNonHealthRequests(t *testing.T) {
	tp, recorder := newRecordingProvider(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, span := startSpan(r.Context(), "httpapi.Handler.ListNFLTeams")
		span.End()
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequestTracing(next, otelhttp.WithTracerProvider(tp))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if n := len(recorder.Ended()); n != 0 {
		t.Fatalf("expected no spans for health check, got %d", n)
	}

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/nfl/teams", nil))
	ended := recorder.Ended()
	if len(ended) != 2 {
		t.Fatalf("expected handler and server spans, got %d", len(ended))
	}
	if ended[0].Name() != "httpapi.Handler.ListNFLTeams" || ended[1].Name() != "GET /api/nfl/teams" {
		t.Fatalf("unexpected span names: %s, %s", ended[0].Name(), ended[1].Name())
	}
	if ended[0].Parent().SpanID() != ended[1].SpanContext().SpanID() {
		t.Fatalf("handler span is not a child of the server span")
	}
}
