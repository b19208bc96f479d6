package routing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteError_JSONForOps(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rec := httptest.NewRecorder()
	WriteError(rec, req, RouteClassOps, http.StatusNotFound, "not_found", "not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d", rec.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Code != "not_found" || env.TraceID != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("env=%+v", env)
	}
	if env.Meta.Path != "/health" || env.Meta.Method != http.MethodGet {
		t.Fatalf("meta=%+v", env.Meta)
	}
}

func TestWriteError_JSONWhenAccepted(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/lemma/1", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	WriteError(rec, req, RouteClassUI, http.StatusNotFound, "not_found", "not found")
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("content-type=%q", rec.Header().Get("Content-Type"))
	}
}

func TestWriteError_HTMLEscapesMessage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/lemma/1", nil)
	rec := httptest.NewRecorder()
	WriteError(rec, req, RouteClassUI, http.StatusNotFound, "not_found", "<script>")
	if !strings.Contains(rec.Body.String(), "&lt;script&gt;") {
		t.Fatalf("body=%q", rec.Body.String())
	}
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := TraceID(req); id == "" {
		t.Fatal("expected generated trace id")
	}

	for _, bad := range []string{
		"garbage",
		"00-short-00f067aa0ba902b7-01",
		"00-00000000000000000000000000000000-00f067aa0ba902b7-01",
		"00-4bf92f3577b34da6a3ce929d0e0e473X-00f067aa0ba902b7-01",
	} {
		req.Header.Set("traceparent", bad)
		if got := traceIDFromRequest(req); got != "" {
			t.Fatalf("traceparent=%q got %q", bad, got)
		}
	}

	req.Header.Set("traceparent", "00-4BF92F3577B34DA6A3CE929D0E0E4736-00f067aa0ba902b7-01")
	if got := traceIDFromRequest(req); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("got=%q", got)
	}
}
