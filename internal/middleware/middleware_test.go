package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sun1tar/task-service/internal/logger"
)

func TestRequestIDMiddleware_Generates(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	if seen == "" {
		t.Fatalf("request id not stored in context")
	}
	if got := rr.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("response header=%q, want %q", got, seen)
	}
}

func TestRequestIDMiddleware_ReusesIncoming(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "abc-123" {
		t.Fatalf("request id=%q, want abc-123", seen)
	}
}

func TestLoggingMiddleware_LogsStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "tasks", "info")

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := RequestIDMiddleware(LoggingMiddleware(log)(inner))

	req := httptest.NewRequest(http.MethodDelete, "/tasks/3", nil)
	req.Header.Set(RequestIDHeader, "rid-9")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if line["status"] != float64(http.StatusTeapot) {
		t.Fatalf("status=%v, want %d", line["status"], http.StatusTeapot)
	}
	if line["request_id"] != "rid-9" {
		t.Fatalf("request_id=%v, want rid-9", line["request_id"])
	}
	if line["method"] != http.MethodDelete || line["path"] != "/tasks/3" {
		t.Fatalf("method/path=%v %v", line["method"], line["path"])
	}
}

func TestNormalizeRoute(t *testing.T) {
	cases := map[string]string{
		"/tasks":      "/tasks",
		"/tasks/42":   "/tasks/{id}",
		"/tasks/abc":  "/tasks/abc",
		"/":           "/",
		"/tasks/-1/x": "/tasks/{id}/x",
	}
	for in, want := range cases {
		if got := normalizeRoute(in); got != want {
			t.Fatalf("normalizeRoute(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestMetricsMiddleware_Exposed(t *testing.T) {
	h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tasks/77", nil))

	rr := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rr.Body.String()
	want := `http_requests_total{method="GET",route="/tasks/{id}",status="404"}`
	if !strings.Contains(body, want) {
		t.Fatalf("metrics output missing %s", want)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	for _, name := range []string{"X-Content-Type-Options", "X-Frame-Options", "Content-Security-Policy", "Referrer-Policy"} {
		if rr.Header().Get(name) == "" {
			t.Fatalf("header %s not set", name)
		}
	}
}
