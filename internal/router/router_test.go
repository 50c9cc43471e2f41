package router

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/greeter/greeter/internal/handler"
	"github.com/greeter/greeter/internal/metrics"
	"github.com/greeter/greeter/internal/model"
)

const usersJSON = `[{"id":1,"name":"Alice","email":"alice@example.com"},` +
	`{"id":2,"name":"Bob","email":"bob@example.com"},` +
	`{"id":3,"name":"Charlie","email":"charlie@example.com"}]`

func newTestRouter(secret string) (http.Handler, *metrics.InMemoryRecorder, *bytes.Buffer) {
	var buf bytes.Buffer
	rec := metrics.NewInMemory()
	r := New(handler.New(model.Settings{Secret: secret}), Options{
		Logger:   slog.New(slog.NewJSONHandler(&buf, nil)),
		Recorder: rec,
	})
	return r, rec, &buf
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRouter("xyz")

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantBody    string
		contentType string
	}{
		{"root", http.MethodGet, "/", http.StatusOK, "<h1>Rust server</h1> <p>My secret: xyz</p>", "text/html; charset=utf-8"},
		{"users", http.MethodGet, "/api/users", http.StatusOK, usersJSON, "application/json"},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, "Route not found", "text/plain; charset=utf-8"},
		{"users trailing slash", http.MethodGet, "/api/users/", http.StatusNotFound, "Route not found", "text/plain; charset=utf-8"},
		{"users subpath", http.MethodGet, "/api/users/1", http.StatusNotFound, "Route not found", "text/plain; charset=utf-8"},
		{"api prefix", http.MethodGet, "/api", http.StatusNotFound, "Route not found", "text/plain; charset=utf-8"},
		{"post root", http.MethodPost, "/", http.StatusNotFound, "Route not found", "text/plain; charset=utf-8"},
		{"delete users", http.MethodDelete, "/api/users", http.StatusNotFound, "Route not found", "text/plain; charset=utf-8"},
		{"put unknown", http.MethodPut, "/elsewhere", http.StatusNotFound, "Route not found", "text/plain; charset=utf-8"},
		{"query string ignored", http.MethodGet, "/api/users?limit=1", http.StatusOK, usersJSON, "application/json"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	r, rec, logs := newTestRouter("xyz")

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	if resp.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers")
	}
	if got := rec.Snapshot().Requests; got != 1 {
		t.Errorf("Requests = %d, want 1", got)
	}
	if !strings.Contains(logs.String(), `"path":"/"`) {
		t.Errorf("expected request log, got: %s", logs.String())
	}
	if strings.Contains(logs.String(), "xyz") {
		t.Errorf("secret leaked into request log: %s", logs.String())
	}
}

func TestRouter_ForwardedHeadersNotLogged(t *testing.T) {
	t.Parallel()

	r, _, logs := newTestRouter("xyz")

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("X-Real-IP", "198.51.100.7")
	req.Header.Set("True-Client-IP", "198.51.100.8")

	r.ServeHTTP(httptest.NewRecorder(), req)

	for _, value := range []string{"203.0.113.9", "198.51.100.7", "198.51.100.8"} {
		if strings.Contains(logs.String(), value) {
			t.Errorf("request log contains forwarded header value %q: %s", value, logs.String())
		}
	}
	if !strings.Contains(logs.String(), `"remote_addr":"192.0.2.1:1234"`) {
		t.Errorf("expected peer address in request log, got: %s", logs.String())
	}
}

func TestRouter_ConcurrentRequestsSeeSameSecret(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(mustRouter("shared-secret"))
	defer srv.Close()

	want := "<h1>Rust server</h1> <p>My secret: shared-secret</p>"

	var wg sync.WaitGroup
	errs := make(chan string, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(srv.URL + "/")
			if err != nil {
				errs <- err.Error()
				return
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			if string(body) != want {
				errs <- string(body)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("unexpected response: %s", e)
	}
}

func mustRouter(secret string) http.Handler {
	r, _, _ := newTestRouter(secret)
	return r
}
