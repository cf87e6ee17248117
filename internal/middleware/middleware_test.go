package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"delete-on-check/pkg/log"
)

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Trace(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.TraceID(c.Request.Context()))
	})
	return r
}

func get(r http.Handler, ip string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request per client.
	r := newEngine(New(&mockLogger{}, 10))

	if w := get(r, "10.0.0.1", nil); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	if w := get(r, "10.0.0.1", nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", w.Code)
	}
	if w := get(r, "10.0.0.2", nil); w.Code != http.StatusOK {
		t.Errorf("other client: expected 200, got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(New(&mockLogger{}, 0))
	for i := 0; i < 20; i++ {
		if w := get(r, "10.0.0.1", nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestTrace(t *testing.T) {
	r := newEngine(New(&mockLogger{}, 0))

	w := get(r, "10.0.0.1", http.Header{"X-Request-Id": {"req-42"}})
	if w.Body.String() != "req-42" || w.Header().Get(traceHeader) != "req-42" {
		t.Errorf("expected incoming id to be kept, got body %q header %q", w.Body.String(), w.Header().Get(traceHeader))
	}

	w = get(r, "10.0.0.1", nil)
	if w.Body.String() == "" || w.Body.String() != w.Header().Get(traceHeader) {
		t.Errorf("expected generated id, got %q", w.Body.String())
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
		remote string
		want   string
	}{
		{"forwarded", http.Header{"X-Forwarded-For": {"1.1.1.1, 2.2.2.2"}}, "9.9.9.9:1", "1.1.1.1"},
		{"real ip", http.Header{"X-Real-Ip": {"3.3.3.3"}}, "9.9.9.9:1", "3.3.3.3"},
		{"remote", nil, "9.9.9.9:1", "9.9.9.9"},
		{"remote without port", nil, "9.9.9.9", "9.9.9.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.header {
				req.Header[k] = v
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
