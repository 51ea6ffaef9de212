package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"ecommerce-dashboard/internal/config"
	"ecommerce-dashboard/internal/observability"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = observability.GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("X-Request-ID = %q, want a UUID", header)
	}
	if seen != header {
		t.Errorf("context request id = %q, want %q", seen, header)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	h := RequestID()(okHandler())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := config.Default().Security
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 2
	h := RateLimit(NewRateLimiter(cfg), testLogger())(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.0.0.1:5000"
		h.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want %d", codes[2], http.StatusTooManyRequests)
	}
}

func TestRateLimiter_ClientIP(t *testing.T) {
	cfg := config.Default().Security
	cfg.TrustedProxies = []string{"127.0.0.1"}
	rl := NewRateLimiter(cfg)

	tests := []struct {
		name   string
		remote string
		xff    string
		want   string
	}{
		{"direct client", "10.0.0.1:5000", "", "10.0.0.1"},
		{"untrusted peer cannot spoof", "10.0.0.1:5000", "203.0.113.9", "10.0.0.1"},
		{"trusted proxy forwards", "127.0.0.1:5000", "203.0.113.9, 127.0.0.1", "203.0.113.9"},
		{"trusted proxy without header", "127.0.0.1:5000", "", "127.0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if got := rl.ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	cfg := config.Default().Security
	rl := NewRateLimiter(cfg)
	now := time.Date(2017, 11, 24, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")
	if len(rl.visitors) != 2 {
		t.Fatalf("visitors = %d, want 2", len(rl.visitors))
	}

	now = now.Add(2 * visitorTTL)
	rl.Allow("10.0.0.3")
	if len(rl.visitors) != 1 {
		t.Errorf("visitors after sweep = %d, want 1", len(rl.visitors))
	}
	if _, ok := rl.visitors["10.0.0.3"]; !ok {
		t.Error("current visitor should be kept")
	}
}

func TestRateLimit_RetryAfter(t *testing.T) {
	cfg := config.Default().Security
	cfg.RateLimitBurst = 1
	h := RateLimit(NewRateLimiter(cfg), testLogger())(okHandler())

	var w *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	}
	if w.Code != http.StatusTooManyRequests || w.Header().Get("Retry-After") == "" {
		t.Errorf("status = %d, Retry-After = %q", w.Code, w.Header().Get("Retry-After"))
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := config.Default().Security
	cfg.EnableRateLimit = false
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	h := RateLimit(NewRateLimiter(cfg), testLogger())(okHandler())

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, w.Code)
		}
	}
}

func TestRecovery(t *testing.T) {
	h := Recovery(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestSecurityHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	SecurityHeaders()(okHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("expected X-Frame-Options: DENY")
	}
	csp := w.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.jsdelivr.net;") {
		t.Errorf("Content-Security-Policy = %q, want jsDelivr scripts allowed", csp)
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := config.Default().Security
	h := CORS(cfg)(okHandler())

	r := httptest.NewRequest(http.MethodOptions, "/api/late-orders", nil)
	r.Header.Set("Origin", "http://localhost:8501")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8501" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
