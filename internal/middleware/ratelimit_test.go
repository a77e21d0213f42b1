package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/usagechallenge/challenge/internal/ratelimit"
)

type stubLimiter struct {
	result *ratelimit.Result
	err    error
}

func (s stubLimiter) Allow(ctx context.Context, subject string) (*ratelimit.Result, error) {
	return s.result, s.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitIP(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reset := time.Unix(1700000000, 0)

	tests := []struct {
		name           string
		cfg            RateLimitConfig
		wantStatus     int
		wantRetryAfter string
	}{
		{
			name:       "disabled passes through",
			cfg:        RateLimitConfig{Logger: logger, Enabled: false, Limiter: stubLimiter{result: &ratelimit.Result{Allowed: false}}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "allowed",
			cfg:        RateLimitConfig{Logger: logger, Enabled: true, Limiter: stubLimiter{result: &ratelimit.Result{Allowed: true, Limit: 5, Remaining: 4, ResetAt: reset}}},
			wantStatus: http.StatusOK,
		},
		{
			name:           "rejected",
			cfg:            RateLimitConfig{Logger: logger, Enabled: true, Limiter: stubLimiter{result: &ratelimit.Result{Allowed: false, Limit: 5, ResetAt: reset, RetryAfter: 1400 * time.Millisecond}}},
			wantStatus:     http.StatusTooManyRequests,
			wantRetryAfter: "1",
		},
		{
			name:       "store error fails open",
			cfg:        RateLimitConfig{Logger: logger, Enabled: true, Limiter: stubLimiter{err: errors.New("connection refused")}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			RateLimitIP(tt.cfg)(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/usage/1", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Retry-After"); got != tt.wantRetryAfter {
				t.Errorf("Retry-After = %q, want %q", got, tt.wantRetryAfter)
			}
			if tt.wantStatus == http.StatusTooManyRequests {
				if !strings.Contains(rec.Body.String(), "RATE_LIMITED") {
					t.Errorf("rate limit body missing error code: %s", rec.Body.String())
				}
				if rec.Header().Get("X-RateLimit-Limit") != "5" {
					t.Errorf("X-RateLimit-Limit = %q", rec.Header().Get("X-RateLimit-Limit"))
				}
			}
		})
	}
}

func TestRateLimitIP_LocalStore(t *testing.T) {
	t.Parallel()

	cfg := RateLimitConfig{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Enabled: true,
		Limiter: ratelimit.NewLocalStore(1, 2),
	}
	handler := RateLimitIP(cfg)(okHandler())

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest("GET", "/usage/1", nil)
		req.RemoteAddr = "203.0.113.9"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("status codes = %v, want %v", codes, want)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		wantIP string
	}{
		{"forwarded list", "198.51.100.1, 10.0.0.1", "", "10.0.0.2:1234", "198.51.100.1"},
		{"forwarded single", "198.51.100.1", "", "10.0.0.2:1234", "198.51.100.1"},
		{"real ip", "", "198.51.100.2", "10.0.0.2:1234", "198.51.100.2"},
		{"remote addr", "", "", "10.0.0.2:1234", "10.0.0.2"},
		{"remote addr without port", "", "", "10.0.0.3", "10.0.0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := getClientIP(req); got != tt.wantIP {
				t.Errorf("getClientIP = %q, want %q", got, tt.wantIP)
			}
		})
	}
}
