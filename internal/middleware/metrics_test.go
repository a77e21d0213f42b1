package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type captureRecorder struct {
	requests []recordedRequest
}

func (c *captureRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	c.requests = append(c.requests, recordedRequest{method, route, status})
}
func (c *captureRecorder) IncPageServed(int) {}
func (c *captureRecorder) AddRecordsEmitted(int, int) {}
func (c *captureRecorder) IncFaultInjected(int, string) {}
func (c *captureRecorder) ObserveInjectedDelay(time.Duration) {}
func (c *captureRecorder) IncStreamAborted(int, string) {}
func (c *captureRecorder) IncChallengeCompleted() {}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	t.Parallel()

	rec := &captureRecorder{}
	r := chi.NewRouter()
	r.Use(Metrics(rec))
	r.Get("/usage/{pageNo}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for _, path := range []string{"/usage/31", "/usage/32"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	if len(rec.requests) != 2 {
		t.Fatalf("recorded %d requests, want 2", len(rec.requests))
	}
	for _, got := range rec.requests {
		want := recordedRequest{"GET", "/usage/{pageNo}", http.StatusServiceUnavailable}
		if got != want {
			t.Errorf("recorded %+v, want %+v", got, want)
		}
	}
}
