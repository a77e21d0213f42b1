package handler

import (
	"fmt"
	"net/http"

	"github.com/usagechallenge/challenge/internal/metrics"
)

// MetricsHandler exposes collected metrics.
type MetricsHandler struct {
	exposer     http.Handler
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler. Recorders with their own
// exposition handler (Prometheus) serve it; snapshot recorders are rendered
// as plain counters.
func NewMetricsHandler(recorder metrics.Recorder) *MetricsHandler {
	h := &MetricsHandler{}
	if exp, ok := recorder.(interface{ Handler() http.Handler }); ok {
		h.exposer = exp.Handler()
	}
	if snap, ok := recorder.(metrics.Snapshotter); ok {
		h.snapshotter = snap
	}
	return h
}

// Metrics returns metrics in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.exposer != nil {
		h.exposer.ServeHTTP(w, r)
		return
	}
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "challenge_http_requests_total %d\n", snap.HTTPRequests)
	writeMetric(w, "challenge_pages_served_total %d\n", snap.PagesServed)
	writeMetric(w, "challenge_records_emitted_total %d\n", snap.RecordsEmitted)

	writeMetric(w, "challenge_faults_injected_total{kind=\"delay\"} %d\n", snap.FaultDelays)
	writeMetric(w, "challenge_faults_injected_total{kind=\"error\"} %d\n", snap.FaultErrors)
	writeMetric(w, "challenge_injected_delay_seconds_sum %.6f\n", float64(snap.InjectedDelayTotalNs)/1e9)

	writeMetric(w, "challenge_streams_aborted_total{reason=\"client_gone\"} %d\n", snap.StreamsClientGone)
	writeMetric(w, "challenge_streams_aborted_total{reason=\"invariant\"} %d\n", snap.StreamsInvariant)

	writeMetric(w, "challenge_completed_total %d\n", snap.ChallengesCompleted)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
