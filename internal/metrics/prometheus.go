package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder exports metrics through a dedicated Prometheus registry.
type PrometheusRecorder struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	pagesServed     *prometheus.CounterVec
	recordsEmitted  *prometheus.CounterVec
	faultsInjected  *prometheus.CounterVec
	injectedDelay   prometheus.Histogram
	streamsAborted  *prometheus.CounterVec
	completed       prometheus.Counter
}

// NewPrometheus creates a recorder with Go runtime and process collectors registered.
func NewPrometheus() *PrometheusRecorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &PrometheusRecorder{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "challenge_http_requests_total",
			Help: "Total HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "challenge_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, including injected delays and streaming.",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"method", "route", "status"}),
		pagesServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "challenge_pages_served_total",
			Help: "Pages whose stream was started, by difficulty level.",
		}, []string{"level"}),
		recordsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "challenge_records_emitted_total",
			Help: "Usage records written to clients, by difficulty level.",
		}, []string{"level"}),
		faultsInjected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "challenge_faults_injected_total",
			Help: "Injected delays and error responses, by difficulty level.",
		}, []string{"level", "kind"}),
		injectedDelay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "challenge_injected_delay_seconds",
			Help:    "Length of injected delays.",
			Buckets: prometheus.LinearBuckets(0, 2.5, 9),
		}),
		streamsAborted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "challenge_streams_aborted_total",
			Help: "Streams stopped before the closing bracket, by reason.",
		}, []string{"level", "reason"}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "challenge_completed_total",
			Help: "Requests answered with the completion response.",
		}),
	}
	registry.MustRegister(
		m.requestTotal,
		m.requestDuration,
		m.pagesServed,
		m.recordsEmitted,
		m.faultsInjected,
		m.injectedDelay,
		m.streamsAborted,
		m.completed,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one finished request.
func (m *PrometheusRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.requestTotal.WithLabelValues(method, route, code).Inc()
	m.requestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

// IncPageServed increments the page counter.
func (m *PrometheusRecorder) IncPageServed(level int) {
	m.pagesServed.WithLabelValues(strconv.Itoa(level)).Inc()
}

// AddRecordsEmitted adds n to the record counter.
func (m *PrometheusRecorder) AddRecordsEmitted(level int, n int) {
	m.recordsEmitted.WithLabelValues(strconv.Itoa(level)).Add(float64(n))
}

// IncFaultInjected increments the fault counter.
func (m *PrometheusRecorder) IncFaultInjected(level int, kind string) {
	m.faultsInjected.WithLabelValues(strconv.Itoa(level), kind).Inc()
}

// ObserveInjectedDelay records an injected delay.
func (m *PrometheusRecorder) ObserveInjectedDelay(delay time.Duration) {
	m.injectedDelay.Observe(delay.Seconds())
}

// IncStreamAborted increments the abort counter.
func (m *PrometheusRecorder) IncStreamAborted(level int, reason string) {
	m.streamsAborted.WithLabelValues(strconv.Itoa(level), reason).Inc()
}

// IncChallengeCompleted increments the completion counter.
func (m *PrometheusRecorder) IncChallengeCompleted() {
	m.completed.Inc()
}
