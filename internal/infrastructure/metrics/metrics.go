package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the identification
// pipeline. All methods are nil-safe so collaborators can run without
// metrics wired in.
type Metrics struct {
	registry *prometheus.Registry

	jobsStartedTotal        prometheus.Counter
	jobsCompletedTotal      prometheus.Counter
	jobsFailedTotal         prometheus.Counter
	activeJobs              prometheus.Gauge
	segmentsProcessedTotal  prometheus.Counter
	recognitionRetriesTotal prometheus.Counter
	tracksIdentifiedTotal   prometheus.Counter
	requestsTotal           prometheus.Counter
	errorsTotal             prometheus.Counter
}

// New creates and registers Prometheus metrics for the pipeline.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		jobsStartedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackify_jobs_started_total",
			Help: "Total number of identification jobs submitted",
		}),
		jobsCompletedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackify_jobs_completed_total",
			Help: "Total number of jobs that reached the completed state",
		}),
		jobsFailedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackify_jobs_failed_total",
			Help: "Total number of jobs that reached the failed state",
		}),
		activeJobs: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "trackify_active_jobs",
			Help: "Number of jobs currently processing",
		}),
		segmentsProcessedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackify_segments_processed_total",
			Help: "Total number of audio segments submitted for recognition",
		}),
		recognitionRetriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackify_recognition_retries_total",
			Help: "Total number of recognition attempts retried after a transient failure",
		}),
		tracksIdentifiedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackify_tracks_identified_total",
			Help: "Total number of unique tracks emitted by completed jobs",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackify_http_requests_total",
			Help: "Total number of HTTP requests received",
		}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackify_http_errors_total",
			Help: "Total number of HTTP responses with error status (4xx or 5xx)",
		}),
	}

	registry.MustRegister(
		m.jobsStartedTotal,
		m.jobsCompletedTotal,
		m.jobsFailedTotal,
		m.activeJobs,
		m.segmentsProcessedTotal,
		m.recognitionRetriesTotal,
		m.tracksIdentifiedTotal,
		m.requestsTotal,
		m.errorsTotal,
	)

	return m
}

// IncJobsStarted increments the submitted jobs counter and the active gauge.
func (m *Metrics) IncJobsStarted() {
	if m == nil {
		return
	}
	m.jobsStartedTotal.Inc()
	m.activeJobs.Inc()
}

// IncJobsCompleted records a job reaching the completed state.
func (m *Metrics) IncJobsCompleted() {
	if m == nil {
		return
	}
	m.jobsCompletedTotal.Inc()
	m.activeJobs.Dec()
}

// IncJobsFailed records a job reaching the failed state.
func (m *Metrics) IncJobsFailed() {
	if m == nil {
		return
	}
	m.jobsFailedTotal.Inc()
	m.activeJobs.Dec()
}

// IncSegmentsProcessed counts one segment handed to the recognizer.
func (m *Metrics) IncSegmentsProcessed() {
	if m == nil {
		return
	}
	m.segmentsProcessedTotal.Inc()
}

// IncRecognitionRetries counts one retried recognition attempt.
func (m *Metrics) IncRecognitionRetries() {
	if m == nil {
		return
	}
	m.recognitionRetriesTotal.Inc()
}

// AddTracksIdentified counts tracks emitted by a completed job.
func (m *Metrics) AddTracksIdentified(n int) {
	if m == nil {
		return
	}
	m.tracksIdentifiedTotal.Add(float64(n))
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	if m == nil {
		return
	}
	m.requestsTotal.Inc()
}

// IncErrors increments the HTTP errors counter.
func (m *Metrics) IncErrors() {
	if m == nil {
		return
	}
	m.errorsTotal.Inc()
}

// Handler returns an http.Handler that serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
