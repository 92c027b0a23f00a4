package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the Prometheus metrics of the report service
type Metrics struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	reportsGenerated   prometheus.Counter
	recordsAggregated  prometheus.Counter
	generationDuration prometheus.Histogram
	failures           *prometheus.CounterVec
}

// NewMetrics creates a dedicated registry with the HTTP and reporting metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "salesreport_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "salesreport_http_request_duration_seconds",
		Help:    "HTTP request duration by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	generated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "salesreport_reports_generated_total",
		Help: "Quarterly reports generated successfully.",
	})
	records := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "salesreport_records_aggregated_total",
		Help: "Sales records folded into generated reports.",
	})
	generation := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "salesreport_generation_duration_seconds",
		Help:    "Time spent loading and aggregating a batch.",
		Buckets: prometheus.DefBuckets,
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "salesreport_failures_total",
		Help: "Report generation failures by error code.",
	}, []string{"code"})

	registry.MustRegister(requests, duration, generated, records, generation, failures)

	return &Metrics{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:      requests,
		requestDuration:    duration,
		reportsGenerated:   generated,
		recordsAggregated:  records,
		generationDuration: generation,
		failures:           failures,
	}
}

// Handler serves the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveGeneration records a successful report generation
func (m *Metrics) ObserveGeneration(records int, duration time.Duration) {
	if m == nil {
		return
	}
	m.reportsGenerated.Inc()
	m.recordsAggregated.Add(float64(records))
	m.generationDuration.Observe(duration.Seconds())
}

// IncFailure counts a failed generation under its error code
func (m *Metrics) IncFailure(code string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(code).Inc()
}

// Middleware records request count and latency under the given route label
func (m *Metrics) Middleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(&recorder, r)
			m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
			m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}

// Registerer exposes the registry for additional collectors
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
