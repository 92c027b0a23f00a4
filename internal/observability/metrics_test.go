package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Generation(t *testing.T) {
	m := NewMetrics()

	m.ObserveGeneration(1000, 25*time.Millisecond)
	m.ObserveGeneration(500, 10*time.Millisecond)
	m.IncFailure("REPORT_SOURCE")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.reportsGenerated))
	assert.Equal(t, float64(1500), testutil.ToFloat64(m.recordsAggregated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.failures.WithLabelValues("REPORT_SOURCE")))
}

func TestMetrics_Middleware(t *testing.T) {
	m := NewMetrics()

	handler := m.Middleware("/v1/reports/quarterly")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/quarterly", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("/v1/reports/quarterly", "400")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.IncFailure("REPORT_RENDER")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `salesreport_failures_total{code="REPORT_RENDER"} 1`)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveGeneration(1, time.Second)
		m.IncFailure("x")
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
