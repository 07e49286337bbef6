// Package metrics exposes Prometheus collectors for the prediction service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prediction outcome labels.
const (
	OutcomeSuccess          = "success"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeModelUnavailable = "model_unavailable"
	OutcomeError            = "error"
)

var (
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	predictionsTotal           *prometheus.CounterVec
	highYearsTotal             prometheus.Counter
	modelLoaded                prometheus.Gauge

	once sync.Once
)

// Init registers the collectors with the default registry.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		)

		predictionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salary_predictions_total",
				Help: "Total number of prediction requests, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		highYearsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "salary_high_years_total",
				Help: "Predictions requested for unusually high years of experience.",
			},
		)

		modelLoaded = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "salary_model_loaded",
				Help: "1 when the model artifact was loaded at startup, 0 otherwise.",
			},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	Init()
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObservePrediction increments the prediction counter for the given outcome.
func ObservePrediction(outcome string) {
	Init()
	predictionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveHighYears counts a request above the high-years threshold.
func ObserveHighYears() {
	Init()
	highYearsTotal.Inc()
}

// SetModelLoaded records the startup model state.
func SetModelLoaded(loaded bool) {
	Init()
	if loaded {
		modelLoaded.Set(1)
		return
	}
	modelLoaded.Set(0)
}
