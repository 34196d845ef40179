// Package metrics exposes Prometheus instrumentation for the frontend's own
// HTTP surface (not the backend's — the gateway's failures show up in request
// statuses of the pages that triggered them).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Login funnel metrics
	LoginAttemptsCounter prometheus.Counter
	LoginSuccessCounter  prometheus.Counter

	// Session teardown caused by a backend 401
	SessionEvictionsCounter prometheus.Counter
)

// Init registers all metrics under the given prefix. Call once at startup.
func Init(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	LoginAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	LoginSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_success_total",
			Help: "Total number of successful logins",
		},
	)

	SessionEvictionsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_session_evictions_total",
			Help: "Sessions torn down after the backend returned 401",
		},
	)
}

// ObserveRequest records one served request.
func ObserveRequest(method, path, status string, start time.Time) {
	if HTTPRequestsTotal == nil {
		return // metrics not initialised (tests)
	}
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
}

// RecordLoginAttempt increments the login attempt counter.
func RecordLoginAttempt() {
	if LoginAttemptsCounter != nil {
		LoginAttemptsCounter.Inc()
	}
}

// RecordLoginSuccess increments the successful login counter.
func RecordLoginSuccess() {
	if LoginSuccessCounter != nil {
		LoginSuccessCounter.Inc()
	}
}

// RecordSessionEviction counts a 401-triggered session teardown.
func RecordSessionEviction() {
	if SessionEvictionsCounter != nil {
		SessionEvictionsCounter.Inc()
	}
}
