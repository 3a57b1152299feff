// Package api - Prometheus instrumentation
package api

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts API requests.
	// Labels: endpoint, status (HTTP status code)
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datacenter_tco",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "API requests by endpoint and status code",
	}, []string{"endpoint", "status"})

	// requestDuration measures handler latency.
	// Labels: endpoint
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "datacenter_tco",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "API request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"endpoint"})

	// computationsTotal counts engine computations triggered through the API.
	// Labels: endpoint
	computationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datacenter_tco",
		Subsystem: "api",
		Name:      "computations_total",
		Help:      "Engine computations triggered by API requests",
	}, []string{"endpoint"})
)

// recordRequest records one finished request.
func recordRequest(endpoint string, status int, seconds float64) {
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(seconds)
}

// recordComputations records engine invocations attributed to an endpoint.
func recordComputations(endpoint string, count int) {
	computationsTotal.WithLabelValues(endpoint).Add(float64(count))
}
