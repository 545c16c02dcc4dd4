package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records HTTP request counters and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New registers the collectors on the provided registerer. If reg is nil,
// the default registerer is used. Already-registered collectors are reused
// so repeated construction (tests, restarts) stays safe.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sockpricer_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sockpricer_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &Metrics{requests: requests, latency: latency}, nil
}

// RecordRequest increments the request counter.
func (m *Metrics) RecordRequest(method, path, status string) {
	m.requests.WithLabelValues(method, path, status).Inc()
}

// ObserveLatency records one request duration in seconds.
func (m *Metrics) ObserveLatency(method, path string, seconds float64) {
	m.latency.WithLabelValues(method, path).Observe(seconds)
}
