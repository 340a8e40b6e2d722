package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for POS calls.
const (
	OutcomeSuccess     = "success"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
)

// POSMetrics records latency and outcome of outbound POS calls.
type POSMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewPOSMetrics registers the POS metrics on the provided registerer.
func NewPOSMetrics(reg prometheus.Registerer) *POSMetrics {
	if reg == nil {
		return &POSMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kiosk_pos_request_duration_seconds",
		Help:    "Duration of POS requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_pos_requests_total",
		Help: "POS requests by operation and outcome.",
	}, []string{"op", "outcome"})
	reg.MustRegister(duration, requests)
	return &POSMetrics{
		duration: duration,
		requests: requests,
	}
}

// Observe records one finished POS call.
func (p *POSMetrics) Observe(op, outcome string, elapsed time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	op = normalizeLabel(op)
	p.duration.WithLabelValues(op).Observe(elapsed.Seconds())
	p.requests.WithLabelValues(op, normalizeLabel(outcome)).Inc()
}
