package getbd

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors the client reports to.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Registrations   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg (nil means
// prometheus.DefaultRegisterer).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "getbd_requests_total",
			Help: "Get BD API calls by route and outcome.",
		}, []string{"method", "route", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "getbd_request_duration_seconds",
			Help:    "Get BD API call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "getbd_registrations_total",
			Help: "Domain registration workflow results.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.Requests, m.RequestDuration, m.Registrations)
	return m
}

func (m *Metrics) observeRequest(method, route, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, route, outcome).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) observeRegistration(outcome string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(outcome).Inc()
}
