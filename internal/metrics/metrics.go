package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "promanager_http_requests_total", Help: "Total HTTP requests by method, route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promanager_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	RecoveryEmails = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "promanager_recovery_emails_total", Help: "Total password recovery emails sent"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, RecoveryEmails)
}
