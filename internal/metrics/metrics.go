// Package metrics defines the Prometheus metrics exported by the API.
// All metrics register with the default registry at init time; the HTTP
// middleware and the services only reference the exported vars.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reviewhub"

// HTTPRequestsTotal counts handled requests by method, route pattern and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration measures request latency by method and route pattern.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests from receipt to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// SignupsTotal counts completed registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful user registrations.",
	},
)

// TokensIssuedTotal counts successful token exchanges.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// EmailSendErrorsTotal counts failed confirmation email deliveries.
var EmailSendErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_send_errors_total",
		Help:      "Total number of confirmation emails that failed to send.",
	},
)
