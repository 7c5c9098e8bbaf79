package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// Business metrics
	quoteSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_submissions_total",
			Help: "Total number of quote requests submitted",
		},
		[]string{"quote_type"},
	)

	contactSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
	)

	serviceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "service_requests_total",
			Help: "Total number of policy service requests submitted",
		},
		[]string{"request_type"},
	)

	statusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_updates_total",
			Help: "Total number of dashboard status updates",
		},
		[]string{"entity", "status"},
	)

	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status"},
	)

	pageViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_views_total",
			Help: "Total number of tracked page views",
		},
	)
)

// RecordQuoteSubmission counts an accepted quote request.
func RecordQuoteSubmission(quoteType string) {
	quoteSubmissionsTotal.WithLabelValues(quoteType).Inc()
}

// RecordContactSubmission counts an accepted contact message.
func RecordContactSubmission() {
	contactSubmissionsTotal.Inc()
}

// RecordServiceRequest counts an accepted service request.
func RecordServiceRequest(requestType string) {
	serviceRequestsTotal.WithLabelValues(requestType).Inc()
}

// RecordStatusUpdate counts a dashboard triage transition.
func RecordStatusUpdate(entity, status string) {
	statusUpdatesTotal.WithLabelValues(entity, status).Inc()
}

// RecordAuthAttempt counts a login attempt outcome ("success" or "failure").
func RecordAuthAttempt(status string) {
	authAttemptsTotal.WithLabelValues(status).Inc()
}

// RecordPageView counts a tracked page view.
func RecordPageView() {
	pageViewsTotal.Inc()
}

// HTTPMiddleware records request counts and latency per route. The
// registered route pattern is used, not the raw URL, to keep label
// cardinality bounded.
func HTTPMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			httpRequestsTotal.WithLabelValues(method, path, status).Inc()
			httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
