// Package metrics wires Prometheus collectors for the HTTP surface and the
// outbound integrations.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "innkeep/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics holds the registered collectors for one service instance.
type HTTPMetrics struct {
	serviceName string

	requestCounter   *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	upstreamCounter  *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// NewHTTPMetrics creates and registers the metric collectors.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{
		serviceName: serviceName,
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		upstreamCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of outbound requests to upstream services",
			},
			[]string{"service", "upstream", "outcome"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Duration of outbound requests to upstream services",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "upstream"},
		),
	}

	prometheus.MustRegister(
		m.requestCounter,
		m.requestDuration,
		m.upstreamCounter,
		m.upstreamDuration,
	)

	return m
}

// Middleware creates an Echo middleware function that records HTTP request metrics.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			// Record metrics after the request is processed. c.Path() is the
			// route template, so label cardinality stays bounded. An error
			// returned here has not been written yet, so the status comes
			// from the error itself rather than the response.
			status := strconv.Itoa(statusFor(c, err))
			method := c.Request().Method
			path := c.Path()

			m.requestCounter.WithLabelValues(m.serviceName, method, path, status).Inc()
			m.requestDuration.WithLabelValues(m.serviceName, method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// statusFor resolves the status a request will be answered with. Errors flow
// to the error handler after the middleware chain unwinds, so for a failed
// request the response status is still the zero value here.
func statusFor(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// ObserveUpstream records one outbound call to a named upstream.
func (m *HTTPMetrics) ObserveUpstream(upstream string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	m.upstreamCounter.WithLabelValues(m.serviceName, upstream, outcome).Inc()
	m.upstreamDuration.WithLabelValues(m.serviceName, upstream).Observe(elapsed.Seconds())
}

// Handler returns an HTTP handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
