package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	LoginCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_login_total",
			Help: "Total number of login attempts by portal",
		},
		[]string{"portal"},
	)

	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // "invalid_request", "invalid_credentials", "invalid_token", ...
	)

	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	SAPCallCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_sap_calls_total",
			Help: "Total number of gateway calls to SAP by function and outcome",
		},
		[]string{"function", "transport", "outcome"},
	)

	SAPErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_sap_errors_total",
			Help: "Total number of SAP gateway errors by kind",
		},
		[]string{"function", "kind"},
	)

	ExportCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_report_exports_total",
			Help: "Total number of report export downloads",
		},
		[]string{"report"},
	)
)

// Histogram metrics
var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	SAPCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_sap_call_duration_seconds",
			Help:    "Duration of SAP gateway calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"function", "transport"},
	)
)

// Gauge metrics
var (
	ActiveTokensGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_active_tokens",
			Help: "Number of tokens issued minus explicit logouts",
		},
	)

	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "portal_info",
			Help: "Information about the portal service",
		},
		[]string{"version"},
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(AuthErrorCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(SAPCallCounter)
	prometheus.MustRegister(SAPErrorCounter)
	prometheus.MustRegister(ExportCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SAPCallDuration)

	prometheus.MustRegister(ActiveTokensGauge)
	prometheus.MustRegister(InfoGauge)

	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// RecordAuthError increments the auth error counter for the given type
func RecordAuthError(errorType string) {
	AuthErrorCounter.WithLabelValues(errorType).Inc()
}

// TrackSAPCall measures one gateway call; call the returned func when done.
func TrackSAPCall(function, transport string) func(outcome string) {
	startTime := time.Now()
	return func(outcome string) {
		SAPCallDuration.With(prometheus.Labels{
			"function":  function,
			"transport": transport,
		}).Observe(time.Since(startTime).Seconds())
		SAPCallCounter.With(prometheus.Labels{
			"function":  function,
			"transport": transport,
			"outcome":   outcome,
		}).Inc()
	}
}

// IncreaseActiveTokens increments the active token gauge
func IncreaseActiveTokens() {
	ActiveTokensGauge.Inc()
}

// DecreaseActiveTokens decrements the active token gauge
func DecreaseActiveTokens() {
	ActiveTokensGauge.Dec()
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}
