package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsCreated     prometheus.Counter
	CommentsCreated  prometheus.Counter
	ExportsGenerated *prometheus.CounterVec
	LeadsByStatus    *prometheus.GaugeVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		LeadsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads created",
		}),
		CommentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "comments_created_total",
			Help: "Total number of comments created",
		}),
		ExportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exports_generated_total",
				Help: "Total number of lead exports generated",
			},
			[]string{"format"}, // csv, excel
		),
		LeadsByStatus: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "leads_by_status",
				Help: "Current number of leads per lifecycle status",
			},
			[]string{"status"},
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/leads/:id)

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = 500
				}
			}

			statusLabel := strconv.Itoa(status)
			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, statusLabel).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, statusLabel).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
