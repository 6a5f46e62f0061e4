package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	gatherer prometheus.Gatherer

	requestsTotal   *prometheus.CounterVec
	requestErrors   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	outcomes        *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coupon_http_requests_total",
				Help: "HTTP requests by route and status code",
			},
			[]string{"path", "code"},
		),
		requestErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coupon_http_errors_total",
				Help: "HTTP requests answered with 4xx or 5xx",
			},
			[]string{"path", "code"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coupon_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "code"},
		),
		outcomes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coupon_operation_outcomes_total",
				Help: "Business outcomes per operation",
			},
			[]string{"operation", "result"},
		),
	}
}

func (m *Metrics) Outcome(operation, result string) {
	m.outcomes.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		labels := prometheus.Labels{
			"path": path,
			"code": strconv.Itoa(c.Writer.Status()),
		}
		m.requestsTotal.With(labels).Inc()
		m.requestDuration.With(labels).Observe(time.Since(start).Seconds())
		if c.Writer.Status() >= http.StatusBadRequest {
			m.requestErrors.With(labels).Inc()
		}
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
