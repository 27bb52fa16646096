// Package metrics holds the Prometheus collectors for HTTP traffic and the
// order-to-invoice flow. Record helpers are no-ops until Init runs.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Request metrics
	RequestDurationHistogram *prometheus.HistogramVec
	APIRequestCounter        *prometheus.CounterVec
	APIErrorCounter          *prometheus.CounterVec

	// Domain metrics
	OrdersCreatedCounter    prometheus.Counter
	OrderFailuresCounter    *prometheus.CounterVec
	InvoicesIssuedCounter   *prometheus.CounterVec
	BricksDispatchedCounter *prometheus.CounterVec
	StoreOperationHistogram *prometheus.HistogramVec

	initOnce sync.Once
)

// Init registers every collector with the default registry. Only the first
// call has any effect.
func Init(namespace string) {
	initOnce.Do(func() {
		RequestDurationHistogram = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		APIRequestCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"method", "path"},
		)

		APIErrorCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_errors_total",
				Help:      "Total number of API errors",
			},
			[]string{"method", "path", "status"},
		)

		OrdersCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders created",
		})

		OrderFailuresCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_failures_total",
				Help:      "Total number of rejected or failed order creations",
			},
			[]string{"reason"},
		)

		InvoicesIssuedCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invoices_issued_total",
				Help:      "Total number of invoices stored",
			},
			[]string{"source"},
		)

		BricksDispatchedCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bricks_dispatched_total",
				Help:      "Bricks taken out of stock by orders",
			},
			[]string{"brick_type"},
		)

		StoreOperationHistogram = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_operation_duration_seconds",
				Help:      "Duration of multi-entity store operations in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		)
	})
}

// Middleware tracks request count, latency and error responses.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if APIRequestCounter == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		APIRequestCounter.With(prometheus.Labels{"method": method, "path": path}).Inc()
		RequestDurationHistogram.With(prometheus.Labels{
			"method": method,
			"path":   path,
			"status": status,
		}).Observe(time.Since(start).Seconds())

		if c.Writer.Status() >= 400 {
			APIErrorCounter.With(prometheus.Labels{
				"method": method,
				"path":   path,
				"status": status,
			}).Inc()
		}
	}
}

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// TrackStoreOperation returns a function that observes the elapsed time of
// the named operation.
func TrackStoreOperation(operation string) func(time.Time) {
	return func(start time.Time) {
		if StoreOperationHistogram == nil {
			return
		}
		StoreOperationHistogram.With(prometheus.Labels{"operation": operation}).Observe(time.Since(start).Seconds())
	}
}

func RecordOrderCreated(brickType string, quantity int) {
	if OrdersCreatedCounter == nil {
		return
	}
	OrdersCreatedCounter.Inc()
	BricksDispatchedCounter.With(prometheus.Labels{"brick_type": brickType}).Add(float64(quantity))
}

func RecordOrderFailure(reason string) {
	if OrderFailuresCounter == nil {
		return
	}
	OrderFailuresCounter.With(prometheus.Labels{"reason": reason}).Inc()
}

func RecordInvoiceIssued(source string) {
	if InvoicesIssuedCounter == nil {
		return
	}
	InvoicesIssuedCounter.With(prometheus.Labels{"source": source}).Inc()
}
