// Package metrics provides Prometheus metrics collection for the yard service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ResolutionsTotal tracks total yard resolutions.
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yard_resolutions_total",
			Help: "Total number of yard resolutions",
		},
		[]string{"status"},
	)

	// ResolutionDuration tracks yard resolution duration.
	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "yard_resolution_duration_seconds",
			Help:    "Yard resolution duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// ResolutionContainers tracks how many containers each resolution covers.
	ResolutionContainers = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "yard_resolution_containers",
			Help:    "Number of containers per resolution",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)

	// UnlocatedContainersTotal tracks containers left unlocated by resolutions.
	UnlocatedContainersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yard_unlocated_containers_total",
			Help: "Total number of containers resolutions could not locate",
		},
	)

	// LayoutUpdatesTotal tracks stored layout replacements.
	LayoutUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yard_layout_updates_total",
			Help: "Total number of stack layout updates",
		},
		[]string{"yard_id"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// AsyncLogQueueDepth tracks the async log writer's backlog.
	AsyncLogQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "async_log_queue_depth",
			Help: "Entries waiting in the async log writer queue",
		},
	)

	// AsyncLogDroppedTotal counts log entries dropped because the queue was full.
	AsyncLogDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "async_log_dropped_total",
			Help: "Total number of log entries dropped by the async writer",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordResolution records metrics for a yard resolution.
func RecordResolution(duration time.Duration, status string) {
	ResolutionDuration.Observe(duration.Seconds())
	ResolutionsTotal.WithLabelValues(status).Inc()
}

// RecordResolutionVolume records how much a resolution covered.
func RecordResolutionVolume(containerCount, unlocatedCount int) {
	ResolutionContainers.Observe(float64(containerCount))
	if unlocatedCount > 0 {
		UnlocatedContainersTotal.Add(float64(unlocatedCount))
	}
}

// RecordLayoutUpdate records a stored layout replacement.
func RecordLayoutUpdate(yardID string) {
	LayoutUpdatesTotal.WithLabelValues(yardID).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
