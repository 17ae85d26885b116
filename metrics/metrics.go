package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfl_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bfl_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bfl_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfl_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bfl_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// DraftPicks counts successful draft picks by league
	DraftPicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfl_draft_picks_total",
			Help: "Total number of draft picks made",
		},
		[]string{"league"},
	)

	// ScoringEvents counts recorded scoring events by action type
	ScoringEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfl_scoring_events_total",
			Help: "Total number of scoring events recorded",
		},
		[]string{"action_type"},
	)

	// ScoringUndos counts undone scoring events
	ScoringUndos = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bfl_scoring_undos_total",
			Help: "Total number of scoring events undone",
		},
	)

	// NotificationsPublished counts notifications fanned out by type
	NotificationsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bfl_notifications_published_total",
			Help: "Total number of notifications published to the realtime relay",
		},
		[]string{"type"},
	)

	// WebsocketClients tracks the number of connected realtime clients
	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bfl_websocket_clients",
			Help: "Number of currently connected websocket clients",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bfl_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bfl_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// CacheHits counts the number of standings cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bfl_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// CacheMisses counts the number of standings cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bfl_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// SystemCPUUsage tracks CPU usage percentage
	SystemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bfl_system_cpu_usage_percent",
			Help: "CPU usage percentage by core",
		},
		[]string{"core"},
	)

	// SystemLoadAverage tracks system load averages
	SystemLoadAverage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bfl_system_load_average",
			Help: "System load average",
		},
		[]string{"period"}, // "1min", "5min", "15min"
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
