package handler

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	pointsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pickup_service",
			Subsystem: "kafka_consumer",
			Name:      "pickup_points_processed_total",
			Help:      "Total number of successfully processed pickup points",
		},
	)

	pointsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pickup_service",
			Subsystem: "kafka_consumer",
			Name:      "pickup_points_failed_total",
			Help:      "Total number of failed pickup point processing attempts",
		},
	)

	pointsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pickup_service",
			Subsystem: "kafka_consumer",
			Name:      "pickup_points_dlq_total",
			Help:      "Total number of pickup points written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pickup_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	pointProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pickup_service",
			Subsystem: "kafka_consumer",
			Name:      "pickup_point_processing_duration_seconds",
			Help:      "Histogram of pickup point processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	sessionRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pickup_service",
			Subsystem: "http",
			Name:      "session_requests_total",
			Help:      "Total number of session operations by operation and status",
		},
		[]string{"op", "status"},
	)

	sessionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pickup_service",
			Subsystem: "http",
			Name:      "session_request_duration_seconds",
			Help:      "Histogram of session operation durations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	sessionRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pickup_service",
			Subsystem: "http",
			Name:      "session_requests_in_progress",
			Help:      "Number of in-progress session operations",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		pointsProcessed,
		pointsFailed,
		pointsDLQ,
		commitErrors,
		pointProcessingDuration,

		sessionRequestTotal,
		sessionRequestDuration,
		sessionRequestsInProgress,
	)
}

func observeSessionRequest(op string, status int, start time.Time) {
	sessionRequestTotal.WithLabelValues(op, strconv.Itoa(status)).Inc()
	sessionRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
