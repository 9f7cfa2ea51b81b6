package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pickup_service",
		Subsystem: "sessions",
		Name:      "open",
		Help:      "Number of open pickup point modals.",
	})

	sidebarTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pickup_service",
		Subsystem: "sessions",
		Name:      "sidebar_transitions_total",
		Help:      "Total number of sidebar state changes by target state.",
	}, []string{"state"})

	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pickup_service",
		Subsystem: "sessions",
		Name:      "searches_total",
		Help:      "Total number of address searches by outcome.",
	}, []string{"outcome"})

	confirmationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pickup_service",
		Subsystem: "sessions",
		Name:      "confirmations_total",
		Help:      "Total number of confirmation attempts by result.",
	}, []string{"result"})

	searchCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pickup_service",
		Subsystem: "search",
		Name:      "cache_requests_total",
		Help:      "Total number of search cache lookups by result.",
	}, []string{"result"})
)
