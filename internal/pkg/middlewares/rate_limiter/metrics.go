package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateLimitExceededTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_exceeded_total",
			Help: "Requests rejected by the per-client limiter, by route",
		},
		[]string{"method", "route"},
	)

	// TrackedClients обновляется, только если лимитер умеет считать клиентов (trackedCounter).
	TrackedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_tracked_clients",
			Help: "Number of client buckets currently held by the rate limiter",
		},
	)
)
