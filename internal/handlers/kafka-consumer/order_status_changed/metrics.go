package order_status_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeDelivered = "delivered"
	outcomeSkipped   = "skipped"
	outcomeFailed    = "failed"
	outcomeMalformed = "malformed"
	outcomeRetried   = "retried"
)

var MessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_status_changed_messages_total",
		Help: "Total number of order.status.changed messages by processing outcome",
	},
	[]string{"outcome"},
)
