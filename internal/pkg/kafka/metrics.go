package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ConsumerErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "kafka_consumer_group_errors_total",
		Help: "Total number of background errors reported by the consumer group",
	},
)
