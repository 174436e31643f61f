package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of created orders",
		},
		[]string{"store_id"},
	)

	OrderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Total number of applied order status transitions",
		},
		[]string{"from", "to", "actor"},
	)

	OrderLineItemsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_line_items_dropped_total",
			Help: "Line items dropped at order creation because the product was unknown or unavailable",
		},
	)
)
