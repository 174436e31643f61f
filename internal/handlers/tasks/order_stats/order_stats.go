package order_stats

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"marketplace/internal/entities"
)

var OrdersByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "orders_by_status",
		Help: "Current number of orders in each status",
	},
	[]string{"status"},
)

type Service interface {
	CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error)
}

// OrderStats периодически выгружает распределение заказов по статусам в gauge.
type OrderStats struct {
	service  Service
	gauge    *prometheus.GaugeVec
	interval time.Duration
}

func New(service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		service:  service,
		gauge:    OrdersByStatus,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("count orders by status: %w", err)
	}

	for _, c := range counts {
		o.gauge.WithLabelValues(c.Status.String()).Set(float64(c.Count))
	}
	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
