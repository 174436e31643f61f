package pending_expiry

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	ExpireStalePending(ctx context.Context, olderThan time.Duration) (int64, error)
}

// PendingExpiry отменяет заказы, которые никто не принял за ttl.
type PendingExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	ttl      time.Duration
}

func New(log logger.Logger, service Service, interval, ttl time.Duration) *PendingExpiry {
	return &PendingExpiry{
		log:      log,
		service:  service,
		interval: interval,
		ttl:      ttl,
	}
}

func (p *PendingExpiry) TTL() time.Duration {
	return p.interval
}

func (p *PendingExpiry) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	expired, err := p.service.ExpireStalePending(ctx, p.ttl)
	if expired > 0 {
		p.log.Info("stale pending orders cancelled",
			logger.NewField("count", expired),
			logger.NewField("older_than", p.ttl),
		)
	}
	return err
}

func (p *PendingExpiry) Info() string {
	return "pending order expiry"
}
