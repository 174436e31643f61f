package notifier

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// LogNotifier доставляет уведомление структурной записью в лог.
// Реального канала доставки (push, e-mail) у сервиса нет.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{
		log: log.With(logger.NewField("component", "notifier")),
	}
}

func (n *LogNotifier) Notify(ctx context.Context, notification entities.Notification) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("notify %s %d: %w", notification.Recipient, notification.RecipientID, err)
	}

	n.log.Info(notification.Message,
		logger.NewField("recipient", string(notification.Recipient)),
		logger.NewField("recipient_id", notification.RecipientID),
		logger.NewField("order", notification.OrderID),
		logger.NewField("status", notification.Status.String()),
	)
	NotificationsSentTotal.WithLabelValues(string(notification.Recipient), notification.Status.String()).Inc()
	return nil
}
