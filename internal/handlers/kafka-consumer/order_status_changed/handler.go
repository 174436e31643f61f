package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/service/notification"
	"marketplace/pkg/logger"
)

type Handler struct {
	notifications            notificationService
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notifications notificationService, timeout time.Duration) *Handler {
	return &Handler{
		notifications:            notifications,
		log:                      log.With(logger.NewField("handler", "order.status.changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages channel closed")
				return nil
			}

			if stop := h.process(sess, message); stop {
				return nil
			}

		case <-sess.Context().Done():
			// ребалансировка или остановка группы
			h.log.Info("session context done")
			return nil
		}
	}
}

// process возвращает true, если сообщение не обработано из-за отмены контекста:
// оффсет не помечается и сообщение будет прочитано заново.
func (h *Handler) process(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.Error("bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		MessagesTotal.WithLabelValues(outcomeMalformed).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID),
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Debug("processing")

	outcome := outcomeDelivered
	err := h.notifications.HandleOrderEvent(ctx, event.toDomain())
	switch {
	case err == nil:
		msgLog.Info("notifications sent")

	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		msgLog.Warn("context cancelled, message will be reprocessed", logger.NewField("error", err))
		MessagesTotal.WithLabelValues(outcomeRetried).Inc()
		return true

	case errors.Is(err, notification.ErrInvalidEvent),
		errors.Is(err, notification.ErrUndefinedStatus):
		outcome = outcomeSkipped
		msgLog.Warn("event skipped", logger.NewField("error", err))

	default:
		// уведомления не критичны, сообщение не переигрывается
		outcome = outcomeFailed
		msgLog.Error("notifications failed", logger.NewField("error", err))
	}

	MessagesTotal.WithLabelValues(outcome).Inc()
	sess.MarkMessage(message, "")
	return false
}
