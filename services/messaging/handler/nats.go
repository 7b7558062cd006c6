package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/constants"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	natspkg "github.com/rickeev/RideShareTahoe-sub001/internal/pkg/nats"
	"github.com/rickeev/RideShareTahoe-sub001/services/messaging"
)

// NatsHandler consumes booking notification events and persists them as
// conversation messages
type NatsHandler struct {
	messageUC  messaging.MessageUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new messaging NATS handler
func NewNatsHandler(messageUC messaging.MessageUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		messageUC:  messageUC,
		natsClient: natsClient,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitConsumers subscribes to the booking notification subject. The
// queue group spreads delivery across instances so an event is handled
// once.
func (h *NatsHandler) InitConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(
		constants.SubjectBookingNotify,
		constants.QueueMessaging,
		h.handleBookingNotify,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectBookingNotify, err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("messaging consumers started",
		logger.String("subject", constants.SubjectBookingNotify),
		logger.String("queue", constants.QueueMessaging))
	return nil
}

// Drain unsubscribes all consumers, letting in-flight messages finish
func (h *NatsHandler) Drain() {
	for _, sub := range h.subs {
		if err := sub.Drain(); err != nil {
			logger.Warn("failed to drain subscription",
				logger.String("subject", sub.Subject),
				logger.Err(err))
		}
	}
}

func (h *NatsHandler) handleBookingNotify(msg *nats.Msg) {
	var event models.NotificationEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("failed to decode booking notification",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	if err := h.messageUC.HandleNotificationEvent(context.Background(), event); err != nil {
		logger.Error("failed to handle booking notification",
			logger.String("ride_id", event.RideID.String()),
			logger.String("recipient_id", event.RecipientID.String()),
			logger.Err(err))
	}
}
