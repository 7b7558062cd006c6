package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/constants"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	natspkg "github.com/rickeev/RideShareTahoe-sub001/internal/pkg/nats"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/retry"
)

// BookingGW implements bookings.BookingGW over NATS
type BookingGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(natsClient *natspkg.Client) *BookingGW {
	return &BookingGW{
		natsClient: natsClient,
		retrier:    retry.New(retry.DefaultConfig()),
	}
}

// PublishBookingNotification publishes a notification intent for the
// messaging service to persist as a conversation message. Transient
// broker failures are retried with backoff; the caller treats a final
// failure as non-fatal since the booking transition already committed.
func (g *BookingGW) PublishBookingNotification(ctx context.Context, event models.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.natsClient.Publish(constants.SubjectBookingNotify, data)
	})
}
