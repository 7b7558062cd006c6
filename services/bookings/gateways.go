package bookings

import (
	"context"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// BookingGW defines the interface for booking gateway operations
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rickeev/RideShareTahoe-sub001/services/bookings BookingGW
type BookingGW interface {
	PublishBookingNotification(ctx context.Context, event models.NotificationEvent) error
}
