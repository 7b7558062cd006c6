package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rickeev/RideShareTahoe-sub001/services/bookings BookingUC
type BookingUC interface {
	RequestBooking(ctx context.Context, passengerID uuid.UUID, req models.BookingRequest) (*models.Booking, error)
	InvitePassenger(ctx context.Context, driverID uuid.UUID, req models.InvitationRequest) (*models.Booking, error)
	ResolveAction(ctx context.Context, callerID, bookingID uuid.UUID, action models.BookingAction) (models.BookingStatus, error)
	ListBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
}
