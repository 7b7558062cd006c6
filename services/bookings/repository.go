package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations.
// ConfirmBooking, CreateInvitation and ReopenAsInvited combine the seat
// mutation and the booking write in a single database transaction; seat
// decrements are conditional (available_seats > 0) so a full ride fails
// the transaction with ErrNoSeatsAvailable instead of going negative.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rickeev/RideShareTahoe-sub001/services/bookings BookingRepo
type BookingRepo interface {
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	GetBookingByRideAndPassenger(ctx context.Context, rideID, passengerID uuid.UUID) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)

	CreateRequest(ctx context.Context, booking *models.Booking) error
	ReopenAsPending(ctx context.Context, bookingID uuid.UUID, pickupLocation string, pickupTime *time.Time) error
	CreateInvitation(ctx context.Context, booking *models.Booking, holdSeat bool) error
	ReopenAsInvited(ctx context.Context, bookingID uuid.UUID, pickupLocation string, pickupTime *time.Time, holdSeat bool) error

	ConfirmBooking(ctx context.Context, bookingID, rideID uuid.UUID, decrementSeat bool) error
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
	RestoreSeat(ctx context.Context, rideID uuid.UUID) error

	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	IsBlocked(ctx context.Context, userA, userB uuid.UUID) (bool, error)
}
