package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/bookings"
)

// bookingUC implements the bookings.BookingUC interface
type bookingUC struct {
	cfg  *models.Config
	repo bookings.BookingRepo
	gw   bookings.BookingGW
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	repo bookings.BookingRepo,
	gw bookings.BookingGW,
) (bookings.BookingUC, error) {
	return &bookingUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}, nil
}

// ResolveAction applies an approve/deny/cancel action to a booking on
// behalf of the caller. Seat accounting rules:
//   - confirming a pending request decrements the ride's seat counter
//     (when tracked) in the same transaction as the status change;
//   - confirming an invitation never touches seats, they were held at
//     invitation time;
//   - cancelling an invitation restores the held seat best-effort after
//     the cancellation has committed;
//   - cancelling a pending request never touches seats.
func (uc *bookingUC) ResolveAction(ctx context.Context, callerID, bookingID uuid.UUID, action models.BookingAction) (models.BookingStatus, error) {
	booking, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return "", err
	}

	var role Role
	switch callerID {
	case booking.DriverID:
		role = RoleDriver
	case booking.PassengerID:
		role = RolePassenger
	default:
		return "", bookings.ErrNotParticipant
	}

	newStatus, err := ResolveTransition(role, booking.Status, action)
	if err != nil {
		return "", err
	}
	prior := booking.Status

	ride, err := uc.repo.GetRide(ctx, booking.RideID)
	if err != nil {
		return "", err
	}

	switch newStatus {
	case models.BookingStatusConfirmed:
		decrement := prior == models.BookingStatusPending && ride.TracksSeats()
		if err := uc.repo.ConfirmBooking(ctx, booking.BookingID, booking.RideID, decrement); err != nil {
			return "", err
		}
	case models.BookingStatusCancelled:
		if err := uc.repo.CancelBooking(ctx, booking.BookingID); err != nil {
			return "", err
		}
		if prior == models.BookingStatusInvited && ride.TracksSeats() {
			// The cancellation is already committed; a failed restore
			// leaves the counter low rather than blocking the caller.
			if err := uc.repo.RestoreSeat(ctx, booking.RideID); err != nil {
				logger.Warn("Failed to restore seat after invitation cancellation",
					logger.String("booking_id", booking.BookingID.String()),
					logger.String("ride_id", booking.RideID.String()),
					logger.Err(err))
			}
		}
	}

	uc.notifyTransition(ctx, booking, role, action, prior)

	return newStatus, nil
}

// RequestBooking creates a pending passenger-initiated booking request.
// No seat is reserved at request time; the seat is taken when the
// driver approves. A previously cancelled booking by the same passenger
// is reopened instead of inserting a duplicate row.
func (uc *bookingUC) RequestBooking(ctx context.Context, passengerID uuid.UUID, req models.BookingRequest) (*models.Booking, error) {
	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ride_id", bookings.ErrValidation)
	}

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusActive {
		return nil, bookings.ErrRideNotActive
	}
	if ride.DriverID == passengerID {
		return nil, bookings.ErrOwnRide
	}

	blocked, err := uc.repo.IsBlocked(ctx, passengerID, ride.DriverID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, bookings.ErrBlocked
	}

	existing, err := uc.repo.GetBookingByRideAndPassenger(ctx, rideID, passengerID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != models.BookingStatusCancelled {
		return nil, bookings.ErrDuplicateBooking
	}

	if ride.TracksSeats() && *ride.AvailableSeats <= 0 {
		return nil, bookings.ErrNoSeatsAvailable
	}

	var booking *models.Booking
	if existing != nil {
		// Re-request after a cancellation reopens the same booking row
		if err := uc.repo.ReopenAsPending(ctx, existing.BookingID, req.PickupLocation, req.PickupTime); err != nil {
			return nil, err
		}
		booking = existing
		booking.Status = models.BookingStatusPending
		booking.PickupLocation = req.PickupLocation
		booking.PickupTime = req.PickupTime
		booking.ConfirmedAt = nil
	} else {
		booking = &models.Booking{
			BookingID:      uuid.New(),
			RideID:         rideID,
			DriverID:       ride.DriverID,
			PassengerID:    passengerID,
			Status:         models.BookingStatusPending,
			PickupLocation: req.PickupLocation,
			PickupTime:     req.PickupTime,
		}
		if err := uc.repo.CreateRequest(ctx, booking); err != nil {
			return nil, err
		}
	}

	uc.notifyCreation(ctx, passengerID, ride.DriverID, rideID, requestNotification)

	return booking, nil
}

// InvitePassenger creates a driver-initiated booking in invited status.
// When the ride tracks seats, the seat is reserved immediately: the
// booking insert and the conditional seat decrement run in one
// transaction, so a full ride fails the invitation outright.
func (uc *bookingUC) InvitePassenger(ctx context.Context, driverID uuid.UUID, req models.InvitationRequest) (*models.Booking, error) {
	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ride_id", bookings.ErrValidation)
	}
	passengerID, err := uuid.Parse(req.PassengerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid passenger_id", bookings.ErrValidation)
	}

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, bookings.ErrNotRideDriver
	}
	if ride.Status != models.RideStatusActive {
		return nil, bookings.ErrRideNotActive
	}
	if passengerID == driverID {
		return nil, bookings.ErrOwnRide
	}

	if _, err := uc.repo.GetUser(ctx, passengerID); err != nil {
		return nil, err
	}

	blocked, err := uc.repo.IsBlocked(ctx, driverID, passengerID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, bookings.ErrBlocked
	}

	existing, err := uc.repo.GetBookingByRideAndPassenger(ctx, rideID, passengerID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != models.BookingStatusCancelled {
		return nil, bookings.ErrDuplicateBooking
	}

	holdSeat := ride.TracksSeats()

	var booking *models.Booking
	if existing != nil {
		if err := uc.repo.ReopenAsInvited(ctx, existing.BookingID, req.PickupLocation, req.PickupTime, holdSeat); err != nil {
			return nil, err
		}
		booking = existing
		booking.Status = models.BookingStatusInvited
		booking.PickupLocation = req.PickupLocation
		booking.PickupTime = req.PickupTime
		booking.ConfirmedAt = nil
	} else {
		booking = &models.Booking{
			BookingID:      uuid.New(),
			RideID:         rideID,
			DriverID:       driverID,
			PassengerID:    passengerID,
			Status:         models.BookingStatusInvited,
			PickupLocation: req.PickupLocation,
			PickupTime:     req.PickupTime,
		}
		if err := uc.repo.CreateInvitation(ctx, booking, holdSeat); err != nil {
			return nil, err
		}
	}

	uc.notifyCreation(ctx, driverID, passengerID, rideID, invitationNotification)

	return booking, nil
}

// ListBookings returns the caller's bookings as driver or passenger
func (uc *bookingUC) ListBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	return uc.repo.ListBookingsByUser(ctx, userID)
}

// notifyTransition publishes the post-transition notification to the
// other participant. Delivery is best-effort: the status change is the
// source of truth and a publish failure is only logged.
func (uc *bookingUC) notifyTransition(ctx context.Context, booking *models.Booking, role Role, action models.BookingAction, prior models.BookingStatus) {
	senderID, recipientID := booking.DriverID, booking.PassengerID
	if role == RolePassenger {
		senderID, recipientID = booking.PassengerID, booking.DriverID
	}

	content := transitionNotification(role, action, prior, uc.senderName(ctx, senderID))
	if content == "" {
		return
	}

	uc.publish(ctx, senderID, recipientID, booking.RideID, content)
}

func (uc *bookingUC) notifyCreation(ctx context.Context, senderID, recipientID, rideID uuid.UUID, template func(string) string) {
	uc.publish(ctx, senderID, recipientID, rideID, template(uc.senderName(ctx, senderID)))
}

func (uc *bookingUC) senderName(ctx context.Context, senderID uuid.UUID) string {
	sender, err := uc.repo.GetUser(ctx, senderID)
	if err != nil {
		logger.Warn("Failed to load sender profile for notification",
			logger.String("user_id", senderID.String()),
			logger.Err(err))
		return "A community member"
	}
	return sender.DisplayName()
}

func (uc *bookingUC) publish(ctx context.Context, senderID, recipientID, rideID uuid.UUID, content string) {
	event := models.NotificationEvent{
		SenderID:    senderID,
		RecipientID: recipientID,
		RideID:      rideID,
		Content:     content,
		SentAt:      time.Now(),
	}

	if err := uc.gw.PublishBookingNotification(ctx, event); err != nil {
		logger.Error("Failed to publish booking notification",
			logger.String("ride_id", rideID.String()),
			logger.String("recipient_id", recipientID.String()),
			logger.Err(err))
	}
}
