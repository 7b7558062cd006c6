package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/bookings"
)

// BookingRepo implements bookings.BookingRepo on PostgreSQL
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `booking_id, ride_id, driver_id, passenger_id, status, pickup_location, pickup_time, confirmed_at, created_at, updated_at`

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	booking := &models.Booking{}
	if err := r.db.GetContext(ctx, booking, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookings.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// GetBookingByRideAndPassenger retrieves the passenger's most recent
// booking on a ride, or nil when none exists
func (r *BookingRepo) GetBookingByRideAndPassenger(ctx context.Context, rideID, passengerID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ride_id = $1 AND passenger_id = $2
		ORDER BY created_at DESC
		LIMIT 1`

	booking := &models.Booking{}
	if err := r.db.GetContext(ctx, booking, query, rideID, passengerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking for ride and passenger: %w", err)
	}
	return booking, nil
}

// ListBookingsByUser returns a user's bookings as driver or passenger,
// newest first
func (r *BookingRepo) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE driver_id = $1 OR passenger_id = $1
		ORDER BY created_at DESC`

	var result []models.Booking
	if err := r.db.SelectContext(ctx, &result, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return result, nil
}

// CreateRequest inserts a pending passenger-initiated booking request.
// No seat mutation happens at request time.
func (r *BookingRepo) CreateRequest(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (booking_id, ride_id, driver_id, passenger_id, status, pickup_location, pickup_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := r.db.ExecContext(ctx, query,
		booking.BookingID,
		booking.RideID,
		booking.DriverID,
		booking.PassengerID,
		models.BookingStatusPending,
		booking.PickupLocation,
		booking.PickupTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking request: %w", err)
	}
	return nil
}

// ReopenAsPending reopens a previously cancelled booking as a fresh
// pending request on the same row
func (r *BookingRepo) ReopenAsPending(ctx context.Context, bookingID uuid.UUID, pickupLocation string, pickupTime *time.Time) error {
	query := `
		UPDATE bookings
		SET status = $2, pickup_location = $3, pickup_time = $4, confirmed_at = NULL, updated_at = NOW()
		WHERE booking_id = $1 AND status = $5`

	res, err := r.db.ExecContext(ctx, query, bookingID, models.BookingStatusPending, pickupLocation, pickupTime, models.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to reopen booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// The booking changed state under us
		return bookings.ErrDuplicateBooking
	}
	return nil
}

// CreateInvitation inserts a driver-initiated invited booking. When
// holdSeat is set the ride's seat counter is decremented in the same
// transaction, conditional on a seat being free.
func (r *BookingRepo) CreateInvitation(ctx context.Context, booking *models.Booking, holdSeat bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if holdSeat {
		if err := holdRideSeat(ctx, tx, booking.RideID); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO bookings (booking_id, ride_id, driver_id, passenger_id, status, pickup_location, pickup_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err = tx.ExecContext(ctx, query,
		booking.BookingID,
		booking.RideID,
		booking.DriverID,
		booking.PassengerID,
		models.BookingStatusInvited,
		booking.PickupLocation,
		booking.PickupTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit invitation: %w", err)
	}
	return nil
}

// ReopenAsInvited reopens a previously cancelled booking as an
// invitation, holding a seat in the same transaction when requested
func (r *BookingRepo) ReopenAsInvited(ctx context.Context, bookingID uuid.UUID, pickupLocation string, pickupTime *time.Time, holdSeat bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if holdSeat {
		var rideID uuid.UUID
		if err := tx.GetContext(ctx, &rideID, `SELECT ride_id FROM bookings WHERE booking_id = $1`, bookingID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return bookings.ErrBookingNotFound
			}
			return fmt.Errorf("failed to resolve ride for booking: %w", err)
		}
		if err := holdRideSeat(ctx, tx, rideID); err != nil {
			return err
		}
	}

	query := `
		UPDATE bookings
		SET status = $2, pickup_location = $3, pickup_time = $4, confirmed_at = NULL, updated_at = NOW()
		WHERE booking_id = $1 AND status = $5`

	res, err := tx.ExecContext(ctx, query, bookingID, models.BookingStatusInvited, pickupLocation, pickupTime, models.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to reopen booking as invitation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return bookings.ErrDuplicateBooking
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit invitation: %w", err)
	}
	return nil
}

// ConfirmBooking marks a booking confirmed. When decrementSeat is set
// (a driver approving a pending request on a seat-tracked ride) the
// seat decrement and the status change commit or roll back together,
// so a capacity failure leaves the booking untouched.
func (r *BookingRepo) ConfirmBooking(ctx context.Context, bookingID, rideID uuid.UUID, decrementSeat bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if decrementSeat {
		if err := holdRideSeat(ctx, tx, rideID); err != nil {
			return err
		}
	}

	query := `
		UPDATE bookings
		SET status = $2, confirmed_at = NOW(), updated_at = NOW()
		WHERE booking_id = $1`

	res, err := tx.ExecContext(ctx, query, bookingID, models.BookingStatusConfirmed)
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return bookings.ErrBookingNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit confirmation: %w", err)
	}
	return nil
}

// CancelBooking marks a booking cancelled
func (r *BookingRepo) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE booking_id = $1`

	res, err := r.db.ExecContext(ctx, query, bookingID, models.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return bookings.ErrBookingNotFound
	}
	return nil
}

// RestoreSeat returns a held seat to the ride. The IS NOT NULL guard
// keeps unlimited rides untouched.
func (r *BookingRepo) RestoreSeat(ctx context.Context, rideID uuid.UUID) error {
	query := `
		UPDATE rides
		SET available_seats = available_seats + 1, updated_at = NOW()
		WHERE ride_id = $1 AND available_seats IS NOT NULL`

	if _, err := r.db.ExecContext(ctx, query, rideID); err != nil {
		return fmt.Errorf("failed to restore seat: %w", err)
	}
	return nil
}

// GetRide retrieves a ride by ID
func (r *BookingRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		SELECT ride_id, driver_id,
			origin_latitude, origin_longitude, origin_address,
			destination_latitude, destination_longitude, destination_address,
			origin_geohash, departure_time, total_seats, available_seats,
			notes, status, created_at, updated_at
		FROM rides
		WHERE ride_id = $1`

	row := r.db.QueryRowContext(ctx, query, rideID)

	ride := &models.Ride{}
	var availableSeats sql.NullInt64
	err := row.Scan(
		&ride.RideID,
		&ride.DriverID,
		&ride.Origin.Latitude,
		&ride.Origin.Longitude,
		&ride.Origin.Address,
		&ride.Destination.Latitude,
		&ride.Destination.Longitude,
		&ride.Destination.Address,
		&ride.OriginGeohash,
		&ride.DepartureTime,
		&ride.TotalSeats,
		&availableSeats,
		&ride.Notes,
		&ride.Status,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookings.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	if availableSeats.Valid {
		seats := int(availableSeats.Int64)
		ride.AvailableSeats = &seats
	}
	return ride, nil
}

// GetUser retrieves a user profile by ID
func (r *BookingRepo) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `
		SELECT user_id, email, password_hash, first_name, last_name, bio, profile_complete, created_at, updated_at
		FROM users
		WHERE user_id = $1`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookings.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// IsBlocked reports whether either user has blocked the other
func (r *BookingRepo) IsBlocked(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM blocks
			WHERE (blocker_id = $1 AND blocked_id = $2)
			   OR (blocker_id = $2 AND blocked_id = $1)
		)`

	var blocked bool
	if err := r.db.GetContext(ctx, &blocked, query, userA, userB); err != nil {
		return false, fmt.Errorf("failed to check block status: %w", err)
	}
	return blocked, nil
}

// holdRideSeat performs the atomic conditional seat decrement inside
// an open transaction. Zero rows affected means the ride is full.
func holdRideSeat(ctx context.Context, tx *sqlx.Tx, rideID uuid.UUID) error {
	query := `
		UPDATE rides
		SET available_seats = available_seats - 1, updated_at = NOW()
		WHERE ride_id = $1 AND available_seats > 0`

	res, err := tx.ExecContext(ctx, query, rideID)
	if err != nil {
		return fmt.Errorf("failed to decrement seats: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return bookings.ErrNoSeatsAvailable
	}
	return nil
}
