package bookings

import "errors"

var (
	// ErrValidation wraps malformed request payload errors
	ErrValidation = errors.New("validation error")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRideNotFound is returned when the ride does not exist
	ErrRideNotFound = errors.New("ride not found")

	// ErrUserNotFound is returned when the invited passenger does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNotParticipant is returned when the caller is neither the
	// booking's driver nor its passenger
	ErrNotParticipant = errors.New("caller is not a participant of this booking")

	// ErrNotRideDriver is returned when a driver-only operation is
	// attempted by someone else
	ErrNotRideDriver = errors.New("caller is not the driver of this ride")

	// ErrInvalidTransition is returned when the requested action is not
	// legal for the booking's current status. The prior status is not
	// disclosed to the caller.
	ErrInvalidTransition = errors.New("invalid action for current state")

	// ErrNoSeatsAvailable is returned when the ride has no free seats
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrRideNotActive is returned when booking against a cancelled or
	// completed ride
	ErrRideNotActive = errors.New("ride is not active")

	// ErrOwnRide is returned when a driver tries to book their own ride
	// or invite themselves
	ErrOwnRide = errors.New("cannot book your own ride")

	// ErrDuplicateBooking is returned when the passenger already holds an
	// active booking on the ride
	ErrDuplicateBooking = errors.New("an active booking already exists for this ride")

	// ErrBlocked is returned when either participant has blocked the other
	ErrBlocked = errors.New("booking not permitted between these users")
)
