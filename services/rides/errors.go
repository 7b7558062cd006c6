package rides

import "errors"

// Sentinel errors returned by the rides service. Handlers map these to
// HTTP status codes.
var (
	ErrValidation      = errors.New("invalid request")
	ErrRideNotFound    = errors.New("ride not found")
	ErrNotRideDriver   = errors.New("caller is not the ride driver")
	ErrRideNotActive   = errors.New("ride is not active")
	ErrDepartureNotYet = errors.New("ride has not departed yet")
)
