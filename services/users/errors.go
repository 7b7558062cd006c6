package users

import "errors"

// Sentinel errors returned by the users service. Handlers map these to
// HTTP status codes.
var (
	ErrValidation         = errors.New("invalid request")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBlockNotFound      = errors.New("block not found")
	ErrDuplicateReview    = errors.New("review already submitted for this ride")
	ErrNotEligible        = errors.New("no completed shared ride with this user")
)
