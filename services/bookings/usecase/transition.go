package usecase

import (
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/bookings"
)

// Role is the caller's relationship to a booking
type Role string

const (
	RoleDriver    Role = "driver"
	RolePassenger Role = "passenger"
)

// ResolveTransition decides whether the requested action is permitted
// for the caller's role and the booking's current status, and returns
// the resulting status.
//
//	role      | status  | approve   | deny      | cancel
//	driver    | pending | confirmed | cancelled | -
//	driver    | invited | -         | cancelled | -
//	passenger | invited | confirmed | cancelled | -
//	passenger | pending | -         | -         | cancelled
//
// Every other combination returns ErrInvalidTransition.
func ResolveTransition(role Role, current models.BookingStatus, action models.BookingAction) (models.BookingStatus, error) {
	switch role {
	case RoleDriver:
		switch {
		case current == models.BookingStatusPending && action == models.BookingActionApprove:
			return models.BookingStatusConfirmed, nil
		case current == models.BookingStatusPending && action == models.BookingActionDeny:
			return models.BookingStatusCancelled, nil
		case current == models.BookingStatusInvited && action == models.BookingActionDeny:
			return models.BookingStatusCancelled, nil
		}
	case RolePassenger:
		switch {
		case current == models.BookingStatusInvited && action == models.BookingActionApprove:
			return models.BookingStatusConfirmed, nil
		case current == models.BookingStatusInvited && action == models.BookingActionDeny:
			return models.BookingStatusCancelled, nil
		case current == models.BookingStatusPending && action == models.BookingActionCancel:
			return models.BookingStatusCancelled, nil
		}
	}
	return "", bookings.ErrInvalidTransition
}
