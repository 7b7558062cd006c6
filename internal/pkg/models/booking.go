package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusInvited   BookingStatus = "invited"
)

// IsTerminal reports whether the status permits no further transitions
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// IsActive reports whether the booking currently occupies the ride
// (pending and confirmed requests, and outstanding invitations)
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed || s == BookingStatusInvited
}

// BookingAction is a requested transition on a booking
type BookingAction string

const (
	BookingActionApprove BookingAction = "approve"
	BookingActionDeny    BookingAction = "deny"
	BookingActionCancel  BookingAction = "cancel"
)

// Valid reports whether the action token is one of the known actions
func (a BookingAction) Valid() bool {
	switch a {
	case BookingActionApprove, BookingActionDeny, BookingActionCancel:
		return true
	}
	return false
}

// Booking represents a passenger's reservation of a seat on a ride,
// created either as a passenger request (pending) or a driver offer (invited)
type Booking struct {
	BookingID      uuid.UUID     `json:"booking_id" db:"booking_id"`
	RideID         uuid.UUID     `json:"ride_id" db:"ride_id"`
	DriverID       uuid.UUID     `json:"driver_id" db:"driver_id"`
	PassengerID    uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	Status         BookingStatus `json:"status" db:"status"`
	PickupLocation string        `json:"pickup_location" db:"pickup_location"`
	PickupTime     *time.Time    `json:"pickup_time" db:"pickup_time"`
	ConfirmedAt    *time.Time    `json:"confirmed_at" db:"confirmed_at"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingRequest is the payload for a passenger-initiated booking request
type BookingRequest struct {
	RideID         string     `json:"ride_id"`
	PickupLocation string     `json:"pickup_location"`
	PickupTime     *time.Time `json:"pickup_time"`
}

// InvitationRequest is the payload for a driver-initiated booking offer
type InvitationRequest struct {
	RideID         string     `json:"ride_id"`
	PassengerID    string     `json:"passenger_id"`
	PickupLocation string     `json:"pickup_location"`
	PickupTime     *time.Time `json:"pickup_time"`
}

// BookingActionRequest is the payload for a booking status transition
type BookingActionRequest struct {
	Action BookingAction `json:"action"`
}

// BookingActionResponse is returned after a successful transition
type BookingActionResponse struct {
	Success bool          `json:"success"`
	Status  BookingStatus `json:"status"`
}

// NotificationEvent is a notification intent published after a booking
// change; the messaging service consumes it and persists a conversation
// message between the two participants
type NotificationEvent struct {
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	RideID      uuid.UUID `json:"ride_id"`
	Content     string    `json:"content"`
	SentAt      time.Time `json:"sent_at"`
}
