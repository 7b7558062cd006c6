package usecase

import (
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// transitionNotification returns the message sent to the other
// participant after a successful status transition. Text varies by
// (caller role x action x prior status).
func transitionNotification(role Role, action models.BookingAction, prior models.BookingStatus, senderName string) string {
	switch {
	case role == RoleDriver && action == models.BookingActionApprove && prior == models.BookingStatusPending:
		return senderName + " confirmed your booking request. See you at the pickup spot!"
	case role == RoleDriver && action == models.BookingActionDeny && prior == models.BookingStatusPending:
		return senderName + " declined your booking request."
	case role == RoleDriver && action == models.BookingActionDeny && prior == models.BookingStatusInvited:
		return senderName + " withdrew their invitation."
	case role == RolePassenger && action == models.BookingActionApprove && prior == models.BookingStatusInvited:
		return senderName + " accepted your invitation and will be joining the ride."
	case role == RolePassenger && action == models.BookingActionDeny && prior == models.BookingStatusInvited:
		return senderName + " declined the invitation."
	case role == RolePassenger && action == models.BookingActionCancel && prior == models.BookingStatusPending:
		return senderName + " cancelled their booking request."
	}
	return ""
}

// requestNotification is sent to the driver when a passenger requests
// to join a ride
func requestNotification(senderName string) string {
	return senderName + " requested to join your ride."
}

// invitationNotification is sent to the passenger when a driver invites
// them to a ride
func invitationNotification(senderName string) string {
	return senderName + " invited you to join their ride."
}
