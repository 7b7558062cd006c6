package usecase

import (
	"testing"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/bookings"
	"github.com/stretchr/testify/assert"
)

func TestResolveTransition_AllowedTransitions(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		current models.BookingStatus
		action  models.BookingAction
		want    models.BookingStatus
	}{
		{"driver approves pending request", RoleDriver, models.BookingStatusPending, models.BookingActionApprove, models.BookingStatusConfirmed},
		{"driver denies pending request", RoleDriver, models.BookingStatusPending, models.BookingActionDeny, models.BookingStatusCancelled},
		{"driver withdraws invitation", RoleDriver, models.BookingStatusInvited, models.BookingActionDeny, models.BookingStatusCancelled},
		{"passenger accepts invitation", RolePassenger, models.BookingStatusInvited, models.BookingActionApprove, models.BookingStatusConfirmed},
		{"passenger declines invitation", RolePassenger, models.BookingStatusInvited, models.BookingActionDeny, models.BookingStatusCancelled},
		{"passenger cancels own request", RolePassenger, models.BookingStatusPending, models.BookingActionCancel, models.BookingStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTransition(tt.role, tt.current, tt.action)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every (role, status, action) combination outside the six allowed ones
// must be rejected, including actions on terminal statuses.
func TestResolveTransition_RejectsEverythingElse(t *testing.T) {
	allowed := map[[3]string]bool{
		{string(RoleDriver), string(models.BookingStatusPending), string(models.BookingActionApprove)}:    true,
		{string(RoleDriver), string(models.BookingStatusPending), string(models.BookingActionDeny)}:       true,
		{string(RoleDriver), string(models.BookingStatusInvited), string(models.BookingActionDeny)}:       true,
		{string(RolePassenger), string(models.BookingStatusInvited), string(models.BookingActionApprove)}: true,
		{string(RolePassenger), string(models.BookingStatusInvited), string(models.BookingActionDeny)}:    true,
		{string(RolePassenger), string(models.BookingStatusPending), string(models.BookingActionCancel)}:  true,
	}

	roles := []Role{RoleDriver, RolePassenger}
	statuses := []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusInvited,
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
		models.BookingStatusCompleted,
	}
	actions := []models.BookingAction{
		models.BookingActionApprove,
		models.BookingActionDeny,
		models.BookingActionCancel,
	}

	for _, role := range roles {
		for _, status := range statuses {
			for _, action := range actions {
				if allowed[[3]string{string(role), string(status), string(action)}] {
					continue
				}

				got, err := ResolveTransition(role, status, action)

				assert.ErrorIs(t, err, bookings.ErrInvalidTransition,
					"role=%s status=%s action=%s", role, status, action)
				assert.Empty(t, got)
			}
		}
	}
}

// Re-approving an already confirmed booking is rejected rather than
// silently succeeding, so a duplicate approve cannot double-decrement
// seats.
func TestResolveTransition_ApproveConfirmedIsRejected(t *testing.T) {
	_, err := ResolveTransition(RoleDriver, models.BookingStatusConfirmed, models.BookingActionApprove)

	assert.ErrorIs(t, err, bookings.ErrInvalidTransition)
}

func TestTransitionNotification_Templates(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		action models.BookingAction
		prior  models.BookingStatus
		want   string
	}{
		{"driver approves request", RoleDriver, models.BookingActionApprove, models.BookingStatusPending,
			"Alice Smith confirmed your booking request. See you at the pickup spot!"},
		{"driver denies request", RoleDriver, models.BookingActionDeny, models.BookingStatusPending,
			"Alice Smith declined your booking request."},
		{"driver withdraws invitation", RoleDriver, models.BookingActionDeny, models.BookingStatusInvited,
			"Alice Smith withdrew their invitation."},
		{"passenger accepts invitation", RolePassenger, models.BookingActionApprove, models.BookingStatusInvited,
			"Alice Smith accepted your invitation and will be joining the ride."},
		{"passenger declines invitation", RolePassenger, models.BookingActionDeny, models.BookingStatusInvited,
			"Alice Smith declined the invitation."},
		{"passenger cancels request", RolePassenger, models.BookingActionCancel, models.BookingStatusPending,
			"Alice Smith cancelled their booking request."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transitionNotification(tt.role, tt.action, tt.prior, "Alice Smith")

			assert.Equal(t, tt.want, got)
		})
	}
}
