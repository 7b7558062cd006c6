package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/internal/utils"
	"github.com/rickeev/RideShareTahoe-sub001/services/bookings"
)

// BookingsHandler handles HTTP requests for booking operations
type BookingsHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingsHandler creates a new booking HTTP handler
func NewBookingsHandler(bookingUC bookings.BookingUC) *BookingsHandler {
	return &BookingsHandler{bookingUC: bookingUC}
}

// ResolveAction handles PATCH /bookings/:bookingID with an
// approve/deny/cancel action
func (h *BookingsHandler) ResolveAction(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.BookingActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if !req.Action.Valid() {
		return utils.BadRequestResponse(c, "Invalid action: must be approve, deny or cancel")
	}

	status, err := h.bookingUC.ResolveAction(c.Request().Context(), callerID, bookingID, req.Action)
	if err != nil {
		return bookingErrorResponse(c, err, "Failed to resolve booking action",
			logger.String("booking_id", bookingID.String()),
			logger.String("action", string(req.Action)))
	}

	return c.JSON(http.StatusOK, models.BookingActionResponse{
		Success: true,
		Status:  status,
	})
}

// RequestBooking handles POST /bookings
func (h *BookingsHandler) RequestBooking(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.RideID == "" {
		return utils.BadRequestResponse(c, "Ride ID is required")
	}

	booking, err := h.bookingUC.RequestBooking(c.Request().Context(), callerID, req)
	if err != nil {
		return bookingErrorResponse(c, err, "Failed to create booking request",
			logger.String("ride_id", req.RideID))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking request created", booking)
}

// InvitePassenger handles POST /invitations
func (h *BookingsHandler) InvitePassenger(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.InvitationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.RideID == "" || req.PassengerID == "" {
		return utils.BadRequestResponse(c, "Ride ID and passenger ID are required")
	}

	booking, err := h.bookingUC.InvitePassenger(c.Request().Context(), callerID, req)
	if err != nil {
		return bookingErrorResponse(c, err, "Failed to create invitation",
			logger.String("ride_id", req.RideID),
			logger.String("passenger_id", req.PassengerID))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Invitation created", booking)
}

// ListBookings handles GET /bookings
func (h *BookingsHandler) ListBookings(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.bookingUC.ListBookings(c.Request().Context(), callerID)
	if err != nil {
		return bookingErrorResponse(c, err, "Failed to list bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// bookingErrorResponse maps domain errors to HTTP responses. Persistence
// failures are logged with full detail and surfaced as a generic 500.
func bookingErrorResponse(c echo.Context, err error, logMsg string, fields ...logger.Field) error {
	switch {
	case errors.Is(err, bookings.ErrValidation),
		errors.Is(err, bookings.ErrInvalidTransition),
		errors.Is(err, bookings.ErrNoSeatsAvailable),
		errors.Is(err, bookings.ErrRideNotActive),
		errors.Is(err, bookings.ErrOwnRide):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, bookings.ErrDuplicateBooking):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, bookings.ErrNotParticipant),
		errors.Is(err, bookings.ErrNotRideDriver),
		errors.Is(err, bookings.ErrBlocked):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, bookings.ErrBookingNotFound),
		errors.Is(err, bookings.ErrRideNotFound),
		errors.Is(err, bookings.ErrUserNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error(logMsg, append(fields, logger.Err(err))...)
		return utils.InternalServerErrorResponse(c, "")
	}
}
