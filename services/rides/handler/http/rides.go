package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/internal/utils"
	"github.com/rickeev/RideShareTahoe-sub001/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{rideUC: rideUC}
}

// CreateRide handles POST /rides
func (h *RidesHandler) CreateRide(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RideCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), callerID, req)
	if err != nil {
		return rideErrorResponse(c, err, "Failed to create ride")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created", ride)
}

// GetRide handles GET /rides/:rideID
func (h *RidesHandler) GetRide(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return rideErrorResponse(c, err, "Failed to get ride",
			logger.String("ride_id", rideID.String()))
	}

	return utils.SuccessResponse(c, http.StatusOK, "", ride)
}

// SearchRides handles GET /rides
func (h *RidesHandler) SearchRides(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RideSearchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters: "+err.Error())
	}

	results, err := h.rideUC.SearchRides(c.Request().Context(), callerID, req)
	if err != nil {
		return rideErrorResponse(c, err, "Failed to search rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", results)
}

// CancelRide handles PATCH /rides/:rideID/cancel
func (h *RidesHandler) CancelRide(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	if err := h.rideUC.CancelRide(c.Request().Context(), callerID, rideID); err != nil {
		return rideErrorResponse(c, err, "Failed to cancel ride",
			logger.String("ride_id", rideID.String()))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", nil)
}

// CompleteRide handles POST /rides/:rideID/complete
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	if err := h.rideUC.CompleteRide(c.Request().Context(), callerID, rideID); err != nil {
		return rideErrorResponse(c, err, "Failed to complete ride",
			logger.String("ride_id", rideID.String()))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", nil)
}

func rideErrorResponse(c echo.Context, err error, logMsg string, fields ...logger.Field) error {
	switch {
	case errors.Is(err, rides.ErrValidation),
		errors.Is(err, rides.ErrRideNotActive),
		errors.Is(err, rides.ErrDepartureNotYet):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, rides.ErrNotRideDriver):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, rides.ErrRideNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error(logMsg, append(fields, logger.Err(err))...)
		return utils.InternalServerErrorResponse(c, "")
	}
}
