package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/internal/utils"
	"github.com/rickeev/RideShareTahoe-sub001/services/users"
)

// UsersHandler handles HTTP requests for user operations
type UsersHandler struct {
	userUC users.UserUC
}

// NewUsersHandler creates a new user HTTP handler
func NewUsersHandler(userUC users.UserUC) *UsersHandler {
	return &UsersHandler{userUC: userUC}
}

// Register handles POST /auth/register
func (h *UsersHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	auth, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to register user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", auth)
}

// Login handles POST /auth/login
func (h *UsersHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	auth, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", auth)
}

// GetProfile handles GET /profile
func (h *UsersHandler) GetProfile(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), callerID)
	if err != nil {
		return userErrorResponse(c, err, "Failed to get profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateProfile handles PUT /profile
func (h *UsersHandler) UpdateProfile(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), callerID, req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// BlockUser handles POST /blocks
func (h *UsersHandler) BlockUser(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BlockRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.userUC.BlockUser(c.Request().Context(), callerID, req); err != nil {
		return userErrorResponse(c, err, "Failed to block user",
			logger.String("blocked_id", req.UserID))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User blocked", nil)
}

// UnblockUser handles DELETE /blocks/:userID
func (h *UsersHandler) UnblockUser(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	blockedID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userUC.UnblockUser(c.Request().Context(), callerID, blockedID); err != nil {
		return userErrorResponse(c, err, "Failed to unblock user",
			logger.String("blocked_id", blockedID.String()))
	}

	return utils.SuccessResponse(c, http.StatusOK, "User unblocked", nil)
}

// ListBlocks handles GET /blocks
func (h *UsersHandler) ListBlocks(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	blocks, err := h.userUC.ListBlocks(c.Request().Context(), callerID)
	if err != nil {
		return userErrorResponse(c, err, "Failed to list blocks")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", blocks)
}

// CreateReview handles POST /reviews
func (h *UsersHandler) CreateReview(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	review, err := h.userUC.CreateReview(c.Request().Context(), callerID, req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to create review",
			logger.String("ride_id", req.RideID))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review submitted", review)
}

// ListReviews handles GET /users/:userID/reviews
func (h *UsersHandler) ListReviews(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	revieweeID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	reviews, err := h.userUC.ListReviews(c.Request().Context(), revieweeID)
	if err != nil {
		return userErrorResponse(c, err, "Failed to list reviews",
			logger.String("reviewee_id", revieweeID.String()))
	}

	return utils.SuccessResponse(c, http.StatusOK, "", reviews)
}

func userErrorResponse(c echo.Context, err error, logMsg string, fields ...logger.Field) error {
	switch {
	case errors.Is(err, users.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, users.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, users.ErrNotEligible):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, users.ErrEmailTaken),
		errors.Is(err, users.ErrDuplicateReview):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, users.ErrBlockNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error(logMsg, append(fields, logger.Err(err))...)
		return utils.InternalServerErrorResponse(c, "")
	}
}
