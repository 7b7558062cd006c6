package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/internal/utils"
	"github.com/rickeev/RideShareTahoe-sub001/services/messaging"
)

// MessagesHandler handles HTTP requests for messaging operations
type MessagesHandler struct {
	messageUC messaging.MessageUC
}

// NewMessagesHandler creates a new messaging HTTP handler
func NewMessagesHandler(messageUC messaging.MessageUC) *MessagesHandler {
	return &MessagesHandler{messageUC: messageUC}
}

// SendMessage handles POST /messages
func (h *MessagesHandler) SendMessage(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), callerID, req)
	if err != nil {
		return messageErrorResponse(c, err, "Failed to send message",
			logger.String("recipient_id", req.RecipientID))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", message)
}

// ListConversations handles GET /conversations
func (h *MessagesHandler) ListConversations(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	conversations, err := h.messageUC.ListConversations(c.Request().Context(), callerID)
	if err != nil {
		return messageErrorResponse(c, err, "Failed to list conversations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", conversations)
}

// ListMessages handles GET /conversations/:conversationID/messages
func (h *MessagesHandler) ListMessages(c echo.Context) error {
	callerID := utils.UserIDFromContext(c)
	if callerID == uuid.Nil {
		return utils.UnauthorizedResponse(c, "")
	}

	conversationID, err := uuid.Parse(c.Param("conversationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	messages, err := h.messageUC.ListMessages(c.Request().Context(), callerID, conversationID, limit, offset)
	if err != nil {
		return messageErrorResponse(c, err, "Failed to list messages",
			logger.String("conversation_id", conversationID.String()))
	}

	return utils.SuccessResponse(c, http.StatusOK, "", messages)
}

func messageErrorResponse(c echo.Context, err error, logMsg string, fields ...logger.Field) error {
	switch {
	case errors.Is(err, messaging.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, messaging.ErrNotParticipant),
		errors.Is(err, messaging.ErrBlocked):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, messaging.ErrConversationNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error(logMsg, append(fields, logger.Err(err))...)
		return utils.InternalServerErrorResponse(c, "")
	}
}
