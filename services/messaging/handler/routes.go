package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	natspkg "github.com/rickeev/RideShareTahoe-sub001/internal/pkg/nats"
	"github.com/rickeev/RideShareTahoe-sub001/services/messaging"
	httpHandler "github.com/rickeev/RideShareTahoe-sub001/services/messaging/handler/http"
)

// Handler combines the HTTP and NATS handlers for the messaging service
type Handler struct {
	messagesHTTP *httpHandler.MessagesHandler
	natsHandler  *NatsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(messageUC messaging.MessageUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		messagesHTTP: httpHandler.NewMessagesHandler(messageUC),
		natsHandler:  NewNatsHandler(messageUC, natsClient),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes on the authenticated group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/messages", h.messagesHTTP.SendMessage)
	g.GET("/conversations", h.messagesHTTP.ListConversations)
	g.GET("/conversations/:conversationID/messages", h.messagesHTTP.ListMessages)
}

// InitConsumers starts the NATS consumers
func (h *Handler) InitConsumers() error {
	return h.natsHandler.InitConsumers()
}

// Drain stops the NATS consumers
func (h *Handler) Drain() {
	h.natsHandler.Drain()
}
