package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// MessageUC defines the interface for messaging business logic.
// HandleNotificationEvent is invoked by the NATS consumer; the remaining
// operations back the HTTP surface.
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rickeev/RideShareTahoe-sub001/services/messaging MessageUC
type MessageUC interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, req models.SendMessageRequest) (*models.Message, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error)
	ListMessages(ctx context.Context, callerID, conversationID uuid.UUID, limit, offset int) ([]models.Message, error)

	HandleNotificationEvent(ctx context.Context, event models.NotificationEvent) error
}
