package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// MessageRepo defines the interface for messaging data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rickeev/RideShareTahoe-sub001/services/messaging MessageRepo
type MessageRepo interface {
	GetOrCreateConversation(ctx context.Context, rideID, userA, userB uuid.UUID) (*models.Conversation, error)
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*models.Conversation, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error)

	AppendMessage(ctx context.Context, message *models.Message) error
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]models.Message, error)

	IsBlocked(ctx context.Context, userA, userB uuid.UUID) (bool, error)
}
