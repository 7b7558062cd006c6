package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/messaging"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type messageUC struct {
	cfg  *models.Config
	repo messaging.MessageRepo
}

// NewMessageUC creates a new messaging usecase
func NewMessageUC(cfg *models.Config, repo messaging.MessageRepo) messaging.MessageUC {
	return &messageUC{
		cfg:  cfg,
		repo: repo,
	}
}

// SendMessage appends a direct message to the ride conversation between
// sender and recipient, creating the conversation if it does not exist.
// Blocked pairs cannot message each other.
func (uc *messageUC) SendMessage(ctx context.Context, senderID uuid.UUID, req models.SendMessageRequest) (*models.Message, error) {
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, messaging.ErrValidation
	}
	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		return nil, messaging.ErrValidation
	}
	content := strings.TrimSpace(req.Content)
	if content == "" || recipientID == senderID {
		return nil, messaging.ErrValidation
	}

	blocked, err := uc.repo.IsBlocked(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, messaging.ErrBlocked
	}

	conversation, err := uc.repo.GetOrCreateConversation(ctx, rideID, senderID, recipientID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		MessageID:      uuid.New(),
		ConversationID: conversation.ConversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.AppendMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListConversations returns the caller's conversations, most recent
// activity first
func (uc *messageUC) ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	return uc.repo.ListConversations(ctx, userID)
}

// ListMessages returns a page of messages from a conversation the caller
// participates in, newest first
func (uc *messageUC) ListMessages(ctx context.Context, callerID, conversationID uuid.UUID, limit, offset int) ([]models.Message, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	conversation, err := uc.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(callerID) {
		return nil, messaging.ErrNotParticipant
	}

	return uc.repo.ListMessages(ctx, conversationID, limit, offset)
}

// HandleNotificationEvent persists a booking notification as a
// conversation message between the two participants. Events are
// delivered at least once; failures are returned so the consumer can
// log them, but the booking transition that produced the event has
// already committed and is never rolled back.
func (uc *messageUC) HandleNotificationEvent(ctx context.Context, event models.NotificationEvent) error {
	if event.SenderID == uuid.Nil || event.RecipientID == uuid.Nil || event.Content == "" {
		return messaging.ErrValidation
	}

	conversation, err := uc.repo.GetOrCreateConversation(ctx, event.RideID, event.SenderID, event.RecipientID)
	if err != nil {
		return err
	}

	sentAt := event.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	message := &models.Message{
		MessageID:      uuid.New(),
		ConversationID: conversation.ConversationID,
		SenderID:       event.SenderID,
		Content:        event.Content,
		CreatedAt:      sentAt,
	}
	if err := uc.repo.AppendMessage(ctx, message); err != nil {
		return err
	}

	logger.Debug("booking notification persisted",
		logger.String("conversation_id", conversation.ConversationID.String()),
		logger.String("ride_id", event.RideID.String()))
	return nil
}
