package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/messaging"
	"github.com/rickeev/RideShareTahoe-sub001/services/messaging/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessageUC(t *testing.T) (messaging.MessageUC, *mocks.MockMessageRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockMessageRepo(ctrl)
	return NewMessageUC(&models.Config{}, mockRepo), mockRepo
}

func TestSendMessage_Success(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestMessageUC(t)

	senderID := uuid.New()
	recipientID := uuid.New()
	rideID := uuid.New()
	conversation := &models.Conversation{ConversationID: uuid.New(), RideID: rideID}

	mockRepo.EXPECT().IsBlocked(gomock.Any(), senderID, recipientID).Return(false, nil)
	mockRepo.EXPECT().GetOrCreateConversation(gomock.Any(), rideID, senderID, recipientID).
		Return(conversation, nil)
	mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, message *models.Message) error {
			assert.Equal(t, conversation.ConversationID, message.ConversationID)
			assert.Equal(t, senderID, message.SenderID)
			assert.Equal(t, "Running five minutes late", message.Content)
			return nil
		})

	// Act
	message, err := uc.SendMessage(context.Background(), senderID, models.SendMessageRequest{
		RecipientID: recipientID.String(),
		RideID:      rideID.String(),
		Content:     "Running five minutes late",
	})

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, message)
}

func TestSendMessage_BlockedPairIsRejected(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestMessageUC(t)

	senderID := uuid.New()
	recipientID := uuid.New()

	mockRepo.EXPECT().IsBlocked(gomock.Any(), senderID, recipientID).Return(true, nil)

	// Act
	message, err := uc.SendMessage(context.Background(), senderID, models.SendMessageRequest{
		RecipientID: recipientID.String(),
		RideID:      uuid.New().String(),
		Content:     "hello",
	})

	// Assert
	assert.ErrorIs(t, err, messaging.ErrBlocked)
	assert.Nil(t, message)
}

func TestSendMessage_EmptyContentIsRejected(t *testing.T) {
	// Arrange
	uc, _ := newTestMessageUC(t)

	// Act
	message, err := uc.SendMessage(context.Background(), uuid.New(), models.SendMessageRequest{
		RecipientID: uuid.New().String(),
		RideID:      uuid.New().String(),
		Content:     "   ",
	})

	// Assert
	assert.ErrorIs(t, err, messaging.ErrValidation)
	assert.Nil(t, message)
}

func TestListMessages_NonParticipantIsRejected(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestMessageUC(t)

	conversation := &models.Conversation{
		ConversationID: uuid.New(),
		ParticipantA:   uuid.New(),
		ParticipantB:   uuid.New(),
	}
	stranger := uuid.New()

	mockRepo.EXPECT().GetConversation(gomock.Any(), conversation.ConversationID).
		Return(conversation, nil)

	// Act
	messages, err := uc.ListMessages(context.Background(), stranger, conversation.ConversationID, 0, 0)

	// Assert
	assert.ErrorIs(t, err, messaging.ErrNotParticipant)
	assert.Nil(t, messages)
}

func TestListMessages_DefaultsAndClampsPageSize(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestMessageUC(t)

	callerID := uuid.New()
	conversation := &models.Conversation{
		ConversationID: uuid.New(),
		ParticipantA:   callerID,
		ParticipantB:   uuid.New(),
	}

	mockRepo.EXPECT().GetConversation(gomock.Any(), conversation.ConversationID).
		Return(conversation, nil).Times(2)
	mockRepo.EXPECT().ListMessages(gomock.Any(), conversation.ConversationID, 50, 0).
		Return([]models.Message{}, nil)
	mockRepo.EXPECT().ListMessages(gomock.Any(), conversation.ConversationID, 200, 0).
		Return([]models.Message{}, nil)

	// Act + Assert
	_, err := uc.ListMessages(context.Background(), callerID, conversation.ConversationID, 0, 0)
	assert.NoError(t, err)

	_, err = uc.ListMessages(context.Background(), callerID, conversation.ConversationID, 10000, -5)
	assert.NoError(t, err)
}

func TestHandleNotificationEvent_PersistsMessage(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestMessageUC(t)

	event := models.NotificationEvent{
		SenderID:    uuid.New(),
		RecipientID: uuid.New(),
		RideID:      uuid.New(),
		Content:     "Dana Reed confirmed your booking request. See you at the pickup spot!",
		SentAt:      time.Now(),
	}
	conversation := &models.Conversation{ConversationID: uuid.New(), RideID: event.RideID}

	mockRepo.EXPECT().GetOrCreateConversation(gomock.Any(), event.RideID, event.SenderID, event.RecipientID).
		Return(conversation, nil)
	mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, message *models.Message) error {
			assert.Equal(t, event.Content, message.Content)
			assert.Equal(t, event.SenderID, message.SenderID)
			assert.Equal(t, event.SentAt, message.CreatedAt)
			return nil
		})

	// Act
	err := uc.HandleNotificationEvent(context.Background(), event)

	// Assert
	assert.NoError(t, err)
}

func TestHandleNotificationEvent_RejectsIncompleteEvent(t *testing.T) {
	// Arrange
	uc, _ := newTestMessageUC(t)

	// Act
	err := uc.HandleNotificationEvent(context.Background(), models.NotificationEvent{
		SenderID: uuid.New(),
		Content:  "missing recipient",
	})

	// Assert
	assert.ErrorIs(t, err, messaging.ErrValidation)
}

func TestConversationHasParticipant(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	conversation := &models.Conversation{ParticipantA: a, ParticipantB: b}

	require.True(t, conversation.HasParticipant(a))
	require.True(t, conversation.HasParticipant(b))
	require.False(t, conversation.HasParticipant(uuid.New()))
}
