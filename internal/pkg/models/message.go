package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a two-party thread scoped to a ride.
// Participants are stored as an ordered pair so the same two users on the
// same ride always resolve to a single conversation row.
type Conversation struct {
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"`
	RideID         uuid.UUID `json:"ride_id" db:"ride_id"`
	ParticipantA   uuid.UUID `json:"participant_a" db:"participant_a"`
	ParticipantB   uuid.UUID `json:"participant_b" db:"participant_b"`
	LastMessageAt  time.Time `json:"last_message_at" db:"last_message_at"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// HasParticipant reports whether the user belongs to the conversation
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.ParticipantA == userID || c.ParticipantB == userID
}

// Message is a single message within a conversation
type Message struct {
	MessageID      uuid.UUID `json:"message_id" db:"message_id"`
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id" db:"sender_id"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// SendMessageRequest is the payload for a direct user-to-user message
type SendMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	RideID      string `json:"ride_id"`
	Content     string `json:"content"`
}
