package repository

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/messaging"
)

// MessageRepo implements the messaging.MessageRepo interface using
// PostgreSQL
type MessageRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessageRepo creates a new messaging repository
func NewMessageRepo(cfg *models.Config, db *sqlx.DB) *MessageRepo {
	return &MessageRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetOrCreateConversation resolves the single conversation for a user
// pair on a ride, creating it on first contact. The pair is stored in
// byte order so both directions land on the same row; the unique index
// on (ride_id, participant_a, participant_b) makes concurrent first
// messages race safely.
func (r *MessageRepo) GetOrCreateConversation(ctx context.Context, rideID, userA, userB uuid.UUID) (*models.Conversation, error) {
	first, second := orderPair(userA, userB)

	query := `
		INSERT INTO conversations (
			conversation_id, ride_id, participant_a, participant_b,
			last_message_at, created_at
		) VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (ride_id, participant_a, participant_b) DO UPDATE
			SET ride_id = EXCLUDED.ride_id
		RETURNING conversation_id, ride_id, participant_a, participant_b,
			last_message_at, created_at`

	conversation := &models.Conversation{}
	err := r.db.GetContext(ctx, conversation, query, uuid.New(), rideID, first, second)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create conversation: %w", err)
	}
	return conversation, nil
}

// GetConversation retrieves a conversation by ID
func (r *MessageRepo) GetConversation(ctx context.Context, conversationID uuid.UUID) (*models.Conversation, error) {
	query := `
		SELECT conversation_id, ride_id, participant_a, participant_b,
			last_message_at, created_at
		FROM conversations
		WHERE conversation_id = $1`

	conversation := &models.Conversation{}
	err := r.db.GetContext(ctx, conversation, query, conversationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, messaging.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conversation, nil
}

// ListConversations returns the conversations a user participates in,
// most recent activity first
func (r *MessageRepo) ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	query := `
		SELECT conversation_id, ride_id, participant_a, participant_b,
			last_message_at, created_at
		FROM conversations
		WHERE participant_a = $1 OR participant_b = $1
		ORDER BY last_message_at DESC`

	var conversations []models.Conversation
	if err := r.db.SelectContext(ctx, &conversations, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

// AppendMessage inserts a message and bumps the conversation's
// last_message_at in one transaction
func (r *MessageRepo) AppendMessage(ctx context.Context, message *models.Message) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO messages (message_id, conversation_id, sender_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.ExecContext(ctx, insertQuery,
		message.MessageID,
		message.ConversationID,
		message.SenderID,
		message.Content,
		message.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	bumpQuery := `
		UPDATE conversations
		SET last_message_at = $1
		WHERE conversation_id = $2 AND last_message_at < $1`

	if _, err := tx.ExecContext(ctx, bumpQuery,
		message.CreatedAt, message.ConversationID); err != nil {
		return fmt.Errorf("failed to bump conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListMessages returns a page of messages from a conversation, newest
// first
func (r *MessageRepo) ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]models.Message, error) {
	query := `
		SELECT message_id, conversation_id, sender_id, content, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var messages []models.Message
	if err := r.db.SelectContext(ctx, &messages, query, conversationID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// IsBlocked reports whether a block exists between the users in either
// direction
func (r *MessageRepo) IsBlocked(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM blocks
			WHERE (blocker_id = $1 AND blocked_id = $2)
			   OR (blocker_id = $2 AND blocked_id = $1)
		)`

	var blocked bool
	if err := r.db.GetContext(ctx, &blocked, query, userA, userB); err != nil {
		return false, fmt.Errorf("failed to check block status: %w", err)
	}
	return blocked, nil
}

// orderPair returns the two IDs in stable byte order
func orderPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}
