package repository

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

func setupMessageRepoTest(t *testing.T) (*MessageRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	repo := NewMessageRepo(&models.Config{}, sqlxDB)
	return repo, mock
}

func TestOrderPair_IsStable(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	x1, y1 := orderPair(a, b)
	x2, y2 := orderPair(b, a)

	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
	assert.LessOrEqual(t, bytes.Compare(x1[:], y1[:]), 0)
}

func TestGetOrCreateConversation_BothDirectionsHitSameRow(t *testing.T) {
	repo, mock := setupMessageRepoTest(t)

	rideID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()
	first, second := orderPair(userA, userB)
	conversationID := uuid.New()
	now := time.Now()

	columns := []string{"conversation_id", "ride_id", "participant_a", "participant_b", "last_message_at", "created_at"}

	mock.ExpectQuery("^INSERT INTO conversations").
		WithArgs(sqlmock.AnyArg(), rideID, first, second).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(conversationID, rideID, first, second, now, now))
	mock.ExpectQuery("^INSERT INTO conversations").
		WithArgs(sqlmock.AnyArg(), rideID, first, second).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(conversationID, rideID, first, second, now, now))

	c1, err := repo.GetOrCreateConversation(context.Background(), rideID, userA, userB)
	require.NoError(t, err)

	// Reversed participant order resolves to the same conversation.
	c2, err := repo.GetOrCreateConversation(context.Background(), rideID, userB, userA)
	require.NoError(t, err)

	assert.Equal(t, c1.ConversationID, c2.ConversationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendMessage_BumpsConversationInTransaction(t *testing.T) {
	repo, mock := setupMessageRepoTest(t)

	message := &models.Message{
		MessageID:      uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       uuid.New(),
		Content:        "On my way",
		CreatedAt:      time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("^INSERT INTO messages").
		WithArgs(message.MessageID, message.ConversationID, message.SenderID,
			message.Content, message.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE conversations SET last_message_at").
		WithArgs(message.CreatedAt, message.ConversationID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AppendMessage(context.Background(), message)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
