package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*PostgresClient, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &PostgresClient{db: sqlx.NewDb(mockDB, "pgx")}, mock
}

func TestPostgresClient_GetDB(t *testing.T) {
	// Arrange
	client, mock := newMockClient(t)

	// Act
	db := client.GetDB()

	// Assert
	assert.NotNil(t, db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Ping(t *testing.T) {
	// Arrange
	client, mock := newMockClient(t)
	mock.ExpectPing()

	// Act
	err := client.Ping(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Ping_Failure(t *testing.T) {
	// Arrange
	client, mock := newMockClient(t)
	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	// Act
	err := client.Ping(context.Background())

	// Assert
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	// Arrange
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	client := &PostgresClient{db: sqlx.NewDb(mockDB, "pgx")}

	// Act
	err = client.Close()

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Transaction(t *testing.T) {
	// Arrange
	client, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Act
	tx, err := client.GetDB().Beginx()
	require.NoError(t, err)
	_, err = tx.Exec("INSERT INTO bookings (pickup_location) VALUES ($1)", "Transit center")
	require.NoError(t, err)
	err = tx.Commit()

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
