package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key",
		Expiration: 60,
		Issuer:     "rideshare-tahoe",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	// Arrange
	cfg := testJWTConfig()
	userID := uuid.New()

	// Act
	tokenString, expiresAt, err := GenerateToken(userID, "rider@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.Secret)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "rider@example.com", claims["email"])
	assert.Equal(t, cfg.Issuer, claims["iss"])
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestGenerateToken_ExpirationTracksConfig(t *testing.T) {
	// Arrange
	cfg := testJWTConfig()
	cfg.Expiration = 30

	// Act
	before := time.Now()
	tokenString, expiresAt, err := GenerateToken(uuid.New(), "rider@example.com", cfg)
	after := time.Now()

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.GreaterOrEqual(t, expiresAt, before.Add(30*time.Minute).Unix())
	assert.LessOrEqual(t, expiresAt, after.Add(30*time.Minute).Unix())
}

func TestValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	cfg := testJWTConfig()
	tokenString, _, err := GenerateToken(uuid.New(), "rider@example.com", cfg)
	require.NoError(t, err)

	// Act
	claims, err := ValidateToken(tokenString, "different-secret")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	// Arrange
	cfg := testJWTConfig()
	cfg.Expiration = -1

	tokenString, _, err := GenerateToken(uuid.New(), "rider@example.com", cfg)
	require.NoError(t, err)

	// Act
	claims, err := ValidateToken(tokenString, cfg.Secret)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Malformed(t *testing.T) {
	claims, err := ValidateToken("not.a.token", testJWTConfig().Secret)

	assert.Error(t, err)
	assert.Nil(t, claims)
}
