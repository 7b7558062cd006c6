package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/users"
	"github.com/rickeev/RideShareTahoe-sub001/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserUC(t *testing.T) (users.UserUC, *mocks.MockUserRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepo(ctrl)
	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test",
		},
	}
	return NewUserUC(cfg, mockRepo), mockRepo
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").
		Return(nil, users.ErrUserNotFound)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "rider@example.com", user.Email)
			assert.NotEqual(t, "hunter2secret", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(user.PasswordHash), []byte("hunter2secret")))
			// Bio is empty so the profile is not complete yet.
			assert.False(t, user.ProfileComplete)
			return nil
		})

	// Act
	auth, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:     "Rider@Example.com",
		Password:  "hunter2secret",
		FirstName: "Pat",
		LastName:  "Lane",
	})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, auth)
	assert.NotEmpty(t, auth.Token)
	assert.NotZero(t, auth.ExpiresAt)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "taken@example.com").
		Return(&models.User{UserID: uuid.New()}, nil)

	// Act
	auth, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:    "taken@example.com",
		Password: "hunter2secret",
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrEmailTaken)
	assert.Nil(t, auth)
}

func TestRegister_ShortPasswordIsRejected(t *testing.T) {
	// Arrange
	uc, _ := newTestUserUC(t)

	// Act
	auth, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:    "rider@example.com",
		Password: "short",
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrValidation)
	assert.Nil(t, auth)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		UserID:       uuid.New(),
		Email:        "rider@example.com",
		PasswordHash: string(hash),
	}
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").Return(user, nil)

	// Act
	auth, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "rider@example.com",
		Password: "hunter2secret",
	})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, auth)
	assert.Equal(t, user.UserID, auth.UserID)
	assert.NotEmpty(t, auth.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").
		Return(&models.User{UserID: uuid.New(), PasswordHash: string(hash)}, nil)

	// Act
	auth, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "rider@example.com",
		Password: "wrong-password",
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	assert.Nil(t, auth)
}

func TestLogin_UnknownEmailGetsSameError(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, users.ErrUserNotFound)

	// Act
	auth, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	assert.Nil(t, auth)
}

func TestUpdateProfile_SetsCompleteFlag(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	userID := uuid.New()
	mockRepo.EXPECT().GetUser(gomock.Any(), userID).
		Return(&models.User{UserID: userID, Email: "rider@example.com"}, nil)
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.True(t, user.ProfileComplete)
			return nil
		})

	// Act
	user, err := uc.UpdateProfile(context.Background(), userID, models.ProfileUpdateRequest{
		FirstName: "Pat",
		LastName:  "Lane",
		Bio:       "Commuting over the pass most weekdays.",
	})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.ProfileComplete)
}

func TestUpdateProfile_IncompleteWithoutBio(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	userID := uuid.New()
	mockRepo.EXPECT().GetUser(gomock.Any(), userID).
		Return(&models.User{UserID: userID, Bio: "old bio"}, nil)
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	user, err := uc.UpdateProfile(context.Background(), userID, models.ProfileUpdateRequest{
		FirstName: "Pat",
		LastName:  "Lane",
	})

	// Assert
	assert.NoError(t, err)
	assert.False(t, user.ProfileComplete)
}

func TestBlockUser_Success(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	blockerID := uuid.New()
	blockedID := uuid.New()

	mockRepo.EXPECT().GetUser(gomock.Any(), blockedID).
		Return(&models.User{UserID: blockedID}, nil)
	mockRepo.EXPECT().CreateBlock(gomock.Any(), blockerID, blockedID).Return(nil)

	// Act
	err := uc.BlockUser(context.Background(), blockerID, models.BlockRequest{
		UserID: blockedID.String(),
	})

	// Assert
	assert.NoError(t, err)
}

func TestBlockUser_SelfBlockIsRejected(t *testing.T) {
	// Arrange
	uc, _ := newTestUserUC(t)

	blockerID := uuid.New()

	// Act
	err := uc.BlockUser(context.Background(), blockerID, models.BlockRequest{
		UserID: blockerID.String(),
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrValidation)
}

func TestCreateReview_Success(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	reviewerID := uuid.New()
	revieweeID := uuid.New()
	rideID := uuid.New()

	mockRepo.EXPECT().ReviewExists(gomock.Any(), reviewerID, rideID).Return(false, nil)
	mockRepo.EXPECT().HasCompletedRideTogether(gomock.Any(), rideID, reviewerID, revieweeID).Return(true, nil)
	mockRepo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, review *models.Review) error {
			assert.Equal(t, 5, review.Rating)
			assert.Equal(t, reviewerID, review.ReviewerID)
			assert.Equal(t, revieweeID, review.RevieweeID)
			return nil
		})

	// Act
	review, err := uc.CreateReview(context.Background(), reviewerID, models.ReviewRequest{
		RideID:     rideID.String(),
		RevieweeID: revieweeID.String(),
		Rating:     5,
		Comment:    "Great company over the pass.",
	})

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, review)
}

func TestCreateReview_WithoutSharedCompletedRide(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	reviewerID := uuid.New()
	revieweeID := uuid.New()
	rideID := uuid.New()

	mockRepo.EXPECT().ReviewExists(gomock.Any(), reviewerID, rideID).Return(false, nil)
	mockRepo.EXPECT().HasCompletedRideTogether(gomock.Any(), rideID, reviewerID, revieweeID).Return(false, nil)

	// Act
	review, err := uc.CreateReview(context.Background(), reviewerID, models.ReviewRequest{
		RideID:     rideID.String(),
		RevieweeID: revieweeID.String(),
		Rating:     4,
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrNotEligible)
	assert.Nil(t, review)
}

func TestCreateReview_DuplicateIsRejected(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUserUC(t)

	reviewerID := uuid.New()
	rideID := uuid.New()

	mockRepo.EXPECT().ReviewExists(gomock.Any(), reviewerID, rideID).Return(true, nil)

	// Act
	review, err := uc.CreateReview(context.Background(), reviewerID, models.ReviewRequest{
		RideID:     rideID.String(),
		RevieweeID: uuid.New().String(),
		Rating:     4,
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrDuplicateReview)
	assert.Nil(t, review)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	// Arrange
	uc, _ := newTestUserUC(t)

	// Act
	review, err := uc.CreateReview(context.Background(), uuid.New(), models.ReviewRequest{
		RideID:     uuid.New().String(),
		RevieweeID: uuid.New().String(),
		Rating:     6,
	})

	// Assert
	assert.ErrorIs(t, err, users.ErrValidation)
	assert.Nil(t, review)
}
