package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rickeev/RideShareTahoe-sub001/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error

	CreateBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error
	DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error
	ListBlocks(ctx context.Context, blockerID uuid.UUID) ([]models.Block, error)

	CreateReview(ctx context.Context, review *models.Review) error
	ReviewExists(ctx context.Context, reviewerID, rideID uuid.UUID) (bool, error)
	ListReviewsForUser(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error)
	HasCompletedRideTogether(ctx context.Context, rideID, userA, userB uuid.UUID) (bool, error)
}
