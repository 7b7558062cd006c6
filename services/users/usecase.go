package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// UserUC defines the interface for user business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rickeev/RideShareTahoe-sub001/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.ProfileUpdateRequest) (*models.User, error)

	BlockUser(ctx context.Context, blockerID uuid.UUID, req models.BlockRequest) error
	UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error
	ListBlocks(ctx context.Context, blockerID uuid.UUID) ([]models.Block, error)

	CreateReview(ctx context.Context, reviewerID uuid.UUID, req models.ReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error)
}
