package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/rickeev/RideShareTahoe-sub001/internal/pkg/jwt"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/users"
)

const minPasswordLength = 8

type userUC struct {
	cfg  *models.Config
	repo users.UserRepo
}

// NewUserUC creates a new user usecase
func NewUserUC(cfg *models.Config, repo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:  cfg,
		repo: repo,
	}
}

// Register creates a new account and returns a signed token for it
func (uc *userUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, users.ErrValidation
	}
	if len(req.Password) < minPasswordLength {
		return nil, users.ErrValidation
	}

	existing, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, users.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	user.ProfileComplete = profileComplete(user)

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.UserID, user.Email, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", logger.String("user_id", user.UserID.String()))

	return &models.AuthResponse{
		UserID:    user.UserID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Login verifies credentials and returns a signed token. Lookup and
// password failures collapse into the same error so the response does not
// reveal which accounts exist.
func (uc *userUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, users.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.UserID, user.Email, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		UserID:    user.UserID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GetProfile fetches the caller's own profile
func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.repo.GetUser(ctx, userID)
}

// UpdateProfile applies the given profile fields and recomputes the
// profile_complete flag
func (uc *userUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.ProfileUpdateRequest) (*models.User, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Bio = strings.TrimSpace(req.Bio)
	user.ProfileComplete = profileComplete(user)

	if err := uc.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// BlockUser records a block against the given user. Blocking is
// idempotent; repeating an existing block is not an error.
func (uc *userUC) BlockUser(ctx context.Context, blockerID uuid.UUID, req models.BlockRequest) error {
	blockedID, err := uuid.Parse(req.UserID)
	if err != nil {
		return users.ErrValidation
	}
	if blockedID == blockerID {
		return users.ErrValidation
	}

	if _, err := uc.repo.GetUser(ctx, blockedID); err != nil {
		return err
	}

	if err := uc.repo.CreateBlock(ctx, blockerID, blockedID); err != nil {
		return err
	}

	logger.Info("user blocked",
		logger.String("blocker_id", blockerID.String()),
		logger.String("blocked_id", blockedID.String()))
	return nil
}

// UnblockUser removes a block previously created by blockerID
func (uc *userUC) UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	return uc.repo.DeleteBlock(ctx, blockerID, blockedID)
}

// ListBlocks returns the blocks created by blockerID
func (uc *userUC) ListBlocks(ctx context.Context, blockerID uuid.UUID) ([]models.Block, error) {
	return uc.repo.ListBlocks(ctx, blockerID)
}

// CreateReview submits a review of another participant of a completed
// shared ride. One review per reviewer per ride.
func (uc *userUC) CreateReview(ctx context.Context, reviewerID uuid.UUID, req models.ReviewRequest) (*models.Review, error) {
	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		return nil, users.ErrValidation
	}
	revieweeID, err := uuid.Parse(req.RevieweeID)
	if err != nil {
		return nil, users.ErrValidation
	}
	if revieweeID == reviewerID {
		return nil, users.ErrValidation
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, users.ErrValidation
	}

	exists, err := uc.repo.ReviewExists(ctx, reviewerID, rideID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, users.ErrDuplicateReview
	}

	eligible, err := uc.repo.HasCompletedRideTogether(ctx, rideID, reviewerID, revieweeID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, users.ErrNotEligible
	}

	review := &models.Review{
		ReviewID:   uuid.New(),
		RideID:     rideID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}
	if err := uc.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews returns the reviews received by the given user
func (uc *userUC) ListReviews(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error) {
	return uc.repo.ListReviewsForUser(ctx, revieweeID)
}

// profileComplete reports whether all profile fields are filled in
func profileComplete(u *models.User) bool {
	return u.FirstName != "" && u.LastName != "" && u.Bio != ""
}
