package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/users"
)

// UserRepo implements the users.UserRepo interface using PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

const userColumns = `user_id, email, password_hash, first_name, last_name,
	bio, profile_complete, created_at, updated_at`

// CreateUser inserts a new user row
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			user_id, email, password_hash, first_name, last_name,
			bio, profile_complete, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := r.db.ExecContext(ctx, query,
		user.UserID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.ProfileComplete,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (r *UserRepo) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateProfile persists the mutable profile fields of a user
func (r *UserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, bio = $3,
			profile_complete = $4, updated_at = NOW()
		WHERE user_id = $5`

	result, err := r.db.ExecContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.ProfileComplete,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

// CreateBlock records a block; repeating an existing block is a no-op
func (r *UserRepo) CreateBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	query := `
		INSERT INTO blocks (blocker_id, blocked_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (blocker_id, blocked_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, blockerID, blockedID); err != nil {
		return fmt.Errorf("failed to create block: %w", err)
	}
	return nil
}

// DeleteBlock removes a block created by blockerID
func (r *UserRepo) DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	query := `DELETE FROM blocks WHERE blocker_id = $1 AND blocked_id = $2`

	result, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	if err != nil {
		return fmt.Errorf("failed to delete block: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return users.ErrBlockNotFound
	}
	return nil
}

// ListBlocks returns the blocks created by blockerID, newest first
func (r *UserRepo) ListBlocks(ctx context.Context, blockerID uuid.UUID) ([]models.Block, error) {
	query := `
		SELECT blocker_id, blocked_id, created_at
		FROM blocks
		WHERE blocker_id = $1
		ORDER BY created_at DESC`

	var blocks []models.Block
	if err := r.db.SelectContext(ctx, &blocks, query, blockerID); err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	return blocks, nil
}

// CreateReview inserts a review row
func (r *UserRepo) CreateReview(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (
			review_id, ride_id, reviewer_id, reviewee_id, rating, comment, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())`

	_, err := r.db.ExecContext(ctx, query,
		review.ReviewID,
		review.RideID,
		review.ReviewerID,
		review.RevieweeID,
		review.Rating,
		review.Comment,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ReviewExists reports whether reviewerID already reviewed someone for
// the given ride
func (r *UserRepo) ReviewExists(ctx context.Context, reviewerID, rideID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reviews
			WHERE reviewer_id = $1 AND ride_id = $2
		)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, reviewerID, rideID); err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return exists, nil
}

// ListReviewsForUser returns the reviews received by revieweeID, newest
// first
func (r *UserRepo) ListReviewsForUser(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error) {
	query := `
		SELECT review_id, ride_id, reviewer_id, reviewee_id, rating, comment, created_at
		FROM reviews
		WHERE reviewee_id = $1
		ORDER BY created_at DESC`

	var reviews []models.Review
	if err := r.db.SelectContext(ctx, &reviews, query, revieweeID); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// HasCompletedRideTogether reports whether userA and userB both took part
// in the given ride after it completed. A participant is the ride's
// driver or a passenger whose booking on the ride reached completed.
func (r *UserRepo) HasCompletedRideTogether(ctx context.Context, rideID, userA, userB uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM rides r
			WHERE r.ride_id = $1
			  AND r.status = 'completed'
			  AND ($2 = r.driver_id OR EXISTS (
					SELECT 1 FROM bookings b
					WHERE b.ride_id = r.ride_id
					  AND b.passenger_id = $2
					  AND b.status = 'completed'))
			  AND ($3 = r.driver_id OR EXISTS (
					SELECT 1 FROM bookings b
					WHERE b.ride_id = r.ride_id
					  AND b.passenger_id = $3
					  AND b.status = 'completed'))
		)`

	var eligible bool
	if err := r.db.GetContext(ctx, &eligible, query, rideID, userA, userB); err != nil {
		return false, fmt.Errorf("failed to check ride participation: %w", err)
	}
	return eligible, nil
}
