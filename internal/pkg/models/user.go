package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a community member profile
type User struct {
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	Email           string    `json:"email" db:"email"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	FirstName       string    `json:"first_name" db:"first_name"`
	LastName        string    `json:"last_name" db:"last_name"`
	Bio             string    `json:"bio" db:"bio"`
	ProfileComplete bool      `json:"profile_complete" db:"profile_complete"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the name used in notification text
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return "A community member"
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful registration or login
type AuthResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
}

// ProfileUpdateRequest is the payload for profile updates
type ProfileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// BlockRequest is the payload for blocking a user
type BlockRequest struct {
	UserID string `json:"user_id"`
}

// Block represents one user blocking another
type Block struct {
	BlockerID uuid.UUID `json:"blocker_id" db:"blocker_id"`
	BlockedID uuid.UUID `json:"blocked_id" db:"blocked_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Review represents a ride-scoped review between participants
type Review struct {
	ReviewID   uuid.UUID `json:"review_id" db:"review_id"`
	RideID     uuid.UUID `json:"ride_id" db:"ride_id"`
	ReviewerID uuid.UUID `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID uuid.UUID `json:"reviewee_id" db:"reviewee_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ReviewRequest is the payload for creating a review
type ReviewRequest struct {
	RideID     string `json:"ride_id"`
	RevieweeID string `json:"reviewee_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}
