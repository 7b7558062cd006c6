package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusCancelled RideStatus = "cancelled"
	RideStatusCompleted RideStatus = "completed"
)

// Ride represents a driver-offered ride.
// AvailableSeats is nil when the ride does not track capacity (unlimited).
type Ride struct {
	RideID         uuid.UUID  `json:"ride_id" db:"ride_id"`
	DriverID       uuid.UUID  `json:"driver_id" db:"driver_id"`
	Origin         Location   `json:"origin"`
	Destination    Location   `json:"destination"`
	OriginGeohash  string     `json:"-" db:"origin_geohash"`
	DepartureTime  time.Time  `json:"departure_time" db:"departure_time"`
	TotalSeats     int        `json:"total_seats" db:"total_seats"`
	AvailableSeats *int       `json:"available_seats" db:"available_seats"`
	Notes          string     `json:"notes" db:"notes"`
	Status         RideStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// TracksSeats reports whether the ride maintains a seat counter
func (r *Ride) TracksSeats() bool {
	return r.AvailableSeats != nil
}

// RideCreateRequest is the payload for creating a ride
type RideCreateRequest struct {
	Origin        Location  `json:"origin"`
	Destination   Location  `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	TotalSeats    int       `json:"total_seats"`
	Unlimited     bool      `json:"unlimited"`
	Notes         string    `json:"notes"`
}

// RideSearchRequest is the payload for proximity ride search
type RideSearchRequest struct {
	Latitude  float64 `query:"lat"`
	Longitude float64 `query:"lng"`
	RadiusKm  float64 `query:"radius_km"`
}

// GeoMatch is a raw hit from the ride geo index
type GeoMatch struct {
	RideID     uuid.UUID
	DistanceKm float64
}

// RideSearchResult is a ride annotated with its distance from the search point
type RideSearchResult struct {
	Ride       Ride    `json:"ride"`
	DistanceKm float64 `json:"distance_km"`
}
