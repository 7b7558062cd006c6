package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations. The
// repository owns both the Postgres rows and the Redis geo index entry
// for each active ride; callers never touch the index directly.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rickeev/RideShareTahoe-sub001/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetRides(ctx context.Context, rideIDs []uuid.UUID) ([]models.Ride, error)

	CancelRide(ctx context.Context, rideID uuid.UUID) error
	CompleteRide(ctx context.Context, rideID uuid.UUID) error

	SearchNearby(ctx context.Context, origin models.Location, radiusKm float64) ([]models.GeoMatch, error)
	BlockedUserIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
}
