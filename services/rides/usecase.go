package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rickeev/RideShareTahoe-sub001/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, driverID uuid.UUID, req models.RideCreateRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	SearchRides(ctx context.Context, callerID uuid.UUID, req models.RideSearchRequest) ([]models.RideSearchResult, error)
	CancelRide(ctx context.Context, driverID, rideID uuid.UUID) error
	CompleteRide(ctx context.Context, driverID, rideID uuid.UUID) error
}
