package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/internal/utils"
	"github.com/rickeev/RideShareTahoe-sub001/services/rides"
)

type rideUC struct {
	cfg  *models.Config
	repo rides.RideRepo
}

// NewRideUC creates a new ride usecase
func NewRideUC(cfg *models.Config, repo rides.RideRepo) rides.RideUC {
	return &rideUC{
		cfg:  cfg,
		repo: repo,
	}
}

// CreateRide validates and persists a new active ride offered by driverID.
// Seat-tracked rides start with available_seats equal to total_seats;
// unlimited rides carry a null seat counter and never reject bookings for
// capacity.
func (uc *rideUC) CreateRide(ctx context.Context, driverID uuid.UUID, req models.RideCreateRequest) (*models.Ride, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	ride := &models.Ride{
		RideID:        uuid.New(),
		DriverID:      driverID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		OriginGeohash: utils.EncodeLocation(req.Origin, uc.cfg.Rides.GeohashPrecision),
		DepartureTime: req.DepartureTime,
		TotalSeats:    req.TotalSeats,
		Notes:         req.Notes,
		Status:        models.RideStatusActive,
	}
	if !req.Unlimited {
		seats := req.TotalSeats
		ride.AvailableSeats = &seats
	}

	if err := uc.repo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	logger.Info("ride created",
		logger.String("ride_id", ride.RideID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Bool("unlimited", req.Unlimited))

	return ride, nil
}

// GetRide fetches a single ride by ID.
func (uc *rideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.repo.GetRide(ctx, rideID)
}

// SearchRides returns active rides whose origin lies within the requested
// radius of the search point, ordered by distance. Full rides and rides
// offered by users in a block relationship with the caller are filtered
// out.
func (uc *rideUC) SearchRides(ctx context.Context, callerID uuid.UUID, req models.RideSearchRequest) ([]models.RideSearchResult, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, rides.ErrValidation
	}

	radius := req.RadiusKm
	if radius <= 0 {
		radius = uc.cfg.Rides.DefaultSearchRadiusKm
	}
	if radius > uc.cfg.Rides.MaxSearchRadiusKm {
		radius = uc.cfg.Rides.MaxSearchRadiusKm
	}

	origin := models.Location{Latitude: req.Latitude, Longitude: req.Longitude}
	matches, err := uc.repo.SearchNearby(ctx, origin, radius)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return []models.RideSearchResult{}, nil
	}

	blocked, err := uc.repo.BlockedUserIDs(ctx, callerID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(matches))
	distances := make(map[uuid.UUID]float64, len(matches))
	for _, m := range matches {
		ids = append(ids, m.RideID)
		distances[m.RideID] = m.DistanceKm
	}

	found, err := uc.repo.GetRides(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Ride, len(found))
	for _, ride := range found {
		byID[ride.RideID] = ride
	}

	// Preserve the distance ordering from the geo index.
	results := make([]models.RideSearchResult, 0, len(matches))
	for _, m := range matches {
		ride, ok := byID[m.RideID]
		if !ok {
			// Stale index entry, the ride row is gone.
			continue
		}
		if ride.Status != models.RideStatusActive {
			continue
		}
		if ride.TracksSeats() && *ride.AvailableSeats <= 0 {
			continue
		}
		if blocked[ride.DriverID] {
			continue
		}
		results = append(results, models.RideSearchResult{
			Ride:       ride,
			DistanceKm: m.DistanceKm,
		})
	}

	return results, nil
}

// CancelRide cancels an active ride. Only the driver may cancel; the geo
// index entry is removed so the ride stops appearing in searches.
func (uc *rideUC) CancelRide(ctx context.Context, driverID, rideID uuid.UUID) error {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID != driverID {
		return rides.ErrNotRideDriver
	}
	if ride.Status != models.RideStatusActive {
		return rides.ErrRideNotActive
	}

	if err := uc.repo.CancelRide(ctx, rideID); err != nil {
		return err
	}

	logger.Info("ride cancelled",
		logger.String("ride_id", rideID.String()),
		logger.String("driver_id", driverID.String()))
	return nil
}

// CompleteRide marks a ride completed after its departure time has passed.
// Confirmed bookings on the ride move to completed in the same transaction
// so review eligibility opens for every passenger at once.
func (uc *rideUC) CompleteRide(ctx context.Context, driverID, rideID uuid.UUID) error {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID != driverID {
		return rides.ErrNotRideDriver
	}
	if ride.Status != models.RideStatusActive {
		return rides.ErrRideNotActive
	}
	if time.Now().Before(ride.DepartureTime) {
		return rides.ErrDepartureNotYet
	}

	if err := uc.repo.CompleteRide(ctx, rideID); err != nil {
		return err
	}

	logger.Info("ride completed",
		logger.String("ride_id", rideID.String()),
		logger.String("driver_id", driverID.String()))
	return nil
}

func validateCreateRequest(req models.RideCreateRequest) error {
	if req.Origin.Latitude < -90 || req.Origin.Latitude > 90 ||
		req.Origin.Longitude < -180 || req.Origin.Longitude > 180 {
		return rides.ErrValidation
	}
	if req.Destination.Latitude < -90 || req.Destination.Latitude > 90 ||
		req.Destination.Longitude < -180 || req.Destination.Longitude > 180 {
		return rides.ErrValidation
	}
	if req.DepartureTime.Before(time.Now()) {
		return rides.ErrValidation
	}
	if req.TotalSeats < 1 {
		return rides.ErrValidation
	}
	return nil
}
