package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/constants"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/database"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/logger"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/rides"
)

// RideRepo implements the rides.RideRepo interface over Postgres and the
// Redis geo index of active ride origins.
type RideRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRideRepo creates a new ride repository
func NewRideRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *RideRepo {
	return &RideRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

const rideColumns = `ride_id, driver_id,
	origin_latitude, origin_longitude, origin_address,
	destination_latitude, destination_longitude, destination_address,
	origin_geohash, departure_time, total_seats, available_seats,
	notes, status, created_at, updated_at`

// CreateRide inserts a new ride and indexes its origin in the geo set.
// The index write is best effort; a ride missing from the index is still
// reachable by ID, it just will not surface in proximity search.
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			ride_id, driver_id,
			origin_latitude, origin_longitude, origin_address,
			destination_latitude, destination_longitude, destination_address,
			origin_geohash, departure_time, total_seats, available_seats,
			notes, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW()
		)`

	var availableSeats interface{}
	if ride.AvailableSeats != nil {
		availableSeats = *ride.AvailableSeats
	}

	_, err := r.db.ExecContext(ctx, query,
		ride.RideID,
		ride.DriverID,
		ride.Origin.Latitude,
		ride.Origin.Longitude,
		ride.Origin.Address,
		ride.Destination.Latitude,
		ride.Destination.Longitude,
		ride.Destination.Address,
		ride.OriginGeohash,
		ride.DepartureTime,
		ride.TotalSeats,
		availableSeats,
		ride.Notes,
		ride.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyRideGeo,
		ride.Origin.Longitude, ride.Origin.Latitude, ride.RideID.String()); err != nil {
		logger.Warn("failed to index ride origin",
			logger.String("ride_id", ride.RideID.String()),
			logger.Err(err))
	}

	return nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE ride_id = $1`

	ride, err := scanRide(r.db.QueryRowContext(ctx, query, rideID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return ride, nil
}

// GetRides retrieves the rides for the given IDs. Missing IDs are simply
// absent from the result.
func (r *RideRepo) GetRides(ctx context.Context, rideIDs []uuid.UUID) ([]models.Ride, error) {
	if len(rideIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+rideColumns+` FROM rides WHERE ride_id IN (?)`, rideIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build rides query: %w", err)
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get rides: %w", err)
	}
	defer rows.Close()

	var result []models.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ride: %w", err)
		}
		result = append(result, *ride)
	}
	return result, rows.Err()
}

// CancelRide marks an active ride cancelled and drops its geo index entry
func (r *RideRepo) CancelRide(ctx context.Context, rideID uuid.UUID) error {
	query := `
		UPDATE rides
		SET status = $1, updated_at = NOW()
		WHERE ride_id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query,
		models.RideStatusCancelled, rideID, models.RideStatusActive)
	if err != nil {
		return fmt.Errorf("failed to cancel ride: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cancel result: %w", err)
	}
	if rows == 0 {
		return rides.ErrRideNotActive
	}

	r.removeFromGeoIndex(ctx, rideID)
	return nil
}

// CompleteRide marks a ride completed and promotes its confirmed bookings
// to completed in the same transaction.
func (r *RideRepo) CompleteRide(ctx context.Context, rideID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rideQuery := `
		UPDATE rides
		SET status = $1, updated_at = NOW()
		WHERE ride_id = $2 AND status = $3`

	result, err := tx.ExecContext(ctx, rideQuery,
		models.RideStatusCompleted, rideID, models.RideStatusActive)
	if err != nil {
		return fmt.Errorf("failed to complete ride: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check complete result: %w", err)
	}
	if rows == 0 {
		return rides.ErrRideNotActive
	}

	bookingQuery := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE ride_id = $2 AND status = $3`

	if _, err := tx.ExecContext(ctx, bookingQuery,
		models.BookingStatusCompleted, rideID, models.BookingStatusConfirmed); err != nil {
		return fmt.Errorf("failed to complete bookings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.removeFromGeoIndex(ctx, rideID)
	return nil
}

// SearchNearby queries the geo index for ride origins within radiusKm of
// the given point, nearest first
func (r *RideRepo) SearchNearby(ctx context.Context, origin models.Location, radiusKm float64) ([]models.GeoMatch, error) {
	results, err := r.redisClient.GeoRadius(ctx, constants.KeyRideGeo,
		origin.Longitude, origin.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search ride index: %w", err)
	}

	matches := make([]models.GeoMatch, 0, len(results))
	for _, result := range results {
		rideID, err := uuid.Parse(result.Name)
		if err != nil {
			// Foreign member in the geo set, skip it.
			continue
		}
		matches = append(matches, models.GeoMatch{
			RideID:     rideID,
			DistanceKm: result.Dist,
		})
	}
	return matches, nil
}

// BlockedUserIDs returns the set of users in a block relationship with
// userID, in either direction.
func (r *RideRepo) BlockedUserIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	query := `
		SELECT CASE WHEN blocker_id = $1 THEN blocked_id ELSE blocker_id END
		FROM blocks
		WHERE blocker_id = $1 OR blocked_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get blocked users: %w", err)
	}
	defer rows.Close()

	blocked := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan blocked user: %w", err)
		}
		blocked[id] = true
	}
	return blocked, rows.Err()
}

func (r *RideRepo) removeFromGeoIndex(ctx context.Context, rideID uuid.UUID) {
	if err := r.redisClient.ZRem(ctx, constants.KeyRideGeo, rideID.String()); err != nil {
		logger.Warn("failed to remove ride from geo index",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}
}

// scanRide reads one ride row, mapping a null seat counter to a nil
// AvailableSeats.
func scanRide(row interface{ Scan(...interface{}) error }) (*models.Ride, error) {
	ride := &models.Ride{}
	var availableSeats sql.NullInt64
	err := row.Scan(
		&ride.RideID,
		&ride.DriverID,
		&ride.Origin.Latitude,
		&ride.Origin.Longitude,
		&ride.Origin.Address,
		&ride.Destination.Latitude,
		&ride.Destination.Longitude,
		&ride.Destination.Address,
		&ride.OriginGeohash,
		&ride.DepartureTime,
		&ride.TotalSeats,
		&availableSeats,
		&ride.Notes,
		&ride.Status,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if availableSeats.Valid {
		seats := int(availableSeats.Int64)
		ride.AvailableSeats = &seats
	}
	return ride, nil
}
