package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
	"github.com/rickeev/RideShareTahoe-sub001/services/rides"
	"github.com/rickeev/RideShareTahoe-sub001/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRideUC(t *testing.T) (rides.RideUC, *mocks.MockRideRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockRideRepo(ctrl)
	cfg := &models.Config{
		Rides: models.RidesConfig{
			DefaultSearchRadiusKm: 10,
			MaxSearchRadiusKm:     50,
			GeohashPrecision:      6,
		},
	}
	return NewRideUC(cfg, mockRepo), mockRepo
}

func TestCreateRide_SeatTracked(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestRideUC(t)

	driverID := uuid.New()
	req := models.RideCreateRequest{
		Origin:        models.Location{Latitude: 39.09, Longitude: -120.03, Address: "Tahoe City"},
		Destination:   models.Location{Latitude: 39.32, Longitude: -120.18, Address: "Truckee"},
		DepartureTime: time.Now().Add(2 * time.Hour),
		TotalSeats:    3,
	}

	mockRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) error {
			assert.Equal(t, driverID, ride.DriverID)
			assert.Equal(t, models.RideStatusActive, ride.Status)
			assert.NotEmpty(t, ride.OriginGeohash)
			require.NotNil(t, ride.AvailableSeats)
			assert.Equal(t, 3, *ride.AvailableSeats)
			return nil
		})

	// Act
	ride, err := uc.CreateRide(context.Background(), driverID, req)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, ride)
	assert.True(t, ride.TracksSeats())
}

func TestCreateRide_UnlimitedHasNilSeatCounter(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestRideUC(t)

	req := models.RideCreateRequest{
		Origin:        models.Location{Latitude: 39.09, Longitude: -120.03},
		Destination:   models.Location{Latitude: 39.32, Longitude: -120.18},
		DepartureTime: time.Now().Add(time.Hour),
		TotalSeats:    4,
		Unlimited:     true,
	}

	mockRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) error {
			assert.Nil(t, ride.AvailableSeats)
			return nil
		})

	// Act
	ride, err := uc.CreateRide(context.Background(), uuid.New(), req)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, ride)
	assert.False(t, ride.TracksSeats())
}

func TestCreateRide_RejectsPastDeparture(t *testing.T) {
	// Arrange
	uc, _ := newTestRideUC(t)

	req := models.RideCreateRequest{
		Origin:        models.Location{Latitude: 39.09, Longitude: -120.03},
		Destination:   models.Location{Latitude: 39.32, Longitude: -120.18},
		DepartureTime: time.Now().Add(-time.Hour),
		TotalSeats:    3,
	}

	// Act
	ride, err := uc.CreateRide(context.Background(), uuid.New(), req)

	// Assert
	assert.ErrorIs(t, err, rides.ErrValidation)
	assert.Nil(t, ride)
}

func TestCreateRide_RejectsInvalidCoordinates(t *testing.T) {
	// Arrange
	uc, _ := newTestRideUC(t)

	req := models.RideCreateRequest{
		Origin:        models.Location{Latitude: 91, Longitude: -120.03},
		Destination:   models.Location{Latitude: 39.32, Longitude: -120.18},
		DepartureTime: time.Now().Add(time.Hour),
		TotalSeats:    3,
	}

	// Act
	ride, err := uc.CreateRide(context.Background(), uuid.New(), req)

	// Assert
	assert.ErrorIs(t, err, rides.ErrValidation)
	assert.Nil(t, ride)
}

func TestSearchRides_FiltersFullInactiveAndBlocked(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestRideUC(t)

	callerID := uuid.New()
	blockedDriver := uuid.New()

	okSeats := 2
	okRide := models.Ride{RideID: uuid.New(), DriverID: uuid.New(), AvailableSeats: &okSeats, Status: models.RideStatusActive}
	fullSeats := 0
	fullRide := models.Ride{RideID: uuid.New(), DriverID: uuid.New(), AvailableSeats: &fullSeats, Status: models.RideStatusActive}
	cancelledRide := models.Ride{RideID: uuid.New(), DriverID: uuid.New(), Status: models.RideStatusCancelled}
	blockedRide := models.Ride{RideID: uuid.New(), DriverID: blockedDriver, Status: models.RideStatusActive}

	matches := []models.GeoMatch{
		{RideID: okRide.RideID, DistanceKm: 1.2},
		{RideID: fullRide.RideID, DistanceKm: 2.5},
		{RideID: cancelledRide.RideID, DistanceKm: 3.1},
		{RideID: blockedRide.RideID, DistanceKm: 4.0},
	}

	mockRepo.EXPECT().SearchNearby(gomock.Any(), gomock.Any(), 10.0).Return(matches, nil)
	mockRepo.EXPECT().BlockedUserIDs(gomock.Any(), callerID).
		Return(map[uuid.UUID]bool{blockedDriver: true}, nil)
	mockRepo.EXPECT().GetRides(gomock.Any(), gomock.Any()).
		Return([]models.Ride{okRide, fullRide, cancelledRide, blockedRide}, nil)

	// Act
	results, err := uc.SearchRides(context.Background(), callerID, models.RideSearchRequest{
		Latitude:  39.09,
		Longitude: -120.03,
	})

	// Assert
	assert.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, okRide.RideID, results[0].Ride.RideID)
	assert.Equal(t, 1.2, results[0].DistanceKm)
}

func TestSearchRides_RadiusIsClamped(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestRideUC(t)

	mockRepo.EXPECT().SearchNearby(gomock.Any(), gomock.Any(), 50.0).
		Return([]models.GeoMatch{}, nil)

	// Act
	results, err := uc.SearchRides(context.Background(), uuid.New(), models.RideSearchRequest{
		Latitude:  39.09,
		Longitude: -120.03,
		RadiusKm:  500,
	})

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestCancelRide_DriverOnly(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestRideUC(t)

	driverID := uuid.New()
	ride := &models.Ride{RideID: uuid.New(), DriverID: driverID, Status: models.RideStatusActive}

	mockRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

	// Act
	err := uc.CancelRide(context.Background(), uuid.New(), ride.RideID)

	// Assert
	assert.ErrorIs(t, err, rides.ErrNotRideDriver)
}

func TestCancelRide_Success(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestRideUC(t)

	driverID := uuid.New()
	ride := &models.Ride{RideID: uuid.New(), DriverID: driverID, Status: models.RideStatusActive}

	mockRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	mockRepo.EXPECT().CancelRide(gomock.Any(), ride.RideID).Return(nil)

	// Act
	err := uc.CancelRide(context.Background(), driverID, ride.RideID)

	// Assert
	assert.NoError(t, err)
}

func TestCompleteRide_BeforeDepartureIsRejected(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestRideUC(t)

	driverID := uuid.New()
	ride := &models.Ride{
		RideID:        uuid.New(),
		DriverID:      driverID,
		Status:        models.RideStatusActive,
		DepartureTime: time.Now().Add(time.Hour),
	}

	mockRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

	// Act
	err := uc.CompleteRide(context.Background(), driverID, ride.RideID)

	// Assert
	assert.ErrorIs(t, err, rides.ErrDepartureNotYet)
}

func TestCompleteRide_AfterDeparture(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestRideUC(t)

	driverID := uuid.New()
	ride := &models.Ride{
		RideID:        uuid.New(),
		DriverID:      driverID,
		Status:        models.RideStatusActive,
		DepartureTime: time.Now().Add(-time.Hour),
	}

	mockRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	mockRepo.EXPECT().CompleteRide(gomock.Any(), ride.RideID).Return(nil)

	// Act
	err := uc.CompleteRide(context.Background(), driverID, ride.RideID)

	// Assert
	assert.NoError(t, err)
}

func TestCompleteRide_AlreadyCompletedIsRejected(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestRideUC(t)

	driverID := uuid.New()
	ride := &models.Ride{
		RideID:        uuid.New(),
		DriverID:      driverID,
		Status:        models.RideStatusCompleted,
		DepartureTime: time.Now().Add(-time.Hour),
	}

	mockRepo.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

	// Act
	err := uc.CompleteRide(context.Background(), driverID, ride.RideID)

	// Assert
	assert.ErrorIs(t, err, rides.ErrRideNotActive)
}
