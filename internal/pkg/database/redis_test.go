package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	// Arrange
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		PoolSize: 10,
	}

	// Act
	client, err := NewRedisClient(config)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetAndGet(t *testing.T) {
	// Arrange
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}
	ctx := context.Background()

	mock.ExpectSet("ratelimit:user-1", "3", time.Minute).SetVal("OK")
	mock.ExpectGet("ratelimit:user-1").SetVal("3")

	// Act
	err := client.Set(ctx, "ratelimit:user-1", "3", time.Minute)
	require.NoError(t, err)

	value, err := client.Get(ctx, "ratelimit:user-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "3", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get_MissingKey(t *testing.T) {
	// Arrange
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectGet("ratelimit:missing").SetErr(redis.Nil)

	// Act
	value, err := client.Get(context.Background(), "ratelimit:missing")

	// Assert
	assert.Error(t, err)
	assert.Empty(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Delete(t *testing.T) {
	// Arrange
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectDel("ratelimit:user-1").SetVal(1)

	// Act
	err := client.Delete(context.Background(), "ratelimit:user-1")

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAddAndRadius(t *testing.T) {
	// Arrange
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}
	ctx := context.Background()

	key := "rides:geo"
	longitude := -120.0324
	latitude := 39.0968
	rideID := "4b4f9a1e-6a5f-4e2a-9f1d-1c2e3d4f5a6b"

	mock.ExpectGeoAdd(key, &redis.GeoLocation{
		Longitude: longitude,
		Latitude:  latitude,
		Name:      rideID,
	}).SetVal(1)

	mock.ExpectGeoRadius(key, longitude, latitude, &redis.GeoRadiusQuery{
		Radius:    10.0,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}).SetVal([]redis.GeoLocation{
		{Name: rideID, Longitude: longitude, Latitude: latitude, Dist: 0},
	})

	// Act
	err := client.GeoAdd(ctx, key, longitude, latitude, rideID)
	require.NoError(t, err)

	locations, err := client.GeoRadius(ctx, key, longitude, latitude, 10.0, "km")

	// Assert
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, rideID, locations[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRadius_Error(t *testing.T) {
	// Arrange
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectGeoRadius("rides:geo", -120.0, 39.0, &redis.GeoRadiusQuery{
		Radius:    10.0,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}).SetErr(redis.Nil)

	// Act
	locations, err := client.GeoRadius(context.Background(), "rides:geo", -120.0, 39.0, 10.0, "km")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, locations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_ZRem(t *testing.T) {
	// Arrange
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectZRem("rides:geo", "ride-gone").SetVal(1)

	// Act
	err := client.ZRem(context.Background(), "rides:geo", "ride-gone")

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
