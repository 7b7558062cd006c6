package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/rickeev/RideShareTahoe-sub001/internal/pkg/models"
)

// EncodeLocation converts a location to a geohash cell string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// NeighborCells returns the geohash cell and its eight neighbors,
// covering the area around a point at the cell's precision
func NeighborCells(location models.Location, precision uint) []string {
	center := EncodeLocation(location, precision)
	return append([]string{center}, geohash.Neighbors(center)...)
}

// CalculateDistanceKm calculates the great-circle distance between two
// points in kilometers using the Haversine formula
func CalculateDistanceKm(a, b models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
