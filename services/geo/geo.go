// Package geo evaluates great-circle distances for listing search.
package geo

import (
	"math"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometers between two
// (lat, lng) points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceFromCampus returns the distance in km from a point to the campus
// reference coordinate. Persisted once on the listing at creation.
func DistanceFromCampus(lat, lng float64) float64 {
	return Haversine(lat, lng, constants.CampusLatitude, constants.CampusLongitude)
}

// WithinRadius reports whether the two points lie within radiusKm of each
// other. Radius comparisons are meter-based to match the stored queries
// (radius_km x 1000).
func WithinRadius(lat1, lng1, lat2, lng2, radiusKm float64) bool {
	return Haversine(lat1, lng1, lat2, lng2)*1000 <= radiusKm*1000
}
