package geo

import (
	"testing"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	t.Run("ZeroDistanceForSamePoint", func(t *testing.T) {
		d := Haversine(22.7225, 88.4821, 22.7225, 88.4821)
		assert.Zero(t, d)
	})

	t.Run("OneDegreeLatitude", func(t *testing.T) {
		// One degree of latitude is about 111.2 km everywhere
		d := Haversine(22.0, 88.0, 23.0, 88.0)
		assert.InDelta(t, 111.2, d, 1.2)
	})

	t.Run("Symmetric", func(t *testing.T) {
		a := Haversine(22.7225, 88.4821, 22.65, 88.43)
		b := Haversine(22.65, 88.43, 22.7225, 88.4821)
		assert.InDelta(t, a, b, 1e-9)
	})
}

func TestDistanceFromCampus(t *testing.T) {
	assert.Zero(t, DistanceFromCampus(constants.CampusLatitude, constants.CampusLongitude))

	d := DistanceFromCampus(constants.CampusLatitude+0.01, constants.CampusLongitude)
	assert.InDelta(t, 1.11, d, 0.05)
}

func TestWithinRadius(t *testing.T) {
	campusLat, campusLng := constants.CampusLatitude, constants.CampusLongitude

	// ~1.2 km north of campus
	nearLat := campusLat + 1.2/111.2

	assert.True(t, WithinRadius(campusLat, campusLng, nearLat, campusLng, 3))
	assert.False(t, WithinRadius(campusLat, campusLng, nearLat, campusLng, 1))
}
