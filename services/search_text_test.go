package services

import (
	"testing"

	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearchTerm(t *testing.T) {
	assert.Equal(t, "barasat", NormalizeSearchTerm("  BARASAT "))
	assert.Equal(t, "cafe", NormalizeSearchTerm("Café"))
}

func TestFuzzyEqual(t *testing.T) {
	assert.True(t, fuzzyEqual("barasat", "barasaat"))
	assert.True(t, fuzzyEqual("hostel", "hostel"))
	assert.False(t, fuzzyEqual("barasat", "madhyamgram"))
	assert.False(t, fuzzyEqual("", "barasat"))
}

func TestRankRoomsByQuery(t *testing.T) {
	rooms := []models.Room{
		{Title: "Budget stay", Description: "simple", Address: models.Address{Area: "Madhyamgram"}},
		{Title: "Deluxe hostel room", Description: "near gate", Address: models.Address{Area: "Barasat"}},
	}

	RankRoomsByQuery("hostel", rooms)
	assert.Equal(t, "Deluxe hostel room", rooms[0].Title)

	// Empty query leaves the order alone
	RankRoomsByQuery("  ", rooms)
	assert.Equal(t, "Deluxe hostel room", rooms[0].Title)
}
