package services

import (
	"testing"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"

	"github.com/stretchr/testify/assert"
)

func TestCanMutateRoom(t *testing.T) {
	room := &models.Room{OwnerID: 7}

	assert.True(t, CanMutateRoom(&models.User{ID: 7, Role: constants.RoleOwner}, room))
	assert.True(t, CanMutateRoom(&models.User{ID: 1, Role: constants.RoleAdmin}, room))
	assert.False(t, CanMutateRoom(&models.User{ID: 9, Role: constants.RoleOwner}, room))
	assert.False(t, CanMutateRoom(nil, room))
}

func TestBookingPolicies(t *testing.T) {
	booking := &models.Booking{StudentID: 3, OwnerID: 7}

	assert.True(t, CanCancelBooking(&models.User{ID: 3}, booking))
	assert.False(t, CanCancelBooking(&models.User{ID: 7}, booking))

	assert.True(t, CanDecideBooking(&models.User{ID: 7}, booking))
	assert.False(t, CanDecideBooking(&models.User{ID: 3}, booking))
}
