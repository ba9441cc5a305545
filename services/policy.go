package services

import (
	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
)

// Entity-level capability checks. Route-level role gating happens in the
// auth middleware; everything finer-grained funnels through here so no
// handler re-implements an ownership comparison.

// CanMutateRoom: the listing's owner or an admin may edit or delete it
func CanMutateRoom(caller *models.User, room *models.Room) bool {
	if caller == nil {
		return false
	}
	return caller.Role == constants.RoleAdmin || room.OwnerID == caller.ID
}

// CanCancelBooking: only the requesting student may cancel
func CanCancelBooking(caller *models.User, booking *models.Booking) bool {
	return caller != nil && booking.StudentID == caller.ID
}

// CanDecideBooking: only the listing's owner may confirm/reject/complete
func CanDecideBooking(caller *models.User, booking *models.Booking) bool {
	return caller != nil && booking.OwnerID == caller.ID
}

// IsAdmin reports whether the caller holds the admin role
func IsAdmin(caller *models.User) bool {
	return caller != nil && caller.Role == constants.RoleAdmin
}
