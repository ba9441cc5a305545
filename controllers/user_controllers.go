package controllers

import (
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/response"
	"github.com/bwubca23694-eng/Brainware-Rooms/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users    *services.UserService
	userRepo repository.UserRepository
}

func NewUserController(users *services.UserService, userRepo repository.UserRepository) *UserController {
	return &UserController{users: users, userRepo: userRepo}
}

// SaveRoom handles POST /api/users/saved-rooms/:id
func (ctrl *UserController) SaveRoom(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	roomID, err := idParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	user, err := ctrl.users.SaveRoom(c.Request.Context(), caller, roomID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"savedRooms": user.SavedRoomIDs})
}

// UnsaveRoom handles DELETE /api/users/saved-rooms/:id
func (ctrl *UserController) UnsaveRoom(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	roomID, err := idParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	user, err := ctrl.users.UnsaveRoom(c.Request.Context(), caller, roomID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"savedRooms": user.SavedRoomIDs})
}

// SavedRooms handles GET /api/users/saved-rooms
func (ctrl *UserController) SavedRooms(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	rooms, err := ctrl.users.SavedRooms(c.Request.Context(), caller)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"rooms": rooms})
}
