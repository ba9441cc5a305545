package controllers

import (
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/response"
	"github.com/bwubca23694-eng/Brainware-Rooms/services"

	"github.com/gin-gonic/gin"
)

type OwnerController struct {
	rooms      *services.RoomService
	dashboards *services.DashboardService
	userRepo   repository.UserRepository
}

func NewOwnerController(rooms *services.RoomService, dashboards *services.DashboardService,
	userRepo repository.UserRepository) *OwnerController {
	return &OwnerController{rooms: rooms, dashboards: dashboards, userRepo: userRepo}
}

// Dashboard handles GET /api/owner/dashboard
func (ctrl *OwnerController) Dashboard(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	dashboard, err := ctrl.dashboards.OwnerDashboard(c.Request.Context(), caller.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"stats": dashboard.Stats, "rooms": dashboard.Rooms})
}

// MyRooms handles GET /api/owner/rooms
func (ctrl *OwnerController) MyRooms(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	rooms, err := ctrl.rooms.OwnerRooms(c.Request.Context(), caller.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"rooms": rooms})
}

// ToggleAvailability handles PUT /api/owner/rooms/:id/toggle-availability
func (ctrl *OwnerController) ToggleAvailability(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	id, err := idParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	room, err := ctrl.rooms.ToggleAvailability(c.Request.Context(), caller, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"room": room})
}
