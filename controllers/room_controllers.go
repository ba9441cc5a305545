package controllers

import (
	"strconv"

	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/response"
	"github.com/bwubca23694-eng/Brainware-Rooms/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	rooms    *services.RoomService
	userRepo repository.UserRepository
}

func NewRoomController(rooms *services.RoomService, userRepo repository.UserRepository) *RoomController {
	return &RoomController{rooms: rooms, userRepo: userRepo}
}

// List handles GET /api/rooms
func (ctrl *RoomController) List(c *gin.Context) {
	var filters dto.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := ctrl.rooms.Search(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{
		"rooms":       result.Rooms,
		"total":       result.Total,
		"pages":       result.Pages,
		"currentPage": result.CurrentPage,
	})
}

// Nearby handles GET /api/rooms/nearby
func (ctrl *RoomController) Nearby(c *gin.Context) {
	lat := queryFloat(c, "lat")
	lng := queryFloat(c, "lng")
	radius := queryFloat(c, "radius")

	rooms, err := ctrl.rooms.Nearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"rooms": rooms})
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Detail handles GET /api/rooms/:id
func (ctrl *RoomController) Detail(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	room, reviews, err := ctrl.rooms.Detail(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"room": room, "reviews": reviews})
}

// Create handles POST /api/rooms
func (ctrl *RoomController) Create(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	var input dto.CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := ctrl.rooms.Create(c.Request.Context(), caller, &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, gin.H{"room": room})
}

// Update handles PUT /api/rooms/:id
func (ctrl *RoomController) Update(c *gin.Context) {
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

	var input dto.UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := ctrl.rooms.Update(c.Request.Context(), caller, id, &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"room": room})
}

// Delete handles DELETE /api/rooms/:id
func (ctrl *RoomController) Delete(c *gin.Context) {
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

	if err := ctrl.rooms.Delete(c.Request.Context(), caller, id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Room deleted"})
}
