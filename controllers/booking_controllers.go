package controllers

import (
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/response"
	"github.com/bwubca23694-eng/Brainware-Rooms/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings *services.BookingService
	userRepo repository.UserRepository
}

func NewBookingController(bookings *services.BookingService, userRepo repository.UserRepository) *BookingController {
	return &BookingController{bookings: bookings, userRepo: userRepo}
}

// Create handles POST /api/bookings/room/:roomId
func (ctrl *BookingController) Create(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	roomID, err := idParam(c, "roomId")
	if err != nil {
		response.FromError(c, err)
		return
	}

	var input dto.BookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	booking, err := ctrl.bookings.CreateBooking(c.Request.Context(), caller, roomID, &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, gin.H{"booking": booking})
}

// My handles GET /api/bookings/my
func (ctrl *BookingController) My(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	bookings, err := ctrl.bookings.MyBookings(c.Request.Context(), caller.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"bookings": bookings})
}

// Owner handles GET /api/bookings/owner
func (ctrl *BookingController) Owner(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	bookings, err := ctrl.bookings.OwnerBookings(c.Request.Context(), caller.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"bookings": bookings})
}

// Cancel handles PUT /api/bookings/:id/cancel
func (ctrl *BookingController) Cancel(c *gin.Context) {
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

	booking, err := ctrl.bookings.CancelBooking(c.Request.Context(), caller, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"booking": booking})
}

// UpdateStatus handles PUT /api/bookings/:id/status
func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
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

	var input dto.BookingStatusUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	booking, err := ctrl.bookings.UpdateStatus(c.Request.Context(), caller, id, &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"booking": booking})
}
