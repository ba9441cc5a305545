package controllers

import (
	"strconv"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/response"
	"github.com/bwubca23694-eng/Brainware-Rooms/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	rooms      *services.RoomService
	users      *services.UserService
	bookings   *services.BookingService
	dashboards *services.DashboardService
}

func NewAdminController(rooms *services.RoomService, users *services.UserService,
	bookings *services.BookingService, dashboards *services.DashboardService) *AdminController {
	return &AdminController{rooms: rooms, users: users, bookings: bookings, dashboards: dashboards}
}

// Dashboard handles GET /api/admin/dashboard
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	dashboard, err := ctrl.dashboards.AdminDashboard(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{
		"stats":          dashboard.Stats,
		"recentRooms":    dashboard.RecentRooms,
		"recentBookings": dashboard.RecentBookings,
		"monthlyStats":   dashboard.MonthlyStats,
	})
}

// ListUsers handles GET /api/admin/users
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	var q dto.AdminUserQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	users, total, err := ctrl.users.ListUsers(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"users": users, "total": total})
}

// UpdateUser handles PUT /api/admin/users/:id
func (ctrl *AdminController) UpdateUser(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	var input dto.AdminUserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := ctrl.users.AdminUpdateUser(c.Request.Context(), id, &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// DeleteUser handles DELETE /api/admin/users/:id
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := ctrl.users.AdminDeleteUser(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "User deleted"})
}

// ApproveOwner handles PUT /api/admin/users/:id/approve-owner
func (ctrl *AdminController) ApproveOwner(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	approved := true
	user, err := ctrl.users.AdminUpdateUser(c.Request.Context(), id, &dto.AdminUserUpdate{IsOwnerApproved: &approved})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// ListRooms handles GET /api/admin/rooms; defaults to the pending queue
func (ctrl *AdminController) ListRooms(c *gin.Context) {
	status := c.DefaultQuery("status", constants.RoomStatusPending)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	rooms, total, err := ctrl.rooms.RoomsByStatus(c.Request.Context(), status, page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"rooms": rooms, "total": total})
}

// PendingRooms handles GET /api/admin/rooms/pending
func (ctrl *AdminController) PendingRooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	rooms, total, err := ctrl.rooms.RoomsByStatus(c.Request.Context(), constants.RoomStatusPending, page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"rooms": rooms, "total": total})
}

// ReviewRoom handles PUT /api/admin/rooms/:id/review
func (ctrl *AdminController) ReviewRoom(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	var input dto.AdminRoomReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := ctrl.rooms.ReviewListing(c.Request.Context(), id, &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"room": room})
}

// ListBookings handles GET /api/admin/bookings
func (ctrl *AdminController) ListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	bookings, err := ctrl.bookings.RecentBookings(c.Request.Context(), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"bookings": bookings})
}
