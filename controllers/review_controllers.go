package controllers

import (
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/response"
	"github.com/bwubca23694-eng/Brainware-Rooms/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews  *services.ReviewService
	userRepo repository.UserRepository
}

func NewReviewController(reviews *services.ReviewService, userRepo repository.UserRepository) *ReviewController {
	return &ReviewController{reviews: reviews, userRepo: userRepo}
}

// Add handles POST /api/rooms/:id/reviews
func (ctrl *ReviewController) Add(c *gin.Context) {
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

	var input dto.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := ctrl.reviews.AddReview(c.Request.Context(), caller, roomID, &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, gin.H{"review": review})
}

// List handles GET /api/rooms/:id/reviews
func (ctrl *ReviewController) List(c *gin.Context) {
	roomID, err := idParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	reviews, err := ctrl.reviews.RoomReviews(c.Request.Context(), roomID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"reviews": reviews})
}
