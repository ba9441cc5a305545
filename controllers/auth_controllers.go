package controllers

import (
	"github.com/bwubca23694-eng/Brainware-Rooms/dto"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/response"
	"github.com/bwubca23694-eng/Brainware-Rooms/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users    *services.UserService
	userRepo repository.UserRepository
}

func NewAuthController(users *services.UserService, userRepo repository.UserRepository) *AuthController {
	return &AuthController{users: users, userRepo: userRepo}
}

// Register handles POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := ctrl.users.Register(c.Request.Context(), &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, gin.H{"token": result.Token, "user": result.User})
}

// Login handles POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := ctrl.users.Login(c.Request.Context(), &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"token": result.Token, "user": result.User})
}

// GoogleAuth handles POST /api/auth/google
func (ctrl *AuthController) GoogleAuth(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Credential == "" {
		response.BadRequest(c, "Missing Google credential")
		return
	}

	result, err := ctrl.users.GoogleAuth(c.Request.Context(), &input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"token": result.Token, "user": result.User})
}

// Me handles GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	caller, err := callerFromContext(c, ctrl.userRepo)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"user": caller})
}
