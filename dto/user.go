package dto

import "github.com/bwubca23694-eng/Brainware-Rooms/models"

// RegisterInput is the signup payload
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`

	// Student specific
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Year       string `json:"year"`

	// Owner specific
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
}

// LoginInput is the credential payload
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthInput carries a Google ID token
type GoogleAuthInput struct {
	Credential string `json:"credential"`
}

// AuthResult pairs a signed token with its user
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AdminUserQuery filters the admin user list
type AdminUserQuery struct {
	Role   string `form:"role"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// AdminUserUpdate is the admin's partial user edit
type AdminUserUpdate struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	Role            *string `json:"role"`
	IsActive        *bool   `json:"isActive"`
	IsOwnerApproved *bool   `json:"isOwnerApproved"`
}
