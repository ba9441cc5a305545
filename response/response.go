package response

import (
	"net/http"

	apperrors "github.com/bwubca23694-eng/Brainware-Rooms/errors"

	"github.com/gin-gonic/gin"
)

// Success writes a 200 response with the uniform {success: true, ...} envelope.
// The payload keys are merged into the envelope so handlers can return
// domain-named fields (rooms, booking, total, ...) at the top level.
func Success(c *gin.Context, payload gin.H) {
	write(c, http.StatusOK, payload)
}

// Created writes a 201 response with the uniform envelope
func Created(c *gin.Context, payload gin.H) {
	write(c, http.StatusCreated, payload)
}

func write(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// BadRequest reports a validation or business-rule failure
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

// Unauthorized reports a missing or invalid credential
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Not authorized"
	}
	fail(c, http.StatusUnauthorized, message)
}

// Forbidden reports an authenticated caller lacking entity-level rights
func Forbidden(c *gin.Context) {
	fail(c, http.StatusForbidden, "Access forbidden")
}

// NotFound reports an absent entity
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	fail(c, http.StatusNotFound, message)
}

// Conflict reports a uniqueness or state invariant violation
func Conflict(c *gin.Context, message string) {
	fail(c, http.StatusConflict, message)
}

// ServerError reports an unexpected failure without leaking detail
func ServerError(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "Internal Server Error")
}

// FromError maps an AppError code onto the HTTP status taxonomy; anything
// that is not an AppError is reported as an opaque server error.
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeUnavailable:
		BadRequest(c, appErr.Message)
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken, apperrors.ErrCodeMissingToken:
		Unauthorized(c, appErr.Message)
	case apperrors.ErrCodeForbidden:
		Forbidden(c)
	case apperrors.ErrCodeNotFound:
		NotFound(c, appErr.Message)
	case apperrors.ErrCodeConflict:
		Conflict(c, appErr.Message)
	default:
		ServerError(c)
	}
}
