// Package controllers holds the HTTP handlers. Handlers bind and parse the
// request, call one service, and write the uniform response envelope; all
// business rules live below them.
package controllers

import (
	"strconv"

	"github.com/bwubca23694-eng/Brainware-Rooms/errors"
	"github.com/bwubca23694-eng/Brainware-Rooms/middleware"
	"github.com/bwubca23694-eng/Brainware-Rooms/models"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"

	"github.com/gin-gonic/gin"
)

// callerFromContext resolves the authenticated user set by the auth
// middleware into a full account record.
func callerFromContext(c *gin.Context, users repository.UserRepository) (*models.User, error) {
	raw, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Not authenticated", nil)
	}
	userID, ok := raw.(uint)
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Not authenticated", nil)
	}
	return users.FindByID(c.Request.Context(), userID)
}

// idParam parses the :id path segment
func idParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid id", err)
	}
	return uint(id), nil
}
