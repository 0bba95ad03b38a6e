package handlers

import (
	"errors"
	"net/http"

	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler exposes the configured user directory
type DirectoryHandler struct {
	directory service.UserDirectory
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory service.UserDirectory) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// GetUser resolves a user id through the user directory
// @Summary Look up a user in the user directory
// @Description Resolves the user through the configured identity provider (HTTP user API or LDAP)
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} service.UserDetails "User identity"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 502 {object} ErrorResponse "User directory lookup failed"
// @Failure 503 {object} ErrorResponse "No identity provider configured"
// @Security BearerAuth
// @Router /users/{userId} [get]
func (h *DirectoryHandler) GetUser(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId", "user ID")
	if !ok {
		return
	}

	if h.directory == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: apperrors.ErrIdentityProviderNotEnabled.Error()})
		return
	}

	user, err := h.directory.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrIdentityProviderNotEnabled) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "user directory lookup failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
