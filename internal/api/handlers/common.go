package handlers

import (
	"net/http"
	"strconv"

	"team-management-backend/internal/auth"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/logger"
	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Team deleted successfully"`
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithField("path", c.FullPath()).Errorf("request failed: %v", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// parseUintParam reads a positive numeric path parameter, answering 400 when it is malformed
func parseUintParam(c *gin.Context, name, label string) (uint, bool) {
	return parseUint(c, c.Param(name), label)
}

// parseUintQuery reads a required positive numeric query parameter
func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	return parseUint(c, c.Query(name), name)
}

func parseUint(c *gin.Context, raw, label string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label})
		return 0, false
	}
	return uint(id), true
}

// bindPage reads page, page_size and sort from the query string
func bindPage(c *gin.Context) (service.PageRequest, bool) {
	var page service.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
		return page, false
	}
	return page, true
}

// requireActor answers 400 when the request carries no acting user
func requireActor(c *gin.Context) (uint, bool) {
	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "X-User-ID header or bearer token with user_id is required"})
		return 0, false
	}
	return actor, true
}
