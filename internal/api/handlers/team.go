package handlers

import (
	"net/http"
	"strconv"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// SetActiveRequest toggles whether a team is active
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required" example:"false"`
}

// SetApprovalRequest toggles whether joining a team needs approval
type SetApprovalRequest struct {
	RequiresApproval *bool `json:"requires_approval" binding:"required" example:"true"`
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team. max_members defaults to 15, requires_approval and active default to true.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if team == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Team not found"})
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List teams, optionally filtered by name or city
// @Tags teams
// @Produce json
// @Param search query string false "Matches name or city, case-insensitive"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction, e.g. name,desc"
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid pagination or sort"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.teamService.List(c.Request.Context(), c.Query("search"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTeamsBySportType handles GET /teams/by-sport/:sportTypeId
// @Summary List teams of a sport type
// @Tags teams
// @Produce json
// @Param sportTypeId path int true "Sport type ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction, e.g. name,desc"
// @Success 200 {object} service.TeamListResponse "Teams of the sport type"
// @Failure 400 {object} ErrorResponse "Invalid sport type ID, pagination or sort"
// @Security BearerAuth
// @Router /teams/by-sport/{sportTypeId} [get]
func (h *TeamHandler) GetTeamsBySportType(c *gin.Context) {
	sportTypeID, ok := parseUintParam(c, "sportTypeId", "sport type ID")
	if !ok {
		return
	}

	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.teamService.GetBySportType(c.Request.Context(), sportTypeID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTeamsByMinRating handles GET /teams/by-rating
// @Summary List teams by minimum average rating
// @Tags teams
// @Produce json
// @Param min query number true "Minimum average rating (0-5)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction, defaults to average_rating,desc"
// @Success 200 {object} service.TeamListResponse "Teams rated at least min"
// @Failure 400 {object} ErrorResponse "Invalid minimum rating, pagination or sort"
// @Security BearerAuth
// @Router /teams/by-rating [get]
func (h *TeamHandler) GetTeamsByMinRating(c *gin.Context) {
	minRating, err := strconv.ParseFloat(c.Query("min"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid minimum rating"})
		return
	}

	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.teamService.GetByMinRating(c.Request.Context(), minRating, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update team
// @Description Update the provided fields of a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} models.Team "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Name taken or capacity below roster"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// SetTeamActive handles PATCH /teams/:id/active
// @Summary Activate or deactivate a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param body body SetActiveRequest true "Active flag"
// @Success 200 {object} models.Team "Updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/active [patch]
func (h *TeamHandler) SetTeamActive(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// SetTeamApproval handles PATCH /teams/:id/approval
// @Summary Set whether joining the team requires approval
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param body body SetApprovalRequest true "Approval flag"
// @Success 200 {object} models.Team "Updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/approval [patch]
func (h *TeamHandler) SetTeamApproval(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	var req SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.SetRequiresApproval(c.Request.Context(), id, *req.RequiresApproval)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete team
// @Description Delete a team with its memberships, invitations, ratings and statistics
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} MessageResponse "Team deleted"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Team deleted successfully"})
}
