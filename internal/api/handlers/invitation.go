package handlers

import (
	"net/http"

	"team-management-backend/internal/database/models"
	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for team invitations and join requests
type InvitationHandler struct {
	invitationService service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// CreateInvitation handles POST /invitations
// @Summary Invite a user to a team
// @Description Create a pending invitation. When sender_user_id equals invited_user_id the invitation is a join request.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.CreateInvitationRequest true "Invitation data"
// @Success 201 {object} models.Invitation "Invitation created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Pending invitation exists, user already member or team full"
// @Security BearerAuth
// @Router /invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	invitation, err := h.invitationService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// GetInvitation handles GET /invitations/:id
// @Summary Get invitation by ID
// @Tags invitations
// @Produce json
// @Param id path int true "Invitation ID"
// @Success 200 {object} models.Invitation "Invitation"
// @Failure 400 {object} ErrorResponse "Invalid invitation ID"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Security BearerAuth
// @Router /invitations/{id} [get]
func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "invitation ID")
	if !ok {
		return
	}

	invitation, err := h.invitationService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if invitation == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invitation not found"})
		return
	}

	c.JSON(http.StatusOK, invitation)
}

// RespondInvitation handles PUT /invitations/:id/response
// @Summary Answer a pending invitation
// @Description Accept, reject or cancel an invitation as the acting user. Accepting adds the user to the team.
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path int true "Invitation ID"
// @Param X-User-ID header int false "Acting user ID when no bearer token is sent"
// @Param body body service.RespondInvitationRequest true "Answer"
// @Success 200 {object} models.Invitation "Answered invitation"
// @Failure 400 {object} ErrorResponse "Invalid request or missing actor"
// @Failure 403 {object} ErrorResponse "Not allowed to respond"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Failure 409 {object} ErrorResponse "Already answered or team full"
// @Security BearerAuth
// @Router /invitations/{id}/response [put]
func (h *InvitationHandler) RespondInvitation(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "invitation ID")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	invitation, err := h.invitationService.Respond(c.Request.Context(), id, actor, req.State)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitation)
}

// ListUserInvitations handles GET /users/:userId/invitations
// @Summary List the invitations received by a user
// @Tags invitations
// @Produce json
// @Param userId path int true "User ID"
// @Param state query string false "Invitation state" default(pending)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction"
// @Success 200 {object} service.InvitationListResponse "Invitations of the user, newest first"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /users/{userId}/invitations [get]
func (h *InvitationHandler) ListUserInvitations(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId", "user ID")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	state := models.InvitationState(c.Query("state"))
	resp, err := h.invitationService.ListByUserAndState(c.Request.Context(), userID, state, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTeamInvitations handles GET /teams/:id/invitations
// @Summary List the invitations of a team
// @Tags invitations
// @Produce json
// @Param id path int true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction"
// @Success 200 {object} service.InvitationListResponse "Invitations of the team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /teams/{id}/invitations [get]
func (h *InvitationHandler) ListTeamInvitations(c *gin.Context) {
	teamID, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.invitationService.ListByTeam(c.Request.Context(), teamID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListInvitations handles GET /invitations
// @Summary List invitations
// @Tags invitations
// @Produce json
// @Param search query string false "Matches the invitation message, case-insensitive"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction"
// @Success 200 {object} service.InvitationListResponse "Invitations"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.invitationService.List(c.Request.Context(), c.Query("search"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteInvitation handles DELETE /invitations/:id
// @Summary Delete invitation
// @Tags invitations
// @Produce json
// @Param id path int true "Invitation ID"
// @Success 200 {object} MessageResponse "Invitation deleted"
// @Failure 400 {object} ErrorResponse "Invalid invitation ID"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Security BearerAuth
// @Router /invitations/{id} [delete]
func (h *InvitationHandler) DeleteInvitation(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "invitation ID")
	if !ok {
		return
	}

	if err := h.invitationService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Invitation deleted successfully"})
}
