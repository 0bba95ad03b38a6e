package handlers

import (
	"net/http"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for team memberships
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// CreateMember handles POST /members
// @Summary Add a user to a team
// @Description Create a membership. role defaults to player, state to active.
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Membership data"
// @Success 201 {object} models.Member "Successfully created membership"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "User already belongs to the team"
// @Security BearerAuth
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember handles GET /members/:id
// @Summary Get membership by ID
// @Description Get a membership together with the member's identity from the user directory
// @Tags members
// @Produce json
// @Param id path int true "Membership ID"
// @Success 200 {object} service.MemberResponse "Successfully retrieved membership"
// @Failure 400 {object} ErrorResponse "Invalid membership ID"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "membership ID")
	if !ok {
		return
	}

	member, err := h.memberService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Membership not found"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListTeamMembers handles GET /teams/:id/members
// @Summary List the memberships of a team
// @Tags members
// @Produce json
// @Param id path int true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction"
// @Success 200 {object} service.MemberListResponse "Memberships of the team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (h *MemberHandler) ListTeamMembers(c *gin.Context) {
	teamID, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.memberService.ListByTeam(c.Request.Context(), teamID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListUserMemberships handles GET /users/:userId/memberships
// @Summary List the memberships of a user
// @Tags members
// @Produce json
// @Param userId path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction"
// @Success 200 {object} service.MemberListResponse "Memberships of the user"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /users/{userId}/memberships [get]
func (h *MemberHandler) ListUserMemberships(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId", "user ID")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.memberService.ListByUser(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMember handles PUT /members/:id
// @Summary Update membership attributes
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Membership ID"
// @Param member body service.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} models.Member "Updated membership"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "membership ID")
	if !ok {
		return
	}

	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// SetMemberState handles PATCH /members/:id/state
// @Summary Change the state of a membership
// @Description Set the state and optionally the role and jersey number
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Membership ID"
// @Param body body service.SetMemberStateRequest true "New state"
// @Success 200 {object} models.Member "Updated membership"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Security BearerAuth
// @Router /members/{id}/state [patch]
func (h *MemberHandler) SetMemberState(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "membership ID")
	if !ok {
		return
	}

	var req service.SetMemberStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.SetState(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember handles DELETE /members/:id
// @Summary Remove a membership
// @Tags members
// @Produce json
// @Param id path int true "Membership ID"
// @Success 200 {object} MessageResponse "Membership deleted"
// @Failure 400 {object} ErrorResponse "Invalid membership ID"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "membership ID")
	if !ok {
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Membership deleted successfully"})
}
