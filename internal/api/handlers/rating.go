package handlers

import (
	"net/http"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RatingHandler handles HTTP requests for team ratings
type RatingHandler struct {
	ratingService service.RatingServiceInterface
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingService service.RatingServiceInterface) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// CreateRating handles POST /ratings
// @Summary Rate a team
// @Description Record a score between 1.0 and 5.0 and refresh the team's average rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body service.CreateRatingRequest true "Rating data"
// @Success 201 {object} models.Rating "Rating created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Evaluator already rated this team for the match"
// @Security BearerAuth
// @Router /ratings [post]
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req service.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rating, err := h.ratingService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// GetRating handles GET /ratings/:id
// @Summary Get rating by ID
// @Tags ratings
// @Produce json
// @Param id path int true "Rating ID"
// @Success 200 {object} models.Rating "Rating"
// @Failure 400 {object} ErrorResponse "Invalid rating ID"
// @Failure 404 {object} ErrorResponse "Rating not found"
// @Security BearerAuth
// @Router /ratings/{id} [get]
func (h *RatingHandler) GetRating(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "rating ID")
	if !ok {
		return
	}

	rating, err := h.ratingService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if rating == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Rating not found"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// LookupRating handles GET /ratings/lookup
// @Summary Find the rating an evaluator gave a team in a match
// @Tags ratings
// @Produce json
// @Param match_id query int true "Match ID"
// @Param evaluator_id query int true "Evaluator user ID"
// @Param team_id query int true "Team ID"
// @Success 200 {object} models.Rating "Rating"
// @Failure 400 {object} ErrorResponse "Missing or invalid query parameter"
// @Failure 404 {object} ErrorResponse "Rating not found"
// @Security BearerAuth
// @Router /ratings/lookup [get]
func (h *RatingHandler) LookupRating(c *gin.Context) {
	matchID, ok := parseUintQuery(c, "match_id")
	if !ok {
		return
	}
	evaluatorID, ok := parseUintQuery(c, "evaluator_id")
	if !ok {
		return
	}
	teamID, ok := parseUintQuery(c, "team_id")
	if !ok {
		return
	}

	rating, err := h.ratingService.GetByTriple(c.Request.Context(), matchID, evaluatorID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	if rating == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Rating not found"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// ListTeamRatings handles GET /teams/:id/ratings
// @Summary List the ratings of a team
// @Tags ratings
// @Produce json
// @Param id path int true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction"
// @Success 200 {object} service.RatingListResponse "Ratings of the team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /teams/{id}/ratings [get]
func (h *RatingHandler) ListTeamRatings(c *gin.Context) {
	teamID, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.ratingService.ListByTeam(c.Request.Context(), teamID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListEvaluatorRatings handles GET /users/:userId/ratings
// @Summary List the ratings given by a user
// @Tags ratings
// @Produce json
// @Param userId path int true "Evaluator user ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort query string false "Sort field with optional direction"
// @Success 200 {object} service.RatingListResponse "Ratings given by the user"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /users/{userId}/ratings [get]
func (h *RatingHandler) ListEvaluatorRatings(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId", "user ID")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	resp, err := h.ratingService.ListByEvaluator(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateRating handles PUT /ratings/:id
// @Summary Update a rating
// @Description Only the original evaluator may update a rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "Rating ID"
// @Param X-User-ID header int false "Acting user ID when no bearer token is sent"
// @Param rating body service.UpdateRatingRequest true "Fields to update"
// @Success 200 {object} models.Rating "Updated rating"
// @Failure 400 {object} ErrorResponse "Invalid request or missing actor"
// @Failure 403 {object} ErrorResponse "Not the original evaluator"
// @Failure 404 {object} ErrorResponse "Rating not found"
// @Security BearerAuth
// @Router /ratings/{id} [put]
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "rating ID")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rating, err := h.ratingService.Update(c.Request.Context(), id, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// DeleteRating handles DELETE /ratings/:id
// @Summary Delete a rating
// @Description Only the original evaluator may delete a rating
// @Tags ratings
// @Produce json
// @Param id path int true "Rating ID"
// @Param X-User-ID header int false "Acting user ID when no bearer token is sent"
// @Success 200 {object} MessageResponse "Rating deleted"
// @Failure 400 {object} ErrorResponse "Invalid rating ID or missing actor"
// @Failure 403 {object} ErrorResponse "Not the original evaluator"
// @Failure 404 {object} ErrorResponse "Rating not found"
// @Security BearerAuth
// @Router /ratings/{id} [delete]
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "rating ID")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.ratingService.Delete(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Rating deleted successfully"})
}
