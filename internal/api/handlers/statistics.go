package handlers

import (
	"net/http"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler handles HTTP requests for team statistics
type StatisticsHandler struct {
	statisticsService service.StatisticsServiceInterface
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(statisticsService service.StatisticsServiceInterface) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService: statisticsService,
	}
}

// GetStatistics handles GET /teams/:id/statistics
// @Summary Get the statistics of a team
// @Tags statistics
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Statistics "Team statistics"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Statistics not found"
// @Security BearerAuth
// @Router /teams/{id}/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	teamID, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	stats, err := h.statisticsService.GetByTeam(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Statistics not found"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// InitializeStatistics handles POST /teams/:id/statistics
// @Summary Create zeroed statistics for a team
// @Tags statistics
// @Produce json
// @Param id path int true "Team ID"
// @Success 201 {object} models.Statistics "Statistics created"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Statistics already exist"
// @Security BearerAuth
// @Router /teams/{id}/statistics [post]
func (h *StatisticsHandler) InitializeStatistics(c *gin.Context) {
	teamID, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	stats, err := h.statisticsService.Initialize(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stats)
}

// RecordMatch handles PUT /teams/:id/statistics/match
// @Summary Record a played match
// @Description Add the match to the overall counters and, when tournament is true, to the tournament counters too
// @Tags statistics
// @Produce json
// @Param id path int true "Team ID"
// @Param goals_for query int false "Goals scored (0-100)"
// @Param goals_against query int false "Goals conceded (0-100)"
// @Param tournament query bool false "Match belongs to a tournament"
// @Param result query string true "won, lost or drawn"
// @Success 200 {object} models.Statistics "Updated statistics"
// @Failure 400 {object} ErrorResponse "Invalid result or goals"
// @Failure 404 {object} ErrorResponse "Statistics not found"
// @Security BearerAuth
// @Router /teams/{id}/statistics/match [put]
func (h *StatisticsHandler) RecordMatch(c *gin.Context) {
	teamID, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	var req service.MatchResultRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	stats, err := h.statisticsService.UpdateAfterMatch(c.Request.Context(), teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// IncrementTournamentsWon handles PUT /teams/:id/statistics/tournaments-won
// @Summary Count a tournament win
// @Tags statistics
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Statistics "Updated statistics"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Statistics not found"
// @Security BearerAuth
// @Router /teams/{id}/statistics/tournaments-won [put]
func (h *StatisticsHandler) IncrementTournamentsWon(c *gin.Context) {
	teamID, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	stats, err := h.statisticsService.IncrementTournamentsWon(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// DeleteStatistics handles DELETE /teams/:id/statistics
// @Summary Delete the statistics of a team
// @Tags statistics
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} MessageResponse "Statistics deleted"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Statistics not found"
// @Security BearerAuth
// @Router /teams/{id}/statistics [delete]
func (h *StatisticsHandler) DeleteStatistics(c *gin.Context) {
	teamID, ok := parseUintParam(c, "id", "team ID")
	if !ok {
		return
	}

	if err := h.statisticsService.DeleteForTeam(c.Request.Context(), teamID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Statistics deleted successfully"})
}
