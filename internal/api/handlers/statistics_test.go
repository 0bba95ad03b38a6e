package handlers_test

import (
	"net/http"
	"testing"

	"team-management-backend/internal/api/handlers"
	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/mocks"
	"team-management-backend/internal/service"
	"team-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StatisticsHandlerTestSuite defines the test suite for StatisticsHandler
type StatisticsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStatisticsServiceInterface
	handler     *handlers.StatisticsHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *StatisticsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStatisticsServiceInterface(suite.ctrl)
	suite.handler = handlers.NewStatisticsHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	stats := suite.httpSuite.Router.Group("/api/v1/teams/:id/statistics")
	{
		stats.GET("", suite.handler.GetStatistics)
		stats.POST("", suite.handler.InitializeStatistics)
		stats.PUT("/match", suite.handler.RecordMatch)
		stats.PUT("/tournaments-won", suite.handler.IncrementTournamentsWon)
		stats.DELETE("", suite.handler.DeleteStatistics)
	}
}

// TearDownTest cleans up after each test
func (suite *StatisticsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetStatistics tests the GetStatistics handler
func (suite *StatisticsHandlerTestSuite) TestGetStatistics() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByTeam(gomock.Any(), uint(1)).
			Return(&models.Statistics{ID: 2, TeamID: 1, MatchesPlayed: 4}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1/statistics", nil)

		var response models.Statistics
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 4, response.MatchesPlayed)
	})

	suite.T().Run("Not initialized", func(t *testing.T) {
		suite.mockService.EXPECT().GetByTeam(gomock.Any(), uint(2)).Return(nil, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/2/statistics", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Statistics not found")
	})
}

// TestInitializeStatistics tests the InitializeStatistics handler
func (suite *StatisticsHandlerTestSuite) TestInitializeStatistics() {
	suite.T().Run("Created", func(t *testing.T) {
		suite.mockService.EXPECT().Initialize(gomock.Any(), uint(1)).Return(&models.Statistics{ID: 2, TeamID: 1}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/1/statistics", nil)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Already exist", func(t *testing.T) {
		suite.mockService.EXPECT().Initialize(gomock.Any(), uint(1)).Return(nil, apperrors.ErrStatisticsExist).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/1/statistics", nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestRecordMatch tests the RecordMatch handler
func (suite *StatisticsHandlerTestSuite) TestRecordMatch() {
	suite.T().Run("Tournament win", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateAfterMatch(gomock.Any(), uint(1), &service.MatchResultRequest{GoalsFor: 3, GoalsAgainst: 1, Tournament: true, Result: "won"}).
			Return(&models.Statistics{TeamID: 1, MatchesPlayed: 1, MatchesWon: 1, TournamentMatchesWon: 1}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1/statistics/match?goals_for=3&goals_against=1&tournament=true&result=won", nil)

		var response models.Statistics
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 1, response.MatchesWon)
		assert.Equal(t, 1, response.TournamentMatchesWon)
	})

	suite.T().Run("Invalid result", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateAfterMatch(gomock.Any(), uint(1), gomock.Any()).
			Return(nil, apperrors.ErrInvalidMatchResult).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1/statistics/match?result=tied", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "won, lost, drawn")
	})

	suite.T().Run("Missing result", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1/statistics/match?goals_for=2", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Malformed goals", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1/statistics/match?goals_for=many&result=won", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Statistics missing", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateAfterMatch(gomock.Any(), uint(5), gomock.Any()).
			Return(nil, apperrors.ErrStatisticsNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/5/statistics/match?result=lost", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestTournamentsWonAndDelete tests the remaining statistics handlers
func (suite *StatisticsHandlerTestSuite) TestTournamentsWonAndDelete() {
	suite.T().Run("Increment", func(t *testing.T) {
		suite.mockService.EXPECT().
			IncrementTournamentsWon(gomock.Any(), uint(1)).
			Return(&models.Statistics{TeamID: 1, TournamentsWon: 2}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1/statistics/tournaments-won", nil)

		var response models.Statistics
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 2, response.TournamentsWon)
	})

	suite.T().Run("Delete", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteForTeam(gomock.Any(), uint(1)).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/1/statistics", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestStatisticsHandlerTestSuite runs the test suite
func TestStatisticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatisticsHandlerTestSuite))
}
