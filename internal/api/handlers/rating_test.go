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

// RatingHandlerTestSuite defines the test suite for RatingHandler
type RatingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRatingServiceInterface
	handler     *handlers.RatingHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RatingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRatingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRatingHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	ratings := v1.Group("/ratings")
	{
		ratings.POST("", suite.handler.CreateRating)
		ratings.GET("/lookup", suite.handler.LookupRating)
		ratings.GET("/:id", suite.handler.GetRating)
		ratings.PUT("/:id", suite.handler.UpdateRating)
		ratings.DELETE("/:id", suite.handler.DeleteRating)
	}
	v1.GET("/teams/:id/ratings", suite.handler.ListTeamRatings)
	v1.GET("/users/:userId/ratings", suite.handler.ListEvaluatorRatings)
}

// TearDownTest cleans up after each test
func (suite *RatingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func matchRating() *models.Rating {
	matchID := uint(300)
	return &models.Rating{BaseModel: models.BaseModel{ID: 11}, TeamID: 1, EvaluatorID: 42, MatchID: &matchID, Score: 4.5}
}

// TestCreateRating tests the CreateRating handler
func (suite *RatingHandlerTestSuite) TestCreateRating() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req *service.CreateRatingRequest) (*models.Rating, error) {
				assert.Equal(t, 4.5, req.Score)
				if assert.NotNil(t, req.MatchID) {
					assert.Equal(t, uint(300), *req.MatchID)
				}
				return matchRating(), nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ratings", map[string]interface{}{
			"team_id":      1,
			"evaluator_id": 42,
			"match_id":     300,
			"score":        4.5,
		})

		var response models.Rating
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, 4.5, response.Score)
	})

	suite.T().Run("Duplicate for match", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrRatingExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ratings", map[string]interface{}{
			"team_id":      1,
			"evaluator_id": 42,
			"match_id":     300,
			"score":        3.0,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "rating already exists")
	})

	suite.T().Run("Score out of range", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("score", "must be at least 1")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ratings", map[string]interface{}{
			"team_id":      1,
			"evaluator_id": 42,
			"score":        0.5,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestLookupRating tests the LookupRating handler
func (suite *RatingHandlerTestSuite) TestLookupRating() {
	suite.T().Run("Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByTriple(gomock.Any(), uint(300), uint(42), uint(1)).
			Return(matchRating(), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/ratings/lookup?match_id=300&evaluator_id=42&team_id=1", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Absent", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByTriple(gomock.Any(), uint(301), uint(42), uint(1)).
			Return(nil, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/ratings/lookup?match_id=301&evaluator_id=42&team_id=1", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Rating not found")
	})

	suite.T().Run("Missing parameter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/ratings/lookup?match_id=300&team_id=1", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid evaluator_id")
	})
}

// TestGetRating tests the GetRating handler
func (suite *RatingHandlerTestSuite) TestGetRating() {
	suite.mockService.EXPECT().GetByID(gomock.Any(), uint(12)).Return(nil, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/ratings/12", nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestListRatings tests the team and evaluator listings
func (suite *RatingHandlerTestSuite) TestListRatings() {
	suite.T().Run("By team", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListByTeam(gomock.Any(), uint(1), service.PageRequest{Sort: "score,desc"}).
			Return(&service.RatingListResponse{Ratings: []models.Rating{*matchRating()}, Total: 1, Page: 1, PageSize: 20}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1/ratings?sort=score,desc", nil)

		var response service.RatingListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Ratings, 1)
	})

	suite.T().Run("By evaluator", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListByEvaluator(gomock.Any(), uint(42), service.PageRequest{}).
			Return(&service.RatingListResponse{Page: 1, PageSize: 20}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/42/ratings", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestUpdateRating tests the UpdateRating handler
func (suite *RatingHandlerTestSuite) TestUpdateRating() {
	suite.T().Run("Owner updates", func(t *testing.T) {
		updated := matchRating()
		updated.Score = 3.5
		suite.mockService.EXPECT().
			Update(gomock.Any(), uint(11), uint(42), gomock.Any()).
			DoAndReturn(func(_ any, _, _ uint, req *service.UpdateRatingRequest) (*models.Rating, error) {
				if assert.NotNil(t, req.Score) {
					assert.Equal(t, 3.5, *req.Score)
				}
				return updated, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequestAs(42, http.MethodPut, "/api/v1/ratings/11", map[string]interface{}{"score": 3.5})

		var response models.Rating
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 3.5, response.Score)
	})

	suite.T().Run("Other user is forbidden", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(gomock.Any(), uint(11), uint(7), gomock.Any()).
			Return(nil, apperrors.ErrNotRatingOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequestAs(7, http.MethodPut, "/api/v1/ratings/11", map[string]interface{}{"score": 1.0})

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "original evaluator")
	})

	suite.T().Run("Missing actor", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/ratings/11", map[string]interface{}{"score": 1.0})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDeleteRating tests the DeleteRating handler
func (suite *RatingHandlerTestSuite) TestDeleteRating() {
	suite.T().Run("Owner deletes", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), uint(11), uint(42)).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequestAs(42, http.MethodDelete, "/api/v1/ratings/11", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Missing rating", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), uint(13), uint(42)).Return(apperrors.ErrRatingNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequestAs(42, http.MethodDelete, "/api/v1/ratings/13", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestRatingHandlerTestSuite runs the test suite
func TestRatingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatingHandlerTestSuite))
}
