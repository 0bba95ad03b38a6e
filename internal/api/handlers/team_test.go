package handlers_test

import (
	"errors"
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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/by-sport/:sportTypeId", suite.handler.GetTeamsBySportType)
		teams.GET("/by-rating", suite.handler.GetTeamsByMinRating)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.PATCH("/:id/active", suite.handler.SetTeamActive)
		teams.PATCH("/:id/approval", suite.handler.SetTeamApproval)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func falcons() *models.Team {
	return &models.Team{
		BaseModel:   models.BaseModel{ID: 1},
		Name:        "Falcons",
		CreatedBy:   42,
		SportTypeID: 1,
		MaxMembers:  15,
		Active:      true,
	}
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req *service.CreateTeamRequest) (*models.Team, error) {
				assert.Equal(t, "Falcons", req.Name)
				assert.Equal(t, uint(42), req.CreatedBy)
				return falcons(), nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
			"name":          "Falcons",
			"created_by":    42,
			"sport_type_id": 1,
		})

		var response models.Team
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, uint(1), response.ID)
		assert.Equal(t, "Falcons", response.Name)
	})

	suite.T().Run("Duplicate name", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
			"name": "falcons",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "team already exists")
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/teams", "invalid json")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Unexpected error hides details", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "Falcons"})

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(gomock.Any(), uint(1)).Return(falcons(), nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1", nil)

		var response models.Team
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Falcons", response.Name)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(gomock.Any(), uint(99)).Return(nil, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Team not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-3"} {
			recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+raw, nil)
			testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid team ID")
		}
	})
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Passes search and pagination", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any(), "fal", service.PageRequest{Page: 2, PageSize: 5, Sort: "name,asc"}).
			Return(&service.TeamListResponse{Teams: []models.Team{*falcons()}, Total: 6, Page: 2, PageSize: 5}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?search=fal&page=2&page_size=5&sort=name,asc", nil)

		var response service.TeamListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Teams, 1)
		assert.Equal(t, int64(6), response.Total)
	})

	suite.T().Run("Malformed page", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?page=abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid pagination parameters")
	})

	suite.T().Run("Unknown sort field", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any(), "", gomock.Any()).
			Return(nil, apperrors.NewValidationError("sort", "unknown sort field")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?sort=password", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetTeamsBySportType tests the GetTeamsBySportType handler
func (suite *TeamHandlerTestSuite) TestGetTeamsBySportType() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetBySportType(gomock.Any(), uint(3), service.PageRequest{Page: 2, PageSize: 5, Sort: "name"}).
			Return(&service.TeamListResponse{Teams: []models.Team{*falcons()}, Total: 6, Page: 2, PageSize: 5}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/by-sport/3?page=2&page_size=5&sort=name", nil)

		var response service.TeamListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Teams, 1)
		assert.Equal(t, int64(6), response.Total)
		assert.Equal(t, 2, response.Page)
	})

	suite.T().Run("Invalid pagination", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/by-sport/3?page=first", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid pagination parameters")
	})

	suite.T().Run("Invalid sport type", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/by-sport/x", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid sport type ID")
	})
}

// TestGetTeamsByMinRating tests the GetTeamsByMinRating handler
func (suite *TeamHandlerTestSuite) TestGetTeamsByMinRating() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByMinRating(gomock.Any(), 4.5, service.PageRequest{}).
			Return(&service.TeamListResponse{Teams: []models.Team{}, Page: 1, PageSize: 20}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/by-rating?min=4.5", nil)

		var response service.TeamListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 20, response.PageSize)
	})

	suite.T().Run("Out of range minimum", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByMinRating(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("min", "must be between 0 and 5")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/by-rating?min=NaN", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "must be between 0 and 5")
	})

	suite.T().Run("Missing minimum", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/by-rating", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid minimum rating")
	})
}

// TestUpdateTeam tests the UpdateTeam handler
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		updated := falcons()
		updated.City = "Porto"
		suite.mockService.EXPECT().
			Update(gomock.Any(), uint(1), gomock.Any()).
			DoAndReturn(func(_ any, _ uint, req *service.UpdateTeamRequest) (*models.Team, error) {
				if assert.NotNil(t, req.City) {
					assert.Equal(t, "Porto", *req.City)
				}
				assert.Nil(t, req.Name)
				return updated, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1", map[string]interface{}{"city": "Porto"})

		var response models.Team
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Porto", response.City)
	})

	suite.T().Run("Capacity below roster", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(gomock.Any(), uint(1), gomock.Any()).
			Return(nil, apperrors.ErrCapacityBelowRoster).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1", map[string]interface{}{"max_members": 5})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(gomock.Any(), uint(7), gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/7", map[string]interface{}{"city": "Braga"})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

// TestSetTeamFlags tests the active and approval toggles
func (suite *TeamHandlerTestSuite) TestSetTeamFlags() {
	suite.T().Run("Deactivate", func(t *testing.T) {
		inactive := falcons()
		inactive.Active = false
		suite.mockService.EXPECT().SetActive(gomock.Any(), uint(1), false).Return(inactive, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/teams/1/active", map[string]interface{}{"active": false})

		var response models.Team
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.False(t, response.Active)
	})

	suite.T().Run("Active flag is required", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/teams/1/active", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Require approval", func(t *testing.T) {
		team := falcons()
		team.RequiresApproval = true
		suite.mockService.EXPECT().SetRequiresApproval(gomock.Any(), uint(1), true).Return(team, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/teams/1/approval", map[string]interface{}{"requires_approval": true})

		var response models.Team
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.RequiresApproval)
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), uint(1)).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/1", nil)

		var response handlers.MessageResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Contains(t, response.Message, "deleted")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), uint(2)).Return(apperrors.ErrTeamNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/2", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
