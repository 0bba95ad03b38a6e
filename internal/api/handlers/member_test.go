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

// MemberHandlerTestSuite defines the test suite for MemberHandler
type MemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMemberServiceInterface
	handler     *handlers.MemberHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMemberServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMemberHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	members := v1.Group("/members")
	{
		members.POST("", suite.handler.CreateMember)
		members.GET("/:id", suite.handler.GetMember)
		members.PUT("/:id", suite.handler.UpdateMember)
		members.PATCH("/:id/state", suite.handler.SetMemberState)
		members.DELETE("/:id", suite.handler.DeleteMember)
	}
	v1.GET("/teams/:id/members", suite.handler.ListTeamMembers)
	v1.GET("/users/:userId/memberships", suite.handler.ListUserMemberships)
}

// TearDownTest cleans up after each test
func (suite *MemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMember tests the CreateMember handler
func (suite *MemberHandlerTestSuite) TestCreateMember() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req *service.CreateMemberRequest) (*models.Member, error) {
				assert.Equal(t, uint(1), req.TeamID)
				assert.Equal(t, uint(42), req.UserID)
				return &models.Member{ID: 5, TeamID: 1, UserID: 42, Role: models.MemberRolePlayer, State: models.MemberStateActive}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/members", map[string]interface{}{
			"team_id": 1,
			"user_id": 42,
		})

		var response models.Member
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, uint(5), response.ID)
		assert.Equal(t, models.MemberStateActive, response.State)
	})

	suite.T().Run("Already a member", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrMemberExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/members", map[string]interface{}{
			"team_id": 1,
			"user_id": 42,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "membership already exists")
	})

	suite.T().Run("Team not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/members", map[string]interface{}{
			"team_id": 9,
			"user_id": 42,
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGetMember tests the GetMember handler
func (suite *MemberHandlerTestSuite) TestGetMember() {
	suite.T().Run("Includes identity", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(gomock.Any(), uint(5)).
			Return(&service.MemberResponse{
				Member: models.Member{ID: 5, TeamID: 1, UserID: 42},
				User:   &service.UserDetails{ID: 42, FullName: "Ana Costa", Email: "ana@example.com"},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/members/5", nil)

		var response service.MemberResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, uint(42), response.UserID)
		if assert.NotNil(t, response.User) {
			assert.Equal(t, "Ana Costa", response.User.FullName)
		}
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(gomock.Any(), uint(6)).Return(nil, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/members/6", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Membership not found")
	})
}

// TestListMemberships tests the team and user listings
func (suite *MemberHandlerTestSuite) TestListMemberships() {
	suite.T().Run("By team", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListByTeam(gomock.Any(), uint(1), service.PageRequest{PageSize: 10}).
			Return(&service.MemberListResponse{Members: []models.Member{{ID: 5}, {ID: 6}}, Total: 2, Page: 1, PageSize: 10}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1/members?page_size=10", nil)

		var response service.MemberListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Members, 2)
	})

	suite.T().Run("By user", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListByUser(gomock.Any(), uint(42), service.PageRequest{}).
			Return(&service.MemberListResponse{Members: []models.Member{{ID: 5}}, Total: 1, Page: 1, PageSize: 20}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/42/memberships", nil)

		var response service.MemberListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(1), response.Total)
	})

	suite.T().Run("Invalid user", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/me/memberships", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid user ID")
	})
}

// TestChangeMember tests the update, state and delete handlers
func (suite *MemberHandlerTestSuite) TestChangeMember() {
	suite.T().Run("Update", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(gomock.Any(), uint(5), gomock.Any()).
			DoAndReturn(func(_ any, _ uint, req *service.UpdateMemberRequest) (*models.Member, error) {
				if assert.NotNil(t, req.Position) {
					assert.Equal(t, "Goalkeeper", *req.Position)
				}
				return &models.Member{ID: 5, Position: "Goalkeeper"}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/members/5", map[string]interface{}{"position": "Goalkeeper"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Set state", func(t *testing.T) {
		suite.mockService.EXPECT().
			SetState(gomock.Any(), uint(5), gomock.Any()).
			DoAndReturn(func(_ any, _ uint, req *service.SetMemberStateRequest) (*models.Member, error) {
				assert.Equal(t, models.MemberStateSuspended, req.State)
				return &models.Member{ID: 5, State: models.MemberStateSuspended}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/members/5/state", map[string]interface{}{"state": "suspended"})

		var response models.Member
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.MemberStateSuspended, response.State)
	})

	suite.T().Run("Delete missing membership", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), uint(8)).Return(apperrors.ErrMemberNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/members/8", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "membership not found")
	})

	suite.T().Run("Delete", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), uint(5)).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/members/5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestMemberHandlerTestSuite runs the test suite
func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
