package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"team-management-backend/internal/api/handlers"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/service"
	"team-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type stubDirectory struct {
	user *service.UserDetails
	err  error
}

func (d stubDirectory) GetUser(_ context.Context, userID uint) (*service.UserDetails, error) {
	if d.err != nil {
		return nil, d.err
	}
	u := *d.user
	u.ID = userID
	return &u, nil
}

func TestDirectoryHandler_GetUser(t *testing.T) {
	serve := func(dir service.UserDirectory) *testutils.HTTPTestSuite {
		s := testutils.SetupHTTPTest()
		s.Router.GET("/api/v1/users/:userId", handlers.NewDirectoryHandler(dir).GetUser)
		return s
	}

	t.Run("found", func(t *testing.T) {
		s := serve(stubDirectory{user: &service.UserDetails{FullName: "Ana Costa"}})
		recorder := s.MakeRequest(http.MethodGet, "/api/v1/users/42", nil)

		var user service.UserDetails
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &user)
		assert.Equal(t, uint(42), user.ID)
		assert.Equal(t, "Ana Costa", user.FullName)
	})

	t.Run("provider disabled", func(t *testing.T) {
		s := serve(stubDirectory{err: apperrors.ErrIdentityProviderNotEnabled})
		recorder := s.MakeRequest(http.MethodGet, "/api/v1/users/42", nil)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("no directory", func(t *testing.T) {
		s := serve(nil)
		recorder := s.MakeRequest(http.MethodGet, "/api/v1/users/42", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusServiceUnavailable, "identity provider is not configured")
	})

	t.Run("lookup failure", func(t *testing.T) {
		s := serve(stubDirectory{err: errors.New("ldap: connection refused")})
		recorder := s.MakeRequest(http.MethodGet, "/api/v1/users/42", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadGateway, "connection refused")
	})

	t.Run("invalid id", func(t *testing.T) {
		s := serve(stubDirectory{})
		recorder := s.MakeRequest(http.MethodGet, "/api/v1/users/abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
