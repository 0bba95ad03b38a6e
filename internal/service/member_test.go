package service_test

import (
	"context"
	"errors"
	"testing"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/repository"
	"team-management-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeDirectory struct {
	users map[uint]*service.UserDetails
	err   error
}

func (f *fakeDirectory) GetUser(ctx context.Context, userID uint) (*service.UserDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[userID], nil
}

type MemberServiceTestSuite struct {
	suite.Suite
	m             *storeMocks
	directory     *fakeDirectory
	memberService *service.MemberService
	ctx           context.Context
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.m = newStoreMocks(suite.T())
	suite.directory = &fakeDirectory{users: map[uint]*service.UserDetails{
		42: {ID: 42, FullName: "Ana Ruiz", Email: "ana@example.com"},
	}}
	suite.memberService = service.NewMemberService(suite.m.store, suite.directory, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.m.ctrl.Finish()
}

func (suite *MemberServiceTestSuite) TestCreate_DefaultsToActivePlayer() {
	suite.m.teams.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&models.Team{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.m.members.EXPECT().GetByTeamAndUser(gomock.Any(), uint(1), uint(42)).Return(nil, gorm.ErrRecordNotFound)
	suite.m.members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	member, err := suite.memberService.Create(suite.ctx, &service.CreateMemberRequest{TeamID: 1, UserID: 42})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MemberRolePlayer, member.Role)
	assert.Equal(suite.T(), models.MemberStateActive, member.State)
}

func (suite *MemberServiceTestSuite) TestCreate_DuplicateMembership() {
	suite.m.teams.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&models.Team{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.m.members.EXPECT().GetByTeamAndUser(gomock.Any(), uint(1), uint(42)).
		Return(&models.Member{ID: 5, TeamID: 1, UserID: 42, State: models.MemberStateInactive}, nil)

	_, err := suite.memberService.Create(suite.ctx, &service.CreateMemberRequest{TeamID: 1, UserID: 42})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberExists)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *MemberServiceTestSuite) TestCreate_SameUserOtherTeam() {
	suite.m.teams.EXPECT().GetByID(gomock.Any(), uint(2)).Return(&models.Team{BaseModel: models.BaseModel{ID: 2}}, nil)
	suite.m.members.EXPECT().GetByTeamAndUser(gomock.Any(), uint(2), uint(42)).Return(nil, gorm.ErrRecordNotFound)
	suite.m.members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	member, err := suite.memberService.Create(suite.ctx, &service.CreateMemberRequest{TeamID: 2, UserID: 42, Role: models.MemberRoleCaptain})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MemberRoleCaptain, member.Role)
}

func (suite *MemberServiceTestSuite) TestCreate_UniqueIndexBackstop() {
	suite.m.teams.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&models.Team{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.m.members.EXPECT().GetByTeamAndUser(gomock.Any(), uint(1), uint(42)).Return(nil, gorm.ErrRecordNotFound)
	suite.m.members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.memberService.Create(suite.ctx, &service.CreateMemberRequest{TeamID: 1, UserID: 42})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberExists)
}

func (suite *MemberServiceTestSuite) TestCreate_TeamMissing() {
	suite.m.teams.EXPECT().GetByID(gomock.Any(), uint(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.memberService.Create(suite.ctx, &service.CreateMemberRequest{TeamID: 1, UserID: 42})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *MemberServiceTestSuite) TestAddFromInvitation_TeamFull() {
	team := &models.Team{BaseModel: models.BaseModel{ID: 1}, MaxMembers: 5}
	suite.m.members.EXPECT().CountActiveByTeam(gomock.Any(), uint(1)).Return(int64(5), nil)

	_, err := suite.memberService.AddFromInvitation(suite.ctx, suite.m.store, team, 42)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamFull)
}

func (suite *MemberServiceTestSuite) TestAddFromInvitation_AlreadyMember() {
	team := &models.Team{BaseModel: models.BaseModel{ID: 1}, MaxMembers: 5}
	suite.m.members.EXPECT().CountActiveByTeam(gomock.Any(), uint(1)).Return(int64(2), nil)
	suite.m.members.EXPECT().GetByTeamAndUser(gomock.Any(), uint(1), uint(42)).Return(&models.Member{ID: 9}, nil)

	_, err := suite.memberService.AddFromInvitation(suite.ctx, suite.m.store, team, 42)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserAlreadyMember)
}

func (suite *MemberServiceTestSuite) TestHasCapacity() {
	team := &models.Team{BaseModel: models.BaseModel{ID: 1}, MaxMembers: 5}
	suite.m.members.EXPECT().CountActiveByTeam(gomock.Any(), uint(1)).Return(int64(4), nil)

	ok, err := suite.memberService.HasCapacity(suite.ctx, team)

	suite.Require().NoError(err)
	assert.True(suite.T(), ok)
}

func (suite *MemberServiceTestSuite) TestGetByID_EnrichedWithIdentity() {
	suite.m.members.EXPECT().GetByID(gomock.Any(), uint(5)).Return(&models.Member{ID: 5, TeamID: 1, UserID: 42}, nil)

	resp, err := suite.memberService.GetByID(suite.ctx, 5)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.User)
	assert.Equal(suite.T(), "Ana Ruiz", resp.User.FullName)
	assert.Equal(suite.T(), uint(42), resp.UserID)
}

func (suite *MemberServiceTestSuite) TestGetByID_DirectoryFailureDegrades() {
	suite.directory.err = errors.New("user API down")
	suite.m.members.EXPECT().GetByID(gomock.Any(), uint(5)).Return(&models.Member{ID: 5, TeamID: 1, UserID: 42}, nil)

	resp, err := suite.memberService.GetByID(suite.ctx, 5)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.User)
	assert.Equal(suite.T(), service.UserDetails{}, *resp.User)
}

func (suite *MemberServiceTestSuite) TestGetByID_Missing() {
	suite.m.members.EXPECT().GetByID(gomock.Any(), uint(5)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.memberService.GetByID(suite.ctx, 5)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

func (suite *MemberServiceTestSuite) TestListByTeam() {
	suite.m.members.EXPECT().
		ListByTeam(gomock.Any(), uint(1), repository.Pagination{Limit: service.DefaultPageSize, Order: "jersey_number ASC"}).
		Return([]models.Member{{ID: 1}, {ID: 2}}, int64(2), nil)

	resp, err := suite.memberService.ListByTeam(suite.ctx, 1, service.PageRequest{Sort: "jersey_number"})

	suite.Require().NoError(err)
	assert.Len(suite.T(), resp.Members, 2)
	assert.Equal(suite.T(), int64(2), resp.Total)
}

func (suite *MemberServiceTestSuite) TestUpdate_MergesNonNilFields() {
	member := &models.Member{ID: 5, Role: models.MemberRolePlayer, Position: "Defender", State: models.MemberStateActive}
	suite.m.members.EXPECT().GetByID(gomock.Any(), uint(5)).Return(member, nil)
	suite.m.members.EXPECT().Update(gomock.Any(), member).Return(nil)

	role := models.MemberRoleViceCaptain
	updated, err := suite.memberService.Update(suite.ctx, 5, &service.UpdateMemberRequest{Role: &role, JerseyNumber: intPtr(7)})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MemberRoleViceCaptain, updated.Role)
	assert.Equal(suite.T(), 7, *updated.JerseyNumber)
	assert.Equal(suite.T(), "Defender", updated.Position)
	assert.Equal(suite.T(), models.MemberStateActive, updated.State)
}

func (suite *MemberServiceTestSuite) TestSetState() {
	member := &models.Member{ID: 5, Role: models.MemberRolePlayer, State: models.MemberStateActive}
	suite.m.members.EXPECT().GetByID(gomock.Any(), uint(5)).Return(member, nil)
	suite.m.members.EXPECT().Update(gomock.Any(), member).Return(nil)

	role := models.MemberRoleCaptain
	updated, err := suite.memberService.SetState(suite.ctx, 5, &service.SetMemberStateRequest{State: models.MemberStateSuspended, Role: &role})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MemberStateSuspended, updated.State)
	assert.Equal(suite.T(), models.MemberRoleCaptain, updated.Role)
}

func (suite *MemberServiceTestSuite) TestSetState_InvalidState() {
	_, err := suite.memberService.SetState(suite.ctx, 5, &service.SetMemberStateRequest{State: "banned"})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MemberServiceTestSuite) TestDelete_NotFound() {
	suite.m.members.EXPECT().GetByID(gomock.Any(), uint(5)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.memberService.Delete(suite.ctx, 5)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
