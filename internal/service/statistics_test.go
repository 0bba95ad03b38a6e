package service_test

import (
	"context"
	"math"
	"testing"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type StatisticsServiceTestSuite struct {
	suite.Suite
	m                 *storeMocks
	statisticsService *service.StatisticsService
	ctx               context.Context
}

func (suite *StatisticsServiceTestSuite) SetupTest() {
	suite.m = newStoreMocks(suite.T())
	suite.statisticsService = service.NewStatisticsService(suite.m.store)
	suite.ctx = context.Background()
}

func (suite *StatisticsServiceTestSuite) TearDownTest() {
	suite.m.ctrl.Finish()
}

func (suite *StatisticsServiceTestSuite) TestInitialize() {
	suite.m.teams.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&models.Team{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.m.statistics.EXPECT().GetByTeamID(gomock.Any(), uint(1)).Return(nil, gorm.ErrRecordNotFound)
	suite.m.statistics.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	stats, err := suite.statisticsService.Initialize(suite.ctx, 1)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), uint(1), stats.TeamID)
	assert.Zero(suite.T(), stats.MatchesPlayed)
}

func (suite *StatisticsServiceTestSuite) TestInitialize_AlreadyPresent() {
	suite.m.teams.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&models.Team{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.m.statistics.EXPECT().GetByTeamID(gomock.Any(), uint(1)).Return(&models.Statistics{ID: 3, TeamID: 1}, nil)

	_, err := suite.statisticsService.Initialize(suite.ctx, 1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStatisticsExist)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *StatisticsServiceTestSuite) TestInitialize_TeamMissing() {
	suite.m.teams.EXPECT().GetByID(gomock.Any(), uint(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.statisticsService.Initialize(suite.ctx, 1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *StatisticsServiceTestSuite) TestUpdateAfterMatch_TournamentWin() {
	stats := &models.Statistics{ID: 3, TeamID: 1}
	suite.m.statistics.EXPECT().GetByTeamIDForUpdate(gomock.Any(), uint(1)).Return(stats, nil)
	suite.m.statistics.EXPECT().Update(gomock.Any(), stats).Return(nil)

	updated, err := suite.statisticsService.UpdateAfterMatch(suite.ctx, 1, &service.MatchResultRequest{
		GoalsFor: 3, GoalsAgainst: 1, Tournament: true, Result: " WON ",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, updated.MatchesPlayed)
	assert.Equal(suite.T(), 1, updated.MatchesWon)
	assert.Equal(suite.T(), 0, updated.MatchesLost)
	assert.Equal(suite.T(), 0, updated.MatchesDrawn)
	assert.Equal(suite.T(), 3, updated.GoalsFor)
	assert.Equal(suite.T(), 1, updated.GoalsAgainst)
	assert.Equal(suite.T(), 1, updated.TournamentMatchesPlayed)
	assert.Equal(suite.T(), 1, updated.TournamentMatchesWon)
	assert.Equal(suite.T(), 0, updated.TournamentMatchesLost)
	assert.Equal(suite.T(), 0, updated.TournamentMatchesDrawn)
	assert.Equal(suite.T(), 3, updated.TournamentGoalsFor)
	assert.Equal(suite.T(), 1, updated.TournamentGoalsAgainst)
}

func (suite *StatisticsServiceTestSuite) TestUpdateAfterMatch_FriendlyLeavesTournamentCounters() {
	stats := &models.Statistics{ID: 3, TeamID: 1}
	suite.m.statistics.EXPECT().GetByTeamIDForUpdate(gomock.Any(), uint(1)).Return(stats, nil)
	suite.m.statistics.EXPECT().Update(gomock.Any(), stats).Return(nil)

	updated, err := suite.statisticsService.UpdateAfterMatch(suite.ctx, 1, &service.MatchResultRequest{GoalsFor: 2, GoalsAgainst: 2, Result: "drawn"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, updated.MatchesDrawn)
	assert.Zero(suite.T(), updated.TournamentMatchesPlayed)
}

func (suite *StatisticsServiceTestSuite) TestUpdateAfterMatch_InvalidResult() {
	_, err := suite.statisticsService.UpdateAfterMatch(suite.ctx, 1, &service.MatchResultRequest{GoalsFor: 1, GoalsAgainst: 1, Result: "tied"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidMatchResult)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *StatisticsServiceTestSuite) TestUpdateAfterMatch_NegativeGoals() {
	_, err := suite.statisticsService.UpdateAfterMatch(suite.ctx, 1, &service.MatchResultRequest{GoalsFor: -1, Result: "lost"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNegativeGoals)
}

func (suite *StatisticsServiceTestSuite) TestUpdateAfterMatch_TooManyGoals() {
	_, err := suite.statisticsService.UpdateAfterMatch(suite.ctx, 1, &service.MatchResultRequest{GoalsFor: math.MaxInt, Result: "won"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrTooManyGoals)

	_, err = suite.statisticsService.UpdateAfterMatch(suite.ctx, 1, &service.MatchResultRequest{GoalsAgainst: service.MaxGoalsPerMatch + 1, Result: "lost"})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *StatisticsServiceTestSuite) TestUpdateAfterMatch_CounterOverflow() {
	stats := &models.Statistics{ID: 3, TeamID: 1, MatchesPlayed: 4, GoalsFor: math.MaxInt - 2, GoalsAgainst: 7}
	suite.m.statistics.EXPECT().GetByTeamIDForUpdate(gomock.Any(), uint(1)).Return(stats, nil)

	_, err := suite.statisticsService.UpdateAfterMatch(suite.ctx, 1, &service.MatchResultRequest{GoalsFor: 3, Result: "won"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrStatisticsOverflow)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), math.MaxInt-2, stats.GoalsFor)
	assert.Equal(suite.T(), 4, stats.MatchesPlayed)
}

func (suite *StatisticsServiceTestSuite) TestUpdateAfterMatch_StatisticsMissing() {
	suite.m.statistics.EXPECT().GetByTeamIDForUpdate(gomock.Any(), uint(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.statisticsService.UpdateAfterMatch(suite.ctx, 1, &service.MatchResultRequest{Result: "lost"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrStatisticsNotFound)
}

func (suite *StatisticsServiceTestSuite) TestIncrementTournamentsWon() {
	stats := &models.Statistics{ID: 3, TeamID: 1, TournamentsWon: 2}
	suite.m.statistics.EXPECT().GetByTeamIDForUpdate(gomock.Any(), uint(1)).Return(stats, nil)
	suite.m.statistics.EXPECT().Update(gomock.Any(), stats).Return(nil)

	updated, err := suite.statisticsService.IncrementTournamentsWon(suite.ctx, 1)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 3, updated.TournamentsWon)
}

func (suite *StatisticsServiceTestSuite) TestGetByTeam_Absent() {
	suite.m.statistics.EXPECT().GetByTeamID(gomock.Any(), uint(1)).Return(nil, gorm.ErrRecordNotFound)

	stats, err := suite.statisticsService.GetByTeam(suite.ctx, 1)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), stats)
}

func (suite *StatisticsServiceTestSuite) TestDeleteForTeam() {
	suite.m.statistics.EXPECT().GetByTeamIDForUpdate(gomock.Any(), uint(1)).Return(&models.Statistics{ID: 3, TeamID: 1}, nil)
	suite.m.statistics.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil)
	assert.NoError(suite.T(), suite.statisticsService.DeleteForTeam(suite.ctx, 1))

	suite.m.statistics.EXPECT().GetByTeamIDForUpdate(gomock.Any(), uint(2)).Return(nil, gorm.ErrRecordNotFound)
	assert.ErrorIs(suite.T(), suite.statisticsService.DeleteForTeam(suite.ctx, 2), apperrors.ErrStatisticsNotFound)
}

func TestStatisticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatisticsServiceTestSuite))
}
