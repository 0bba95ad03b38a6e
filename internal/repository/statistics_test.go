//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"team-management-backend/internal/database/models"
	"team-management-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// StatisticsRepositoryTestSuite tests the StatisticsRepository and the Store transaction
type StatisticsRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StatisticsRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	team          *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *StatisticsRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewStatisticsRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *StatisticsRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StatisticsRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.team = suite.factories.Team.Create()
	suite.Require().NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.team))
}

// TearDownTest runs after each test
func (suite *StatisticsRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateOncePerTeam tests the unique team_id index
func (suite *StatisticsRepositoryTestSuite) TestCreateOncePerTeam() {
	suite.NoError(suite.repo.Create(suite.ctx, &models.Statistics{TeamID: suite.team.ID}))

	err := suite.repo.Create(suite.ctx, &models.Statistics{TeamID: suite.team.ID})
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestRecordMatchRoundTrip tests persisting counters after a match
func (suite *StatisticsRepositoryTestSuite) TestRecordMatchRoundTrip() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, &models.Statistics{TeamID: suite.team.ID}))

	stats, err := suite.repo.GetByTeamIDForUpdate(suite.ctx, suite.team.ID)
	suite.Require().NoError(err)
	stats.RecordMatch(3, 1, true, models.MatchResultWon)
	suite.NoError(suite.repo.Update(suite.ctx, stats))

	found, err := suite.repo.GetByTeamID(suite.ctx, suite.team.ID)
	suite.NoError(err)
	suite.Equal(1, found.MatchesPlayed)
	suite.Equal(1, found.TournamentMatchesWon)
	suite.Equal(3, found.TournamentGoalsFor)
}

// TestDelete tests deleting statistics
func (suite *StatisticsRepositoryTestSuite) TestDelete() {
	stats := &models.Statistics{TeamID: suite.team.ID}
	suite.Require().NoError(suite.repo.Create(suite.ctx, stats))

	suite.NoError(suite.repo.Delete(suite.ctx, stats.ID))

	_, err := suite.repo.GetByTeamID(suite.ctx, suite.team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestWithinTransactionRollsBack tests that an error from the callback discards all writes
func (suite *StatisticsRepositoryTestSuite) TestWithinTransactionRollsBack() {
	store := NewStore(suite.baseTestSuite.DB)
	boom := errors.New("boom")

	err := store.WithinTransaction(suite.ctx, func(tx Store) error {
		if err := tx.Statistics().Create(suite.ctx, &models.Statistics{TeamID: suite.team.ID}); err != nil {
			return err
		}
		if err := tx.Teams().UpdateRatingAggregate(suite.ctx, suite.team.ID, 5, 1); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	_, err = suite.repo.GetByTeamID(suite.ctx, suite.team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	team, err := store.Teams().GetByID(suite.ctx, suite.team.ID)
	suite.NoError(err)
	suite.Zero(team.RatingCount)
}

// TestStatisticsRepositoryTestSuite runs the test suite
func TestStatisticsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StatisticsRepositoryTestSuite))
}
