package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatistics_RecordMatch(t *testing.T) {
	t.Run("tournament win updates both scopes", func(t *testing.T) {
		stats := &Statistics{TeamID: 1}
		stats.RecordMatch(3, 1, true, MatchResultWon)

		assert.Equal(t, 1, stats.MatchesPlayed)
		assert.Equal(t, 1, stats.MatchesWon)
		assert.Equal(t, 0, stats.MatchesLost)
		assert.Equal(t, 0, stats.MatchesDrawn)
		assert.Equal(t, 3, stats.GoalsFor)
		assert.Equal(t, 1, stats.GoalsAgainst)

		assert.Equal(t, 1, stats.TournamentMatchesPlayed)
		assert.Equal(t, 1, stats.TournamentMatchesWon)
		assert.Equal(t, 0, stats.TournamentMatchesLost)
		assert.Equal(t, 0, stats.TournamentMatchesDrawn)
		assert.Equal(t, 3, stats.TournamentGoalsFor)
		assert.Equal(t, 1, stats.TournamentGoalsAgainst)
	})

	t.Run("friendly draw leaves tournament scope untouched", func(t *testing.T) {
		stats := &Statistics{TeamID: 1}
		stats.RecordMatch(2, 2, false, MatchResultDrawn)

		assert.Equal(t, 1, stats.MatchesPlayed)
		assert.Equal(t, 1, stats.MatchesDrawn)
		assert.Equal(t, 0, stats.TournamentMatchesPlayed)
		assert.Equal(t, 0, stats.TournamentGoalsFor)
	})
}

func TestStatistics_CanRecord(t *testing.T) {
	stats := &Statistics{GoalsFor: 10, GoalsAgainst: 4, MatchesPlayed: 3}
	assert.True(t, stats.CanRecord(100, 100))

	stats.GoalsFor = math.MaxInt - 5
	assert.True(t, stats.CanRecord(5, 0))
	assert.False(t, stats.CanRecord(6, 0))

	stats = &Statistics{GoalsAgainst: math.MaxInt}
	assert.False(t, stats.CanRecord(0, 1))

	stats = &Statistics{MatchesPlayed: math.MaxInt}
	assert.False(t, stats.CanRecord(0, 0))
}

func TestEnums_IsValid(t *testing.T) {
	assert.True(t, MemberRoleViceCaptain.IsValid())
	assert.False(t, MemberRole("coach").IsValid())
	assert.True(t, MemberStateSuspended.IsValid())
	assert.False(t, MemberState("banned").IsValid())
	assert.True(t, TeamLevelProfessional.IsValid())
	assert.False(t, MatchResult("tied").IsValid())
	assert.True(t, InvitationStateCancelled.IsTerminal())
	assert.False(t, InvitationStatePending.IsTerminal())
}

func TestInvitation_IsJoinRequest(t *testing.T) {
	assert.True(t, (&Invitation{SenderUserID: 7, InvitedUserID: 7}).IsJoinRequest())
	assert.False(t, (&Invitation{SenderUserID: 1, InvitedUserID: 7}).IsJoinRequest())
}
