package models

import (
	"math"
	"time"
)

// Statistics holds running match counters for one team, overall and for
// tournament matches only. Counters never decrease.
type Statistics struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	TeamID uint `json:"team_id" gorm:"not null;uniqueIndex"`

	MatchesPlayed int `json:"matches_played" gorm:"not null;default:0"`
	MatchesWon    int `json:"matches_won" gorm:"not null;default:0"`
	MatchesLost   int `json:"matches_lost" gorm:"not null;default:0"`
	MatchesDrawn  int `json:"matches_drawn" gorm:"not null;default:0"`
	GoalsFor      int `json:"goals_for" gorm:"not null;default:0"`
	GoalsAgainst  int `json:"goals_against" gorm:"not null;default:0"`

	TournamentMatchesPlayed int `json:"tournament_matches_played" gorm:"not null;default:0"`
	TournamentMatchesWon    int `json:"tournament_matches_won" gorm:"not null;default:0"`
	TournamentMatchesLost   int `json:"tournament_matches_lost" gorm:"not null;default:0"`
	TournamentMatchesDrawn  int `json:"tournament_matches_drawn" gorm:"not null;default:0"`
	TournamentGoalsFor      int `json:"tournament_goals_for" gorm:"not null;default:0"`
	TournamentGoalsAgainst  int `json:"tournament_goals_against" gorm:"not null;default:0"`

	TournamentsWon int       `json:"tournaments_won" gorm:"not null;default:0"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Statistics
func (Statistics) TableName() string {
	return "team_statistics"
}

// CanRecord reports whether one more match with the given goals fits the
// counters. Tournament counters never exceed the overall ones.
func (s *Statistics) CanRecord(goalsFor, goalsAgainst int) bool {
	return s.MatchesPlayed < math.MaxInt &&
		s.GoalsFor <= math.MaxInt-goalsFor &&
		s.GoalsAgainst <= math.MaxInt-goalsAgainst
}

// RecordMatch applies one match result to the overall counters and, for
// tournament matches, to the tournament counters too.
func (s *Statistics) RecordMatch(goalsFor, goalsAgainst int, tournament bool, result MatchResult) {
	s.MatchesPlayed++
	s.GoalsFor += goalsFor
	s.GoalsAgainst += goalsAgainst
	switch result {
	case MatchResultWon:
		s.MatchesWon++
	case MatchResultLost:
		s.MatchesLost++
	case MatchResultDrawn:
		s.MatchesDrawn++
	}

	if !tournament {
		return
	}
	s.TournamentMatchesPlayed++
	s.TournamentGoalsFor += goalsFor
	s.TournamentGoalsAgainst += goalsAgainst
	switch result {
	case MatchResultWon:
		s.TournamentMatchesWon++
	case MatchResultLost:
		s.TournamentMatchesLost++
	case MatchResultDrawn:
		s.TournamentMatchesDrawn++
	}
}
