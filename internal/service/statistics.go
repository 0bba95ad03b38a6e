package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/logger"
	"team-management-backend/internal/repository"

	"gorm.io/gorm"
)

// StatisticsService maintains per-team match counters
type StatisticsService struct {
	store repository.Store
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(store repository.Store) *StatisticsService {
	return &StatisticsService{store: store}
}

// MaxGoalsPerMatch bounds the goals either side may score in one match
const MaxGoalsPerMatch = 100

// MatchResultRequest carries one played match
type MatchResultRequest struct {
	GoalsFor     int    `form:"goals_for" json:"goals_for" example:"3"`
	GoalsAgainst int    `form:"goals_against" json:"goals_against" example:"1"`
	Tournament   bool   `form:"tournament" json:"tournament" example:"true"`
	Result       string `form:"result" json:"result" binding:"required" example:"won"`
}

// GetByTeam returns the statistics of a team; absent statistics yield nil without error
func (s *StatisticsService) GetByTeam(ctx context.Context, teamID uint) (*models.Statistics, error) {
	stats, err := s.store.Statistics().GetByTeamID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team statistics: %w", err)
	}
	return stats, nil
}

// Initialize creates zeroed statistics for a team
func (s *StatisticsService) Initialize(ctx context.Context, teamID uint) (*models.Statistics, error) {
	stats := &models.Statistics{TeamID: teamID}

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		if _, err := getTeam(ctx, tx, teamID); err != nil {
			return err
		}

		_, err := tx.Statistics().GetByTeamID(ctx, teamID)
		if err == nil {
			return apperrors.ErrStatisticsExist
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check team statistics: %w", err)
		}

		if err := tx.Statistics().Create(ctx, stats); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrStatisticsExist
			}
			return fmt.Errorf("failed to create team statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("team_id", teamID).Info("team statistics initialized")
	return stats, nil
}

// UpdateAfterMatch records one match result for a team
func (s *StatisticsService) UpdateAfterMatch(ctx context.Context, teamID uint, req *MatchResultRequest) (*models.Statistics, error) {
	result := models.MatchResult(strings.ToLower(strings.TrimSpace(req.Result)))
	if !result.IsValid() {
		return nil, apperrors.ErrInvalidMatchResult
	}
	if req.GoalsFor < 0 || req.GoalsAgainst < 0 {
		return nil, apperrors.ErrNegativeGoals
	}
	if req.GoalsFor > MaxGoalsPerMatch || req.GoalsAgainst > MaxGoalsPerMatch {
		return nil, apperrors.ErrTooManyGoals
	}

	var stats *models.Statistics
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		var err error
		stats, err = getStatisticsForUpdate(ctx, tx, teamID)
		if err != nil {
			return err
		}

		if !stats.CanRecord(req.GoalsFor, req.GoalsAgainst) {
			return apperrors.ErrStatisticsOverflow
		}
		stats.RecordMatch(req.GoalsFor, req.GoalsAgainst, req.Tournament, result)
		if err := tx.Statistics().Update(ctx, stats); err != nil {
			return fmt.Errorf("failed to update team statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":    teamID,
		"result":     result,
		"tournament": req.Tournament,
	}).Info("match recorded")
	return stats, nil
}

// IncrementTournamentsWon adds one tournament victory to a team
func (s *StatisticsService) IncrementTournamentsWon(ctx context.Context, teamID uint) (*models.Statistics, error) {
	var stats *models.Statistics
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		var err error
		stats, err = getStatisticsForUpdate(ctx, tx, teamID)
		if err != nil {
			return err
		}

		stats.TournamentsWon++
		if err := tx.Statistics().Update(ctx, stats); err != nil {
			return fmt.Errorf("failed to update team statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// DeleteForTeam removes the statistics of a team
func (s *StatisticsService) DeleteForTeam(ctx context.Context, teamID uint) error {
	return s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		stats, err := getStatisticsForUpdate(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if err := tx.Statistics().Delete(ctx, stats.ID); err != nil {
			return fmt.Errorf("failed to delete team statistics: %w", err)
		}
		return nil
	})
}

func getStatisticsForUpdate(ctx context.Context, tx repository.Store, teamID uint) (*models.Statistics, error) {
	stats, err := tx.Statistics().GetByTeamIDForUpdate(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStatisticsNotFound
		}
		return nil, fmt.Errorf("failed to get team statistics: %w", err)
	}
	return stats, nil
}
