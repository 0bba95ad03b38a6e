package service

import (
	"context"
	"errors"
	"fmt"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/logger"
	"team-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// RatingService handles team ratings and keeps each team's rating aggregate current
type RatingService struct {
	store     repository.Store
	validator *validator.Validate
}

// NewRatingService creates a new rating service
func NewRatingService(store repository.Store, validator *validator.Validate) *RatingService {
	return &RatingService{
		store:     store,
		validator: validator,
	}
}

// CreateRatingRequest represents the request to rate a team
type CreateRatingRequest struct {
	TeamID       uint    `json:"team_id" validate:"required" example:"1"`
	EvaluatorID  uint    `json:"evaluator_id" validate:"required" example:"42"`
	MatchID      *uint   `json:"match_id" example:"300"`
	Score        float64 `json:"score" validate:"required,min=1,max=5,onedecimal" example:"4.5"`
	Strengths    string  `json:"strengths" validate:"max=1000"`
	Improvements string  `json:"improvements" validate:"max=1000"`
	Comment      string  `json:"comment" validate:"max=500"`
	Anonymous    bool    `json:"anonymous"`
}

// UpdateRatingRequest represents the request to edit a rating. Nil fields are left unchanged.
type UpdateRatingRequest struct {
	Score        *float64 `json:"score" validate:"omitempty,min=1,max=5,onedecimal"`
	Strengths    *string  `json:"strengths" validate:"omitempty,max=1000"`
	Improvements *string  `json:"improvements" validate:"omitempty,max=1000"`
	Comment      *string  `json:"comment" validate:"omitempty,max=500"`
	Anonymous    *bool    `json:"anonymous"`
}

// RatingListResponse represents a paginated list of ratings
type RatingListResponse struct {
	Ratings  []models.Rating `json:"ratings"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create stores a rating and recomputes the team's average in the same transaction
func (s *RatingService) Create(ctx context.Context, req *CreateRatingRequest) (*models.Rating, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		TeamID:       req.TeamID,
		EvaluatorID:  req.EvaluatorID,
		MatchID:      req.MatchID,
		Score:        req.Score,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Comment:      req.Comment,
		Anonymous:    req.Anonymous,
	}

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		if _, err := getTeamForUpdate(ctx, tx, req.TeamID); err != nil {
			return err
		}

		if req.MatchID != nil {
			_, err := tx.Ratings().GetByTriple(ctx, *req.MatchID, req.EvaluatorID, req.TeamID)
			if err == nil {
				return apperrors.ErrRatingExists
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check existing rating: %w", err)
			}
		}

		if err := tx.Ratings().Create(ctx, rating); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrRatingExists
			}
			return fmt.Errorf("failed to create rating: %w", err)
		}
		return recomputeTeamRating(ctx, tx, req.TeamID)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"rating_id": rating.ID,
		"team_id":   rating.TeamID,
	}).Info("team rated")
	return rating, nil
}

// GetByID retrieves a rating by ID; a missing rating yields nil without error
func (s *RatingService) GetByID(ctx context.Context, id uint) (*models.Rating, error) {
	rating, err := s.store.Ratings().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return rating, nil
}

// GetByTriple retrieves the rating an evaluator gave a team for a match; a miss yields nil without error
func (s *RatingService) GetByTriple(ctx context.Context, matchID, evaluatorID, teamID uint) (*models.Rating, error) {
	rating, err := s.store.Ratings().GetByTriple(ctx, matchID, evaluatorID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return rating, nil
}

// ListByTeam retrieves the ratings of a team with pagination
func (s *RatingService) ListByTeam(ctx context.Context, teamID uint, page PageRequest) (*RatingListResponse, error) {
	page, window, err := page.resolve(ratingSortFields)
	if err != nil {
		return nil, err
	}
	ratings, total, err := s.store.Ratings().ListByTeam(ctx, teamID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list team ratings: %w", err)
	}
	return &RatingListResponse{Ratings: ratings, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

// ListByEvaluator retrieves the ratings given by a user with pagination
func (s *RatingService) ListByEvaluator(ctx context.Context, evaluatorID uint, page PageRequest) (*RatingListResponse, error) {
	page, window, err := page.resolve(ratingSortFields)
	if err != nil {
		return nil, err
	}
	ratings, total, err := s.store.Ratings().ListByEvaluator(ctx, evaluatorID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluator ratings: %w", err)
	}
	return &RatingListResponse{Ratings: ratings, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

// Update edits a rating owned by actorID and recomputes the team's average
func (s *RatingService) Update(ctx context.Context, id, actorID uint, req *UpdateRatingRequest) (*models.Rating, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var rating *models.Rating
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		var err error
		rating, err = getOwnedRating(ctx, tx, id, actorID)
		if err != nil {
			return err
		}

		if req.Score != nil {
			rating.Score = *req.Score
		}
		if req.Strengths != nil {
			rating.Strengths = *req.Strengths
		}
		if req.Improvements != nil {
			rating.Improvements = *req.Improvements
		}
		if req.Comment != nil {
			rating.Comment = *req.Comment
		}
		if req.Anonymous != nil {
			rating.Anonymous = *req.Anonymous
		}

		if err := tx.Ratings().Update(ctx, rating); err != nil {
			return fmt.Errorf("failed to update rating: %w", err)
		}
		return recomputeTeamRating(ctx, tx, rating.TeamID)
	})
	if err != nil {
		return nil, err
	}
	return rating, nil
}

// Delete removes a rating owned by actorID and recomputes the team's average
func (s *RatingService) Delete(ctx context.Context, id, actorID uint) error {
	return s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		rating, err := getOwnedRating(ctx, tx, id, actorID)
		if err != nil {
			return err
		}
		if err := tx.Ratings().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete rating: %w", err)
		}
		return recomputeTeamRating(ctx, tx, rating.TeamID)
	})
}

func getOwnedRating(ctx context.Context, tx repository.Store, id, actorID uint) (*models.Rating, error) {
	rating, err := tx.Ratings().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	if rating.EvaluatorID != actorID {
		return nil, apperrors.ErrNotRatingOwner
	}
	return rating, nil
}

// recomputeTeamRating refreshes the team's average and count from its current ratings
func recomputeTeamRating(ctx context.Context, tx repository.Store, teamID uint) error {
	average, count, err := tx.Ratings().AggregateForTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	if err := tx.Teams().UpdateRatingAggregate(ctx, teamID, average, count); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to update team rating: %w", err)
	}
	return nil
}
