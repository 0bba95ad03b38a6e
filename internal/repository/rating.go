package repository

import (
	"context"

	"team-management-backend/internal/database/models"

	"gorm.io/gorm"
)

// RatingRepository handles database operations for team ratings
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create creates a new rating
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// GetByID retrieves a rating by ID
func (r *RatingRepository) GetByID(ctx context.Context, id uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).First(&rating, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByTriple retrieves the rating an evaluator gave a team for a match
func (r *RatingRepository) GetByTriple(ctx context.Context, matchID, evaluatorID, teamID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).First(&rating, "match_id = ? AND evaluator_id = ? AND team_id = ?",
		matchID, evaluatorID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByTeam retrieves the ratings of a team with pagination
func (r *RatingRepository) ListByTeam(ctx context.Context, teamID uint, page Pagination) ([]models.Rating, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Rating{}).Where("team_id = ?", teamID)
	return paginate[models.Rating](query, page)
}

// ListByEvaluator retrieves the ratings given by a user with pagination
func (r *RatingRepository) ListByEvaluator(ctx context.Context, evaluatorID uint, page Pagination) ([]models.Rating, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Rating{}).Where("evaluator_id = ?", evaluatorID)
	return paginate[models.Rating](query, page)
}

// Update updates a rating
func (r *RatingRepository) Update(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

// Delete deletes a rating
func (r *RatingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Rating{}, "id = ?", id).Error
}

// AggregateForTeam returns the mean score rounded half-up to two decimals and
// the number of ratings of a team. A team without ratings yields 0, 0.
func (r *RatingRepository) AggregateForTeam(ctx context.Context, teamID uint) (float64, int64, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(ROUND(AVG(score), 2), 0) AS average, COUNT(*) AS count").
		Where("team_id = ?", teamID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Average, row.Count, nil
}
