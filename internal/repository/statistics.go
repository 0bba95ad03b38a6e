package repository

import (
	"context"

	"team-management-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatisticsRepository handles database operations for team statistics
type StatisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository creates a new statistics repository
func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// Create creates the statistics row of a team
func (r *StatisticsRepository) Create(ctx context.Context, stats *models.Statistics) error {
	return r.db.WithContext(ctx).Create(stats).Error
}

// GetByTeamID retrieves the statistics of a team
func (r *StatisticsRepository) GetByTeamID(ctx context.Context, teamID uint) (*models.Statistics, error) {
	var stats models.Statistics
	err := r.db.WithContext(ctx).First(&stats, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetByTeamIDForUpdate retrieves the statistics of a team and locks the row
// so concurrent match results are applied one after the other
func (r *StatisticsRepository) GetByTeamIDForUpdate(ctx context.Context, teamID uint) (*models.Statistics, error) {
	var stats models.Statistics
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&stats, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Update updates team statistics
func (r *StatisticsRepository) Update(ctx context.Context, stats *models.Statistics) error {
	return r.db.WithContext(ctx).Save(stats).Error
}

// Delete deletes team statistics
func (r *StatisticsRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Statistics{}, "id = ?", id).Error
}
