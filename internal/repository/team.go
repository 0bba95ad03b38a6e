package repository

import (
	"context"

	"team-management-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDForUpdate retrieves a team by ID and locks its row until the surrounding transaction ends
func (r *TeamRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByNameInsensitive retrieves a team whose name matches ignoring case
func (r *TeamRepository) GetByNameInsensitive(ctx context.Context, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves teams whose name or city contains search, with pagination
func (r *TeamRepository) List(ctx context.Context, search string, page Pagination) ([]models.Team, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Team{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR city ILIKE ?", pattern, pattern)
	}
	return paginate[models.Team](query, page)
}

// ListBySportType retrieves the teams playing the given sport type, with pagination
func (r *TeamRepository) ListBySportType(ctx context.Context, sportTypeID uint, page Pagination) ([]models.Team, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Team{}).Where("sport_type_id = ?", sportTypeID)
	return paginate[models.Team](query, page)
}

// ListByMinRating retrieves teams rated at least minRating, with pagination.
// Without an explicit order the best rated teams come first.
func (r *TeamRepository) ListByMinRating(ctx context.Context, minRating float64, page Pagination) ([]models.Team, int64, error) {
	if page.Order == "" {
		page.Order = "average_rating DESC, " + DefaultOrder
	}
	query := r.db.WithContext(ctx).Model(&models.Team{}).Where("average_rating >= ?", minRating)
	return paginate[models.Team](query, page)
}

// Update updates a team
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// UpdateRatingAggregate overwrites the derived rating columns of a team
func (r *TeamRepository) UpdateRatingAggregate(ctx context.Context, teamID uint, average float64, count int64) error {
	result := r.db.WithContext(ctx).Model(&models.Team{}).Where("id = ?", teamID).Updates(map[string]interface{}{
		"average_rating": average,
		"rating_count":   count,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a team; memberships, invitations, ratings and statistics cascade
func (r *TeamRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Team{}, "id = ?", id).Error
}
