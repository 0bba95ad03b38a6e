package repository

import (
	"context"

	"team-management-backend/internal/database/models"

	"gorm.io/gorm"
)

// MemberRepository handles database operations for team memberships
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new membership
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID retrieves a membership by ID
func (r *MemberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTeamAndUser retrieves the membership of a user in a team, in any state
func (r *MemberRepository) GetByTeamAndUser(ctx context.Context, teamID, userID uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByTeam retrieves the memberships of a team with pagination
func (r *MemberRepository) ListByTeam(ctx context.Context, teamID uint, page Pagination) ([]models.Member, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Member{}).Where("team_id = ?", teamID)
	return paginate[models.Member](query, page)
}

// ListByUser retrieves the memberships of a user across teams with pagination
func (r *MemberRepository) ListByUser(ctx context.Context, userID uint, page Pagination) ([]models.Member, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Member{}).Where("user_id = ?", userID)
	return paginate[models.Member](query, page)
}

// CountActiveByTeam counts the active memberships of a team
func (r *MemberRepository) CountActiveByTeam(ctx context.Context, teamID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("team_id = ? AND state = ?", teamID, models.MemberStateActive).
		Count(&count).Error
	return count, err
}

// Update updates a membership
func (r *MemberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete deletes a membership
func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Member{}, "id = ?", id).Error
}
