package repository

import (
	"context"

	"team-management-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvitationRepository handles database operations for team invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(ctx context.Context, id uint) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.WithContext(ctx).First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByIDForUpdate retrieves an invitation by ID and locks its row until the surrounding transaction ends
func (r *InvitationRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetPendingByTeamAndUser retrieves the pending invitation for a user in a team
func (r *InvitationRepository) GetPendingByTeamAndUser(ctx context.Context, teamID, userID uint) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.WithContext(ctx).First(&invitation, "team_id = ? AND invited_user_id = ? AND state = ?",
		teamID, userID, models.InvitationStatePending).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// ListByUserAndState retrieves a user's invitations in the given state, newest first
func (r *InvitationRepository) ListByUserAndState(ctx context.Context, userID uint, state models.InvitationState, page Pagination) ([]models.Invitation, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("invited_user_id = ? AND state = ?", userID, state)
	if page.Order == "" {
		page.Order = "created_at DESC"
	}
	return paginate[models.Invitation](query, page)
}

// ListByTeam retrieves the invitations of a team with pagination
func (r *InvitationRepository) ListByTeam(ctx context.Context, teamID uint, page Pagination) ([]models.Invitation, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Invitation{}).Where("team_id = ?", teamID)
	return paginate[models.Invitation](query, page)
}

// List retrieves invitations whose message contains search, with pagination
func (r *InvitationRepository) List(ctx context.Context, search string, page Pagination) ([]models.Invitation, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Invitation{})
	if search != "" {
		query = query.Where("message ILIKE ?", "%"+search+"%")
	}
	return paginate[models.Invitation](query, page)
}

// Update updates an invitation
func (r *InvitationRepository) Update(ctx context.Context, invitation *models.Invitation) error {
	return r.db.WithContext(ctx).Save(invitation).Error
}

// Delete deletes an invitation
func (r *InvitationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Invitation{}, "id = ?", id).Error
}
