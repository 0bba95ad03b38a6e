package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/logger"
	"team-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DefaultMaxMembers is the roster cap of a team created without one
const DefaultMaxMembers = 15

// TeamService handles business logic for teams
type TeamService struct {
	store     repository.Store
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(store repository.Store, validator *validator.Validate) *TeamService {
	return &TeamService{
		store:     store,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name             string           `json:"name" validate:"required,min=3,max=255" example:"Falcons"`
	CreatedBy        uint             `json:"created_by" validate:"required" example:"42"`
	SportTypeID      uint             `json:"sport_type_id" validate:"required" example:"1"`
	Description      string           `json:"description" validate:"max=1000"`
	Logo             string           `json:"logo" validate:"max=500"`
	PrimaryColor     string           `json:"primary_color" validate:"omitempty,teamcolor" example:"#1E90FF"`
	SecondaryColor   string           `json:"secondary_color" validate:"omitempty,teamcolor" example:"#FFF"`
	City             string           `json:"city" validate:"max=100" example:"Porto"`
	Level            models.TeamLevel `json:"level" validate:"omitempty,oneof=beginner intermediate advanced professional"`
	MaxMembers       *int             `json:"max_members" validate:"omitempty,min=5,max=50" example:"15"`
	RequiresApproval *bool            `json:"requires_approval"`
}

// UpdateTeamRequest represents the request to update a team. Nil fields are left unchanged.
type UpdateTeamRequest struct {
	Name           *string           `json:"name" validate:"omitempty,min=3,max=255"`
	SportTypeID    *uint             `json:"sport_type_id" validate:"omitempty,min=1"`
	Description    *string           `json:"description" validate:"omitempty,max=1000"`
	Logo           *string           `json:"logo" validate:"omitempty,max=500"`
	PrimaryColor   *string           `json:"primary_color" validate:"omitempty,teamcolor"`
	SecondaryColor *string           `json:"secondary_color" validate:"omitempty,teamcolor"`
	City           *string           `json:"city" validate:"omitempty,max=100"`
	Level          *models.TeamLevel `json:"level" validate:"omitempty,oneof=beginner intermediate advanced professional"`
	MaxMembers     *int              `json:"max_members" validate:"omitempty,min=5,max=50"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []models.Team `json:"teams"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Create creates a new team
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*models.Team, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:             strings.TrimSpace(req.Name),
		CreatedBy:        req.CreatedBy,
		SportTypeID:      req.SportTypeID,
		Description:      req.Description,
		Logo:             req.Logo,
		PrimaryColor:     req.PrimaryColor,
		SecondaryColor:   req.SecondaryColor,
		City:             req.City,
		Level:            req.Level,
		MaxMembers:       DefaultMaxMembers,
		RequiresApproval: true,
		Active:           true,
	}
	if req.MaxMembers != nil {
		team.MaxMembers = *req.MaxMembers
	}
	if req.RequiresApproval != nil {
		team.RequiresApproval = *req.RequiresApproval
	}

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		if err := ensureTeamNameAvailable(ctx, tx, team.Name, 0); err != nil {
			return err
		}
		if err := tx.Teams().Create(ctx, team); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrTeamExists
			}
			return fmt.Errorf("failed to create team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Infof("team %q created", team.Name)
	return team, nil
}

// GetByID retrieves a team by ID; a missing team yields nil without error
func (s *TeamService) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	team, err := s.store.Teams().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// List retrieves teams whose name or city matches search, with pagination
func (s *TeamService) List(ctx context.Context, search string, page PageRequest) (*TeamListResponse, error) {
	page, window, err := page.resolve(teamSortFields)
	if err != nil {
		return nil, err
	}

	teams, total, err := s.store.Teams().List(ctx, strings.TrimSpace(search), window)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return newTeamListResponse(teams, total, page), nil
}

// GetBySportType retrieves the teams of a sport type, with pagination
func (s *TeamService) GetBySportType(ctx context.Context, sportTypeID uint, page PageRequest) (*TeamListResponse, error) {
	page, window, err := page.resolve(teamSortFields)
	if err != nil {
		return nil, err
	}

	teams, total, err := s.store.Teams().ListBySportType(ctx, sportTypeID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams by sport type: %w", err)
	}
	return newTeamListResponse(teams, total, page), nil
}

// GetByMinRating retrieves the teams whose average rating is at least
// minRating, best rated first unless page asks for another order
func (s *TeamService) GetByMinRating(ctx context.Context, minRating float64, page PageRequest) (*TeamListResponse, error) {
	if math.IsNaN(minRating) || minRating < 0 || minRating > 5 {
		return nil, apperrors.NewValidationError("min", "must be between 0 and 5")
	}
	page, window, err := page.resolve(teamSortFields)
	if err != nil {
		return nil, err
	}

	teams, total, err := s.store.Teams().ListByMinRating(ctx, minRating, window)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams by rating: %w", err)
	}
	return newTeamListResponse(teams, total, page), nil
}

func newTeamListResponse(teams []models.Team, total int64, page PageRequest) *TeamListResponse {
	return &TeamListResponse{
		Teams:    teams,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

// Update merges the non-nil fields of req into the team
func (s *TeamService) Update(ctx context.Context, id uint, req *UpdateTeamRequest) (*models.Team, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var team *models.Team
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		var err error
		team, err = getTeamForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if err := ensureTeamNameAvailable(ctx, tx, name, team.ID); err != nil {
				return err
			}
			team.Name = name
		}
		if req.MaxMembers != nil && *req.MaxMembers != team.MaxMembers {
			active, err := tx.Members().CountActiveByTeam(ctx, team.ID)
			if err != nil {
				return fmt.Errorf("failed to count active members: %w", err)
			}
			if int64(*req.MaxMembers) < active {
				return apperrors.ErrCapacityBelowRoster
			}
		}
		mergeTeamUpdate(team, req)

		if err := tx.Teams().Update(ctx, team); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrTeamExists
			}
			return fmt.Errorf("failed to update team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// SetActive overwrites the active flag of a team
func (s *TeamService) SetActive(ctx context.Context, id uint, active bool) (*models.Team, error) {
	return s.setFlag(ctx, id, func(team *models.Team) { team.Active = active })
}

// SetRequiresApproval overwrites whether joining the team needs approval
func (s *TeamService) SetRequiresApproval(ctx context.Context, id uint, requiresApproval bool) (*models.Team, error) {
	return s.setFlag(ctx, id, func(team *models.Team) { team.RequiresApproval = requiresApproval })
}

func (s *TeamService) setFlag(ctx context.Context, id uint, apply func(*models.Team)) (*models.Team, error) {
	var team *models.Team
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		var err error
		team, err = getTeamForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		apply(team)
		if err := tx.Teams().Update(ctx, team); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// Delete deletes a team together with its memberships, invitations, ratings and statistics
func (s *TeamService) Delete(ctx context.Context, id uint) error {
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		if _, err := getTeam(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.Teams().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("team_id", id).Info("team deleted")
	return nil
}

func mergeTeamUpdate(team *models.Team, req *UpdateTeamRequest) {
	if req.SportTypeID != nil {
		team.SportTypeID = *req.SportTypeID
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.Logo != nil {
		team.Logo = *req.Logo
	}
	if req.PrimaryColor != nil {
		team.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		team.SecondaryColor = *req.SecondaryColor
	}
	if req.City != nil {
		team.City = *req.City
	}
	if req.Level != nil {
		team.Level = *req.Level
	}
	if req.MaxMembers != nil {
		team.MaxMembers = *req.MaxMembers
	}
}

// ensureTeamNameAvailable fails with ErrTeamExists when another team already uses name in any casing
func ensureTeamNameAvailable(ctx context.Context, tx repository.Store, name string, selfID uint) error {
	existing, err := tx.Teams().GetByNameInsensitive(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing.ID != selfID {
		return apperrors.ErrTeamExists
	}
	return nil
}

// getTeam loads a team or fails with ErrTeamNotFound
func getTeam(ctx context.Context, tx repository.Store, id uint) (*models.Team, error) {
	team, err := tx.Teams().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// getTeamForUpdate loads and locks a team or fails with ErrTeamNotFound
func getTeamForUpdate(ctx context.Context, tx repository.Store, id uint) (*models.Team, error) {
	team, err := tx.Teams().GetByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}
