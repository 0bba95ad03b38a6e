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

// MemberService handles business logic for team memberships
type MemberService struct {
	store     repository.Store
	directory UserDirectory
	validator *validator.Validate
}

// NewMemberService creates a new member service. directory may be nil, in
// which case memberships are returned without identity details.
func NewMemberService(store repository.Store, directory UserDirectory, validator *validator.Validate) *MemberService {
	return &MemberService{
		store:     store,
		directory: directory,
		validator: validator,
	}
}

// CreateMemberRequest represents the request to add a user to a team
type CreateMemberRequest struct {
	TeamID       uint              `json:"team_id" validate:"required" example:"1"`
	UserID       uint              `json:"user_id" validate:"required" example:"42"`
	Role         models.MemberRole `json:"role" validate:"omitempty,oneof=captain vice_captain player" example:"player"`
	JerseyNumber *int              `json:"jersey_number" validate:"omitempty,min=1" example:"10"`
	Position     string            `json:"position" validate:"max=100" example:"Goalkeeper"`
}

// UpdateMemberRequest represents the request to edit a membership. Nil fields are left unchanged.
type UpdateMemberRequest struct {
	Role         *models.MemberRole  `json:"role" validate:"omitempty,oneof=captain vice_captain player"`
	JerseyNumber *int                `json:"jersey_number" validate:"omitempty,min=1"`
	Position     *string             `json:"position" validate:"omitempty,max=100"`
	State        *models.MemberState `json:"state" validate:"omitempty,oneof=active inactive suspended"`
}

// SetMemberStateRequest represents the request to change the state of a membership
type SetMemberStateRequest struct {
	State        models.MemberState `json:"state" validate:"required,oneof=active inactive suspended" example:"suspended"`
	Role         *models.MemberRole `json:"role" validate:"omitempty,oneof=captain vice_captain player"`
	JerseyNumber *int               `json:"jersey_number" validate:"omitempty,min=1"`
}

// MemberResponse is a membership enriched with the member's directory identity
type MemberResponse struct {
	models.Member
	User *UserDetails `json:"user,omitempty"`
}

// MemberListResponse represents a paginated list of memberships
type MemberListResponse struct {
	Members  []models.Member `json:"members"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create adds a user to a team. Capacity is not checked here; joining
// through an invitation goes through AddFromInvitation instead.
func (s *MemberService) Create(ctx context.Context, req *CreateMemberRequest) (*models.Member, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.MemberRolePlayer
	}
	member := &models.Member{
		TeamID:       req.TeamID,
		UserID:       req.UserID,
		Role:         role,
		JerseyNumber: req.JerseyNumber,
		Position:     req.Position,
		State:        models.MemberStateActive,
	}

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		if _, err := getTeam(ctx, tx, req.TeamID); err != nil {
			return err
		}
		if err := ensureNotMember(ctx, tx, req.TeamID, req.UserID, apperrors.ErrMemberExists); err != nil {
			return err
		}
		return createMember(ctx, tx, member)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": member.TeamID,
		"user_id": member.UserID,
	}).Info("member added to team")
	return member, nil
}

// AddFromInvitation creates an active player membership inside the caller's
// transaction after checking the team still has room.
func (s *MemberService) AddFromInvitation(ctx context.Context, tx repository.Store, team *models.Team, userID uint) (*models.Member, error) {
	hasRoom, err := s.hasCapacity(ctx, tx, team)
	if err != nil {
		return nil, err
	}
	if !hasRoom {
		return nil, apperrors.ErrTeamFull
	}
	if err := ensureNotMember(ctx, tx, team.ID, userID, apperrors.ErrUserAlreadyMember); err != nil {
		return nil, err
	}

	member := &models.Member{
		TeamID: team.ID,
		UserID: userID,
		Role:   models.MemberRolePlayer,
		State:  models.MemberStateActive,
	}
	if err := createMember(ctx, tx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// HasCapacity reports whether the team has fewer active members than its cap
func (s *MemberService) HasCapacity(ctx context.Context, team *models.Team) (bool, error) {
	return s.hasCapacity(ctx, s.store, team)
}

func (s *MemberService) hasCapacity(ctx context.Context, tx repository.Store, team *models.Team) (bool, error) {
	active, err := tx.Members().CountActiveByTeam(ctx, team.ID)
	if err != nil {
		return false, fmt.Errorf("failed to count active members: %w", err)
	}
	return active < int64(team.MaxMembers), nil
}

// GetByID retrieves a membership with its identity details; a missing membership yields nil without error
func (s *MemberService) GetByID(ctx context.Context, id uint) (*MemberResponse, error) {
	member, err := s.store.Members().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &MemberResponse{
		Member: *member,
		User:   lookupIdentity(ctx, s.directory, member.UserID),
	}, nil
}

// ListByTeam retrieves the memberships of a team with pagination
func (s *MemberService) ListByTeam(ctx context.Context, teamID uint, page PageRequest) (*MemberListResponse, error) {
	page, window, err := page.resolve(memberSortFields)
	if err != nil {
		return nil, err
	}
	members, total, err := s.store.Members().ListByTeam(ctx, teamID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return &MemberListResponse{Members: members, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

// ListByUser retrieves the memberships of a user with pagination
func (s *MemberService) ListByUser(ctx context.Context, userID uint, page PageRequest) (*MemberListResponse, error) {
	page, window, err := page.resolve(memberSortFields)
	if err != nil {
		return nil, err
	}
	members, total, err := s.store.Members().ListByUser(ctx, userID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list user memberships: %w", err)
	}
	return &MemberListResponse{Members: members, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

// Update merges the non-nil fields of req into the membership
func (s *MemberService) Update(ctx context.Context, id uint, req *UpdateMemberRequest) (*models.Member, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return s.modify(ctx, id, func(member *models.Member) {
		if req.Role != nil {
			member.Role = *req.Role
		}
		if req.JerseyNumber != nil {
			member.JerseyNumber = req.JerseyNumber
		}
		if req.Position != nil {
			member.Position = *req.Position
		}
		if req.State != nil {
			member.State = *req.State
		}
	})
}

// SetState overwrites the state of a membership and optionally its role and jersey number
func (s *MemberService) SetState(ctx context.Context, id uint, req *SetMemberStateRequest) (*models.Member, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	member, err := s.modify(ctx, id, func(member *models.Member) {
		member.State = req.State
		if req.Role != nil {
			member.Role = *req.Role
		}
		if req.JerseyNumber != nil {
			member.JerseyNumber = req.JerseyNumber
		}
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("member_id", id).Infof("member state set to %s", member.State)
	return member, nil
}

func (s *MemberService) modify(ctx context.Context, id uint, apply func(*models.Member)) (*models.Member, error) {
	var member *models.Member
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		var err error
		member, err = getMember(ctx, tx, id)
		if err != nil {
			return err
		}
		apply(member)
		if err := tx.Members().Update(ctx, member); err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a membership
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	return s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		if _, err := getMember(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.Members().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete member: %w", err)
		}
		return nil
	})
}

func getMember(ctx context.Context, tx repository.Store, id uint) (*models.Member, error) {
	member, err := tx.Members().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// ensureNotMember fails with conflictErr when the user holds a membership of any state in the team
func ensureNotMember(ctx context.Context, tx repository.Store, teamID, userID uint, conflictErr error) error {
	_, err := tx.Members().GetByTeamAndUser(ctx, teamID, userID)
	if err == nil {
		return conflictErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return fmt.Errorf("failed to check existing membership: %w", err)
}

func createMember(ctx context.Context, tx repository.Store, member *models.Member) error {
	if err := tx.Members().Create(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrMemberExists
		}
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}
