package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/logger"
	"team-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// InvitationService handles the invitation lifecycle. Accepting an
// invitation creates the membership through MemberService.
type InvitationService struct {
	store     repository.Store
	members   *MemberService
	validator *validator.Validate
	now       func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(store repository.Store, members *MemberService, validator *validator.Validate) *InvitationService {
	return &InvitationService{
		store:     store,
		members:   members,
		validator: validator,
		now:       time.Now,
	}
}

// CreateInvitationRequest represents the request to invite a user to a team.
// A sender equal to the invited user makes the invitation a join request.
type CreateInvitationRequest struct {
	TeamID        uint   `json:"team_id" validate:"required" example:"1"`
	InvitedUserID uint   `json:"invited_user_id" validate:"required" example:"42"`
	SenderUserID  uint   `json:"sender_user_id" validate:"required" example:"7"`
	Message       string `json:"message" validate:"max=500" example:"We need a goalkeeper"`
}

// RespondInvitationRequest represents an answer to a pending invitation
type RespondInvitationRequest struct {
	State models.InvitationState `json:"state" binding:"required" example:"accepted"`
}

// InvitationListResponse represents a paginated list of invitations
type InvitationListResponse struct {
	Invitations []models.Invitation `json:"invitations"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}

// Create creates a pending invitation. Checks run in order: team exists, no
// pending invitation for the pair, no membership for the pair, team has room.
func (s *InvitationService) Create(ctx context.Context, req *CreateInvitationRequest) (*models.Invitation, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	invitation := &models.Invitation{
		TeamID:        req.TeamID,
		InvitedUserID: req.InvitedUserID,
		SenderUserID:  req.SenderUserID,
		Message:       req.Message,
		State:         models.InvitationStatePending,
	}

	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		team, err := getTeam(ctx, tx, req.TeamID)
		if err != nil {
			return err
		}

		_, err = tx.Invitations().GetPendingByTeamAndUser(ctx, req.TeamID, req.InvitedUserID)
		if err == nil {
			return apperrors.ErrPendingInvitationExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check pending invitations: %w", err)
		}

		if err := ensureNotMember(ctx, tx, req.TeamID, req.InvitedUserID, apperrors.ErrUserAlreadyMember); err != nil {
			return err
		}

		hasRoom, err := s.members.hasCapacity(ctx, tx, team)
		if err != nil {
			return err
		}
		if !hasRoom {
			return apperrors.ErrTeamFull
		}

		if err := tx.Invitations().Create(ctx, invitation); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrPendingInvitationExists
			}
			return fmt.Errorf("failed to create invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invitation_id": invitation.ID,
		"team_id":       invitation.TeamID,
		"join_request":  invitation.IsJoinRequest(),
	}).Info("invitation created")
	return invitation, nil
}

// GetByID retrieves an invitation by ID; a missing invitation yields nil without error
func (s *InvitationService) GetByID(ctx context.Context, id uint) (*models.Invitation, error) {
	invitation, err := s.store.Invitations().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return invitation, nil
}

// Respond moves a pending invitation to accepted, rejected or cancelled on
// behalf of actorID. A join request may be answered by any active member of
// the team, any other invitation only by the invited user. Accepting creates
// the membership in the same transaction and fails with ErrTeamFull when the
// team has no room left, leaving the invitation pending.
func (s *InvitationService) Respond(ctx context.Context, id, actorID uint, state models.InvitationState) (*models.Invitation, error) {
	state = models.InvitationState(strings.ToLower(strings.TrimSpace(string(state))))

	var invitation *models.Invitation
	err := s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		var err error
		invitation, err = tx.Invitations().GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvitationNotFound
			}
			return fmt.Errorf("failed to get invitation: %w", err)
		}

		if invitation.State != models.InvitationStatePending {
			return apperrors.ErrInvitationAlreadyAnswered
		}
		if err := s.ensureCanRespond(ctx, tx, invitation, actorID); err != nil {
			return err
		}
		if !state.IsTerminal() {
			return apperrors.ErrInvalidInvitationResponse
		}

		if state == models.InvitationStateAccepted {
			team, err := getTeamForUpdate(ctx, tx, invitation.TeamID)
			if err != nil {
				return err
			}
			if _, err := s.members.AddFromInvitation(ctx, tx, team, invitation.InvitedUserID); err != nil {
				return err
			}
		}

		respondedAt := s.now()
		invitation.State = state
		invitation.ResponderUserID = &actorID
		invitation.RespondedAt = &respondedAt
		if err := tx.Invitations().Update(ctx, invitation); err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invitation_id": invitation.ID,
		"team_id":       invitation.TeamID,
	}).Infof("invitation %s", invitation.State)
	return invitation, nil
}

func (s *InvitationService) ensureCanRespond(ctx context.Context, tx repository.Store, invitation *models.Invitation, actorID uint) error {
	if !invitation.IsJoinRequest() {
		if actorID != invitation.InvitedUserID {
			return apperrors.ErrNotAllowedToRespond
		}
		return nil
	}

	member, err := tx.Members().GetByTeamAndUser(ctx, invitation.TeamID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotAllowedToRespond
		}
		return fmt.Errorf("failed to check responder membership: %w", err)
	}
	if member.State != models.MemberStateActive {
		return apperrors.ErrNotAllowedToRespond
	}
	return nil
}

// ListByUserAndState retrieves the invitations of a user in a state, pending by default
func (s *InvitationService) ListByUserAndState(ctx context.Context, userID uint, state models.InvitationState, page PageRequest) (*InvitationListResponse, error) {
	if state == "" {
		state = models.InvitationStatePending
	}
	if !state.IsValid() {
		return nil, apperrors.NewValidationError("state", "must be one of pending, accepted, rejected, cancelled")
	}

	page, window, err := page.resolve(invitationSortFields)
	if err != nil {
		return nil, err
	}
	invitations, total, err := s.store.Invitations().ListByUserAndState(ctx, userID, state, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list user invitations: %w", err)
	}
	return &InvitationListResponse{Invitations: invitations, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

// ListByTeam retrieves the invitations of a team with pagination
func (s *InvitationService) ListByTeam(ctx context.Context, teamID uint, page PageRequest) (*InvitationListResponse, error) {
	page, window, err := page.resolve(invitationSortFields)
	if err != nil {
		return nil, err
	}
	invitations, total, err := s.store.Invitations().ListByTeam(ctx, teamID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list team invitations: %w", err)
	}
	return &InvitationListResponse{Invitations: invitations, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

// List retrieves invitations whose message matches search, with pagination
func (s *InvitationService) List(ctx context.Context, search string, page PageRequest) (*InvitationListResponse, error) {
	page, window, err := page.resolve(invitationSortFields)
	if err != nil {
		return nil, err
	}
	invitations, total, err := s.store.Invitations().List(ctx, strings.TrimSpace(search), window)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return &InvitationListResponse{Invitations: invitations, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

// Delete deletes an invitation in any state
func (s *InvitationService) Delete(ctx context.Context, id uint) error {
	return s.store.WithinTransaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Invitations().GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvitationNotFound
			}
			return fmt.Errorf("failed to get invitation: %w", err)
		}
		if err := tx.Invitations().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete invitation: %w", err)
		}
		return nil
	})
}
