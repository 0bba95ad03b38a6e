package service

import (
	"context"

	"team-management-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest) (*models.Team, error)
	GetByID(ctx context.Context, id uint) (*models.Team, error)
	List(ctx context.Context, search string, page PageRequest) (*TeamListResponse, error)
	GetBySportType(ctx context.Context, sportTypeID uint, page PageRequest) (*TeamListResponse, error)
	GetByMinRating(ctx context.Context, minRating float64, page PageRequest) (*TeamListResponse, error)
	Update(ctx context.Context, id uint, req *UpdateTeamRequest) (*models.Team, error)
	SetActive(ctx context.Context, id uint, active bool) (*models.Team, error)
	SetRequiresApproval(ctx context.Context, id uint, requiresApproval bool) (*models.Team, error)
	Delete(ctx context.Context, id uint) error
}

// MemberServiceInterface defines the interface for membership service
type MemberServiceInterface interface {
	Create(ctx context.Context, req *CreateMemberRequest) (*models.Member, error)
	HasCapacity(ctx context.Context, team *models.Team) (bool, error)
	GetByID(ctx context.Context, id uint) (*MemberResponse, error)
	ListByTeam(ctx context.Context, teamID uint, page PageRequest) (*MemberListResponse, error)
	ListByUser(ctx context.Context, userID uint, page PageRequest) (*MemberListResponse, error)
	Update(ctx context.Context, id uint, req *UpdateMemberRequest) (*models.Member, error)
	SetState(ctx context.Context, id uint, req *SetMemberStateRequest) (*models.Member, error)
	Delete(ctx context.Context, id uint) error
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	Create(ctx context.Context, req *CreateInvitationRequest) (*models.Invitation, error)
	GetByID(ctx context.Context, id uint) (*models.Invitation, error)
	Respond(ctx context.Context, id, actorID uint, state models.InvitationState) (*models.Invitation, error)
	ListByUserAndState(ctx context.Context, userID uint, state models.InvitationState, page PageRequest) (*InvitationListResponse, error)
	ListByTeam(ctx context.Context, teamID uint, page PageRequest) (*InvitationListResponse, error)
	List(ctx context.Context, search string, page PageRequest) (*InvitationListResponse, error)
	Delete(ctx context.Context, id uint) error
}

// RatingServiceInterface defines the interface for rating service
type RatingServiceInterface interface {
	Create(ctx context.Context, req *CreateRatingRequest) (*models.Rating, error)
	GetByID(ctx context.Context, id uint) (*models.Rating, error)
	GetByTriple(ctx context.Context, matchID, evaluatorID, teamID uint) (*models.Rating, error)
	ListByTeam(ctx context.Context, teamID uint, page PageRequest) (*RatingListResponse, error)
	ListByEvaluator(ctx context.Context, evaluatorID uint, page PageRequest) (*RatingListResponse, error)
	Update(ctx context.Context, id, actorID uint, req *UpdateRatingRequest) (*models.Rating, error)
	Delete(ctx context.Context, id, actorID uint) error
}

// StatisticsServiceInterface defines the interface for team statistics service
type StatisticsServiceInterface interface {
	GetByTeam(ctx context.Context, teamID uint) (*models.Statistics, error)
	Initialize(ctx context.Context, teamID uint) (*models.Statistics, error)
	UpdateAfterMatch(ctx context.Context, teamID uint, req *MatchResultRequest) (*models.Statistics, error)
	IncrementTournamentsWon(ctx context.Context, teamID uint) (*models.Statistics, error)
	DeleteForTeam(ctx context.Context, teamID uint) error
}

var (
	_ TeamServiceInterface       = (*TeamService)(nil)
	_ MemberServiceInterface     = (*MemberService)(nil)
	_ InvitationServiceInterface = (*InvitationService)(nil)
	_ RatingServiceInterface     = (*RatingService)(nil)
	_ StatisticsServiceInterface = (*StatisticsService)(nil)
)
