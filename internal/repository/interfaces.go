package repository

import (
	"context"

	"team-management-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uint) (*models.Team, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Team, error)
	GetByNameInsensitive(ctx context.Context, name string) (*models.Team, error)
	List(ctx context.Context, search string, page Pagination) ([]models.Team, int64, error)
	ListBySportType(ctx context.Context, sportTypeID uint, page Pagination) ([]models.Team, int64, error)
	ListByMinRating(ctx context.Context, minRating float64, page Pagination) ([]models.Team, int64, error)
	Update(ctx context.Context, team *models.Team) error
	UpdateRatingAggregate(ctx context.Context, teamID uint, average float64, count int64) error
	Delete(ctx context.Context, id uint) error
}

// MemberRepositoryInterface defines the interface for membership repository operations
type MemberRepositoryInterface interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	GetByTeamAndUser(ctx context.Context, teamID, userID uint) (*models.Member, error)
	ListByTeam(ctx context.Context, teamID uint, page Pagination) ([]models.Member, int64, error)
	ListByUser(ctx context.Context, userID uint, page Pagination) ([]models.Member, int64, error)
	CountActiveByTeam(ctx context.Context, teamID uint) (int64, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	GetByID(ctx context.Context, id uint) (*models.Invitation, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Invitation, error)
	GetPendingByTeamAndUser(ctx context.Context, teamID, userID uint) (*models.Invitation, error)
	ListByUserAndState(ctx context.Context, userID uint, state models.InvitationState, page Pagination) ([]models.Invitation, int64, error)
	ListByTeam(ctx context.Context, teamID uint, page Pagination) ([]models.Invitation, int64, error)
	List(ctx context.Context, search string, page Pagination) ([]models.Invitation, int64, error)
	Update(ctx context.Context, invitation *models.Invitation) error
	Delete(ctx context.Context, id uint) error
}

// RatingRepositoryInterface defines the interface for rating repository operations
type RatingRepositoryInterface interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetByID(ctx context.Context, id uint) (*models.Rating, error)
	GetByTriple(ctx context.Context, matchID, evaluatorID, teamID uint) (*models.Rating, error)
	ListByTeam(ctx context.Context, teamID uint, page Pagination) ([]models.Rating, int64, error)
	ListByEvaluator(ctx context.Context, evaluatorID uint, page Pagination) ([]models.Rating, int64, error)
	Update(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, id uint) error
	AggregateForTeam(ctx context.Context, teamID uint) (average float64, count int64, err error)
}

// StatisticsRepositoryInterface defines the interface for team statistics repository operations
type StatisticsRepositoryInterface interface {
	Create(ctx context.Context, stats *models.Statistics) error
	GetByTeamID(ctx context.Context, teamID uint) (*models.Statistics, error)
	GetByTeamIDForUpdate(ctx context.Context, teamID uint) (*models.Statistics, error)
	Update(ctx context.Context, stats *models.Statistics) error
	Delete(ctx context.Context, id uint) error
}

// Store groups the repositories and runs work atomically across them.
// Repositories obtained from the tx Store passed to fn share its transaction.
type Store interface {
	Teams() TeamRepositoryInterface
	Members() MemberRepositoryInterface
	Invitations() InvitationRepositoryInterface
	Ratings() RatingRepositoryInterface
	Statistics() StatisticsRepositoryInterface
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}
