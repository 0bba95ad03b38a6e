package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm handle, which is either the
// root connection or an open transaction.
type GormStore struct {
	db          *gorm.DB
	teams       *TeamRepository
	members     *MemberRepository
	invitations *InvitationRepository
	ratings     *RatingRepository
	statistics  *StatisticsRepository
}

// NewStore creates a new store over db
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:          db,
		teams:       NewTeamRepository(db),
		members:     NewMemberRepository(db),
		invitations: NewInvitationRepository(db),
		ratings:     NewRatingRepository(db),
		statistics:  NewStatisticsRepository(db),
	}
}

func (s *GormStore) Teams() TeamRepositoryInterface             { return s.teams }
func (s *GormStore) Members() MemberRepositoryInterface         { return s.members }
func (s *GormStore) Invitations() InvitationRepositoryInterface { return s.invitations }
func (s *GormStore) Ratings() RatingRepositoryInterface         { return s.ratings }
func (s *GormStore) Statistics() StatisticsRepositoryInterface  { return s.statistics }

// WithinTransaction runs fn in a database transaction. Returning an error
// from fn rolls back every write made through tx.
func (s *GormStore) WithinTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
