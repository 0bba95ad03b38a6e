package service_test

import (
	"context"
	"testing"

	"team-management-backend/internal/mocks"
	"team-management-backend/internal/repository"

	"go.uber.org/mock/gomock"
)

// storeMocks wires a mock Store whose transactions run fn against the same mock repositories
type storeMocks struct {
	ctrl        *gomock.Controller
	store       *mocks.MockStore
	teams       *mocks.MockTeamRepositoryInterface
	members     *mocks.MockMemberRepositoryInterface
	invitations *mocks.MockInvitationRepositoryInterface
	ratings     *mocks.MockRatingRepositoryInterface
	statistics  *mocks.MockStatisticsRepositoryInterface
}

func newStoreMocks(t *testing.T) *storeMocks {
	ctrl := gomock.NewController(t)
	m := &storeMocks{
		ctrl:        ctrl,
		store:       mocks.NewMockStore(ctrl),
		teams:       mocks.NewMockTeamRepositoryInterface(ctrl),
		members:     mocks.NewMockMemberRepositoryInterface(ctrl),
		invitations: mocks.NewMockInvitationRepositoryInterface(ctrl),
		ratings:     mocks.NewMockRatingRepositoryInterface(ctrl),
		statistics:  mocks.NewMockStatisticsRepositoryInterface(ctrl),
	}

	m.store.EXPECT().Teams().Return(m.teams).AnyTimes()
	m.store.EXPECT().Members().Return(m.members).AnyTimes()
	m.store.EXPECT().Invitations().Return(m.invitations).AnyTimes()
	m.store.EXPECT().Ratings().Return(m.ratings).AnyTimes()
	m.store.EXPECT().Statistics().Return(m.statistics).AnyTimes()
	m.store.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.Store) error) error {
			return fn(m.store)
		}).AnyTimes()

	return m
}

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func stringPtr(v string) *string  { return &v }
func floatPtr(v float64) *float64 { return &v }
func uintPtr(v uint) *uint        { return &v }
