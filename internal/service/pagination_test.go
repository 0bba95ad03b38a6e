package service

import (
	"math"
	"testing"

	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		req      PageRequest
		wantPage int
		wantSize int
		want     repository.Pagination
	}{
		{"defaults", PageRequest{}, 1, DefaultPageSize, repository.Pagination{Limit: DefaultPageSize}},
		{"third page", PageRequest{Page: 3, PageSize: 10}, 3, 10, repository.Pagination{Limit: 10, Offset: 20}},
		{"capped size", PageRequest{PageSize: 1000}, 1, MaxPageSize, repository.Pagination{Limit: MaxPageSize}},
		{"sort ascending by default", PageRequest{Sort: "name"}, 1, DefaultPageSize, repository.Pagination{Limit: DefaultPageSize, Order: "name ASC"}},
		{"sort descending", PageRequest{Sort: " Average_Rating , DESC"}, 1, DefaultPageSize, repository.Pagination{Limit: DefaultPageSize, Order: "average_rating DESC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, window, err := tt.req.resolve(teamSortFields)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantSize, page.PageSize)
			assert.Equal(t, tt.want, window)
		})
	}
}

func TestPageRequest_ResolveRejectsUnknownSort(t *testing.T) {
	_, _, err := PageRequest{Sort: "name; DROP TABLE teams"}.resolve(teamSortFields)
	assert.True(t, apperrors.IsValidation(err))

	_, _, err = PageRequest{Sort: "score"}.resolve(teamSortFields)
	assert.True(t, apperrors.IsValidation(err))

	_, _, err = PageRequest{Sort: "score,up"}.resolve(ratingSortFields)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPageRequest_ResolveRejectsOverflowingPage(t *testing.T) {
	_, _, err := PageRequest{Page: math.MaxInt}.resolve(teamSortFields)
	assert.True(t, apperrors.IsValidation(err))

	_, _, err = PageRequest{Page: math.MaxInt/10 + 2, PageSize: 10}.resolve(teamSortFields)
	assert.True(t, apperrors.IsValidation(err))

	last := math.MaxInt/10 + 1
	_, window, err := PageRequest{Page: last, PageSize: 10}.resolve(teamSortFields)
	require.NoError(t, err)
	assert.Equal(t, (last-1)*10, window.Offset)
	assert.Positive(t, window.Offset)
}
