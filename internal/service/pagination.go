package service

import (
	"fmt"
	"math"
	"strings"

	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest carries the raw paging parameters of a list call.
// Sort has the form "field" or "field,asc|desc".
type PageRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Sort     string `form:"sort"`
}

// Per-entity sortable columns. Only these names reach the ORDER BY clause.
var (
	teamSortFields       = []string{"id", "name", "city", "average_rating", "created_at", "max_members"}
	memberSortFields     = []string{"id", "user_id", "role", "state", "jersey_number", "joined_at"}
	invitationSortFields = []string{"id", "created_at", "state", "responded_at"}
	ratingSortFields     = []string{"id", "score", "created_at", "match_id"}
)

// normalize applies defaults and caps the page size
func (p PageRequest) normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// resolve turns the request into a repository window, rejecting unknown sort
// fields and pages whose offset does not fit an int
func (p PageRequest) resolve(allowed []string) (PageRequest, repository.Pagination, error) {
	p = p.normalize()
	if p.Page-1 > math.MaxInt/p.PageSize {
		return p, repository.Pagination{}, apperrors.NewValidationError("page", "is too large")
	}
	page := repository.Pagination{
		Limit:  p.PageSize,
		Offset: (p.Page - 1) * p.PageSize,
	}

	if strings.TrimSpace(p.Sort) == "" {
		return p, page, nil
	}

	parts := strings.SplitN(p.Sort, ",", 2)
	field := strings.ToLower(strings.TrimSpace(parts[0]))
	direction := "ASC"
	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc":
		case "desc":
			direction = "DESC"
		default:
			return p, page, apperrors.NewValidationError("sort", "direction must be asc or desc")
		}
	}

	for _, candidate := range allowed {
		if candidate == field {
			page.Order = fmt.Sprintf("%s %s", field, direction)
			return p, page, nil
		}
	}
	return p, page, apperrors.NewValidationError("sort", fmt.Sprintf("cannot sort by %q", field))
}
