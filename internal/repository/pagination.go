package repository

import (
	"gorm.io/gorm"
)

// DefaultOrder is applied when no explicit sort was requested
const DefaultOrder = "id DESC"

// Pagination is a resolved page window. Order must come from a whitelist
// since it is interpolated into SQL.
type Pagination struct {
	Limit  int
	Offset int
	Order  string
}

func (p Pagination) apply(db *gorm.DB) *gorm.DB {
	order := p.Order
	if order == "" {
		order = DefaultOrder
	}
	db = db.Order(order)
	if p.Limit > 0 {
		db = db.Limit(p.Limit).Offset(p.Offset)
	}
	return db
}

// paginate counts rows matching query and loads the requested window into dest
func paginate[T any](query *gorm.DB, page Pagination) ([]T, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	if err := page.apply(query.Session(&gorm.Session{})).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
