package models

import (
	"time"
)

// BaseModel provides the auto-increment primary key and timestamps shared by most tables
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
