package models

import (
	"time"
)

// Member is a user's membership in a team. A user holds at most one
// membership per team regardless of its state.
type Member struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	TeamID       uint        `json:"team_id" gorm:"not null;uniqueIndex:idx_team_members_team_user"`
	UserID       uint        `json:"user_id" gorm:"not null;uniqueIndex:idx_team_members_team_user;index"`
	Role         MemberRole  `json:"role" gorm:"type:varchar(20);not null;default:'player'"`
	JerseyNumber *int        `json:"jersey_number,omitempty"`
	Position     string      `json:"position" gorm:"size:100"`
	State        MemberState `json:"state" gorm:"type:varchar(20);not null;default:'active';index"`
	JoinedAt     time.Time   `json:"joined_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "team_members"
}
