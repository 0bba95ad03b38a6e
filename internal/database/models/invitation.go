package models

import (
	"time"
)

// Invitation links a team and a user until it is answered. When the sender
// is the invited user the invitation is a join request.
type Invitation struct {
	BaseModel
	TeamID          uint            `json:"team_id" gorm:"not null;index;uniqueIndex:idx_team_invitations_pending,where:state = 'pending'"`
	InvitedUserID   uint            `json:"invited_user_id" gorm:"not null;index;uniqueIndex:idx_team_invitations_pending,where:state = 'pending'"`
	SenderUserID    uint            `json:"sender_user_id" gorm:"not null"`
	ResponderUserID *uint           `json:"responder_user_id,omitempty"`
	Message         string          `json:"message" gorm:"size:500"`
	State           InvitationState `json:"state" gorm:"type:varchar(20);not null;default:'pending';index"`
	RespondedAt     *time.Time      `json:"responded_at,omitempty"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "team_invitations"
}

// IsJoinRequest reports whether the invited user asked to join the team themself
func (i *Invitation) IsJoinRequest() bool {
	return i.SenderUserID == i.InvitedUserID
}
