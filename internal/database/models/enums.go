package models

// TeamLevel is the self-declared skill level of a team
type TeamLevel string

const (
	TeamLevelBeginner     TeamLevel = "beginner"
	TeamLevelIntermediate TeamLevel = "intermediate"
	TeamLevelAdvanced     TeamLevel = "advanced"
	TeamLevelProfessional TeamLevel = "professional"
)

// MemberRole is the role a user holds inside a team
type MemberRole string

const (
	MemberRoleCaptain     MemberRole = "captain"
	MemberRoleViceCaptain MemberRole = "vice_captain"
	MemberRolePlayer      MemberRole = "player"
)

// MemberState is the lifecycle state of a membership
type MemberState string

const (
	MemberStateActive    MemberState = "active"
	MemberStateInactive  MemberState = "inactive"
	MemberStateSuspended MemberState = "suspended"
)

// InvitationState is the lifecycle state of an invitation.
// Pending is the only non-terminal state.
type InvitationState string

const (
	InvitationStatePending   InvitationState = "pending"
	InvitationStateAccepted  InvitationState = "accepted"
	InvitationStateRejected  InvitationState = "rejected"
	InvitationStateCancelled InvitationState = "cancelled"
)

// MatchResult is the outcome of a match from the team's point of view
type MatchResult string

const (
	MatchResultWon   MatchResult = "won"
	MatchResultLost  MatchResult = "lost"
	MatchResultDrawn MatchResult = "drawn"
)

// IsValid checks if the TeamLevel is valid
func (l TeamLevel) IsValid() bool {
	switch l {
	case TeamLevelBeginner, TeamLevelIntermediate, TeamLevelAdvanced, TeamLevelProfessional:
		return true
	}
	return false
}

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleCaptain, MemberRoleViceCaptain, MemberRolePlayer:
		return true
	}
	return false
}

// IsValid checks if the MemberState is valid
func (s MemberState) IsValid() bool {
	switch s {
	case MemberStateActive, MemberStateInactive, MemberStateSuspended:
		return true
	}
	return false
}

// IsValid checks if the InvitationState is valid
func (s InvitationState) IsValid() bool {
	switch s {
	case InvitationStatePending, InvitationStateAccepted, InvitationStateRejected, InvitationStateCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further response is accepted in this state
func (s InvitationState) IsTerminal() bool {
	return s == InvitationStateAccepted || s == InvitationStateRejected || s == InvitationStateCancelled
}

// IsValid checks if the MatchResult is valid
func (r MatchResult) IsValid() bool {
	switch r {
	case MatchResultWon, MatchResultLost, MatchResultDrawn:
		return true
	}
	return false
}
