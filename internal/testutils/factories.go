package testutils

import (
	"fmt"
	"sync/atomic"

	"team-management-backend/internal/database/models"
)

var sequence atomic.Uint32

func nextSeq() uint {
	return uint(sequence.Add(1))
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values and a unique name
func (f *TeamFactory) Create() *models.Team {
	n := nextSeq()
	return &models.Team{
		Name:             fmt.Sprintf("Team %d", n),
		CreatedBy:        1000 + n,
		SportTypeID:      1,
		Description:      "A test team for testing purposes",
		PrimaryColor:     "#FF0000",
		SecondaryColor:   "#FFF",
		City:             "Springfield",
		Level:            models.TeamLevelIntermediate,
		MaxMembers:       15,
		RequiresApproval: true,
		Active:           true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithCity sets a custom city for the team
func (f *TeamFactory) WithCity(city string) *models.Team {
	team := f.Create()
	team.City = city
	return team
}

// WithMaxMembers sets the roster cap for the team
func (f *TeamFactory) WithMaxMembers(max int) *models.Team {
	team := f.Create()
	team.MaxMembers = max
	return team
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates an active player membership for a fresh user id
func (f *MemberFactory) Create(teamID uint) *models.Member {
	return &models.Member{
		TeamID:   teamID,
		UserID:   5000 + nextSeq(),
		Role:     models.MemberRolePlayer,
		Position: "Midfielder",
		State:    models.MemberStateActive,
	}
}

// ForUser creates an active player membership for the given user
func (f *MemberFactory) ForUser(teamID, userID uint) *models.Member {
	member := f.Create(teamID)
	member.UserID = userID
	return member
}

// WithState creates a membership in the given state
func (f *MemberFactory) WithState(teamID uint, state models.MemberState) *models.Member {
	member := f.Create(teamID)
	member.State = state
	return member
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending team-initiated invitation
func (f *InvitationFactory) Create(teamID, invitedUserID uint) *models.Invitation {
	return &models.Invitation{
		TeamID:        teamID,
		InvitedUserID: invitedUserID,
		SenderUserID:  9000 + nextSeq(),
		Message:       "Join us for the season",
		State:         models.InvitationStatePending,
	}
}

// JoinRequest creates a pending invitation sent by the invited user
func (f *InvitationFactory) JoinRequest(teamID, userID uint) *models.Invitation {
	invitation := f.Create(teamID, userID)
	invitation.SenderUserID = userID
	invitation.Message = "Can I join?"
	return invitation
}

// RatingFactory provides methods to create test Rating data
type RatingFactory struct{}

// NewRatingFactory creates a new RatingFactory
func NewRatingFactory() *RatingFactory {
	return &RatingFactory{}
}

// Create creates a rating without a match for a fresh evaluator
func (f *RatingFactory) Create(teamID uint, score float64) *models.Rating {
	return &models.Rating{
		TeamID:      teamID,
		EvaluatorID: 7000 + nextSeq(),
		Score:       score,
		Strengths:   "Pressing",
		Comment:     "Good game",
	}
}

// ForMatch creates a rating tied to a match from the given evaluator
func (f *RatingFactory) ForMatch(teamID, evaluatorID, matchID uint, score float64) *models.Rating {
	rating := f.Create(teamID, score)
	rating.EvaluatorID = evaluatorID
	rating.MatchID = &matchID
	return rating
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Team       *TeamFactory
	Member     *MemberFactory
	Invitation *InvitationFactory
	Rating     *RatingFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:       NewTeamFactory(),
		Member:     NewMemberFactory(),
		Invitation: NewInvitationFactory(),
		Rating:     NewRatingFactory(),
	}
}
