package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness violation
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a business rule that blocks the operation in the
// current state of the data (team full, invitation already answered, ...)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is matches conflict errors carrying the same message
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents ownership and permission violations
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is matches authorization errors carrying the same message
func (e *AuthorizationError) Is(target error) bool {
	t, ok := target.(*AuthorizationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrMemberNotFound     = &NotFoundError{Entity: "membership"}
	ErrInvitationNotFound = &NotFoundError{Entity: "invitation"}
	ErrRatingNotFound     = &NotFoundError{Entity: "rating"}
	ErrStatisticsNotFound = &NotFoundError{Entity: "team statistics"}
)

// Already Exists Errors
var (
	ErrTeamExists              = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrMemberExists            = &AlreadyExistsError{Entity: "membership", Context: "for this user in the team"}
	ErrPendingInvitationExists = &AlreadyExistsError{Entity: "pending invitation", Context: "for this user in the team"}
	ErrRatingExists            = &AlreadyExistsError{Entity: "rating", Context: "from this evaluator for this team in the match"}
	ErrStatisticsExist         = &AlreadyExistsError{Entity: "team statistics", Context: "for this team"}
)

// Business Logic Errors
var (
	ErrTeamFull                   = &ConflictError{Message: "team has reached its maximum number of members"}
	ErrInvitationAlreadyAnswered  = &ConflictError{Message: "invitation has already been answered"}
	ErrUserAlreadyMember          = &ConflictError{Message: "user is already a member of this team"}
	ErrCapacityBelowRoster        = &ConflictError{Message: "max_members cannot be lower than the number of active members"}
	ErrInvalidMatchResult         = &ValidationError{Field: "result", Message: "must be one of won, lost, drawn"}
	ErrInvalidInvitationResponse  = &ValidationError{Field: "status", Message: "must be one of accepted, rejected, cancelled"}
	ErrNegativeGoals              = &ValidationError{Field: "goals", Message: "goals cannot be negative"}
	ErrTooManyGoals               = &ValidationError{Field: "goals", Message: "goals per match cannot exceed 100"}
	ErrStatisticsOverflow         = &ValidationError{Field: "goals", Message: "match would overflow the team counters"}
	ErrIdentityProviderNotEnabled = errors.New("identity provider is not configured")
)

// Authorization Errors
var (
	ErrNotRatingOwner      = &AuthorizationError{Message: "only the original evaluator can modify this rating"}
	ErrNotAllowedToRespond = &AuthorizationError{Message: "not allowed to respond to this invitation"}
)

// Configuration Errors
var (
	ErrUnknownIdentityProvider = &ConfigurationError{Message: "IDENTITY_PROVIDER must be one of http, ldap, none"}
	ErrIdentityBaseURLMissing  = &ConfigurationError{Message: "USER_API_BASE_URL is required when IDENTITY_PROVIDER=http"}
	ErrIdentityLDAPHostMissing = &ConfigurationError{Message: "LDAP_HOST is required when IDENTITY_PROVIDER=ldap"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsConflict checks if an error is a ConflictError or an AlreadyExistsError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr) || IsAlreadyExists(err)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
