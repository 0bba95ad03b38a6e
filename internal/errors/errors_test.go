package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "rating"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrStatisticsNotFound))
	})

	t.Run("IsNotFound helper sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("recompute: %w", ErrTeamNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.False(t, IsNotFound(ErrTeamFull))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team", Context: "with this name"}
		assert.Equal(t, "team already exists with this name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "membership", Context: "a"}
		err2 := &AlreadyExistsError{Entity: "membership", Context: "b"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("IsConflict covers capacity and uniqueness", func(t *testing.T) {
		assert.True(t, IsConflict(ErrTeamFull))
		assert.True(t, IsConflict(ErrInvitationAlreadyAnswered))
		assert.True(t, IsConflict(ErrRatingExists))
		assert.True(t, IsConflict(fmt.Errorf("accept: %w", ErrTeamFull)))
		assert.False(t, IsConflict(ErrNotRatingOwner))
	})

	t.Run("errors.Is distinguishes messages", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamFull, NewConflictError(ErrTeamFull.Message)))
		assert.False(t, errors.Is(ErrTeamFull, ErrInvitationAlreadyAnswered))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "result", Message: "must be one of won, lost, drawn"}
		assert.Equal(t, "validation error: result - must be one of won, lost, drawn", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidMatchResult))
		assert.True(t, IsValidation(NewValidationError("score", "out of range")))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	assert.Equal(t, "not allowed to respond to this invitation", ErrNotAllowedToRespond.Error())
	assert.True(t, IsAuthorization(ErrNotRatingOwner))
	assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
	assert.False(t, IsAuthorization(ErrTeamFull))
}

func TestConfigurationError(t *testing.T) {
	assert.True(t, IsConfiguration(ErrUnknownIdentityProvider))
	assert.True(t, IsConfiguration(NewConfigurationError("missing")))
	assert.False(t, IsConfiguration(ErrTeamNotFound))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("sport type")
		assert.Equal(t, "sport type not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("team", "with this name")
		assert.Equal(t, "team already exists with this name", err.Error())
		assert.True(t, IsConflict(err))
	})
}
