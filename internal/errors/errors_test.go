package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "room"}
		assert.Equal(t, "room not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "room"}
		err2 := &NotFoundError{Entity: "room"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "room"}
		err2 := &NotFoundError{Entity: "object"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrRoomNotFound, ErrRoomNotFound))
		assert.False(t, errors.Is(ErrRoomNotFound, ErrObjectNotFound))
		assert.False(t, errors.Is(ErrPlacementNotFound, ErrObjectNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to update placement: %w", ErrPlacementNotFound)
		assert.True(t, errors.Is(wrapped, ErrPlacementNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrObjectNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrRoomNotFound)))
		assert.False(t, IsNotFound(ErrSeedCatalogEmpty))
		assert.False(t, IsNotFound(nil))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "width", Message: "must be positive"}
		assert.Equal(t, "validation error: width - must be positive", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "body is empty"}
		assert.Equal(t, "validation error: body is empty", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("x", "required")))
		assert.False(t, IsValidation(ErrRoomNotFound))
	})
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("PORT must be numeric")
	assert.Equal(t, "PORT must be numeric", err.Error())
	assert.True(t, IsConfiguration(err))
	assert.False(t, IsConfiguration(ErrObjectNotFound))
}
