package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMatchesCategoryAndCause(t *testing.T) {
	err := NewValidationError(ErrInvalidDayOfWeek)
	wrapped := fmt.Errorf("room availability: %w", err)

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))
	assert.True(t, errors.Is(wrapped, ErrInvalidDayOfWeek))
	assert.False(t, errors.Is(wrapped, ErrBadRequest))
	assert.Equal(t, "room availability: "+ErrInvalidDayOfWeek.Error(), wrapped.Error())
}

func TestBadRequestError(t *testing.T) {
	err := NewBadRequestError("professor id must be positive")
	assert.True(t, errors.Is(err, ErrBadRequest))
	assert.Equal(t, "professor id must be positive", err.Error())
}

func TestIsChecksList(t *testing.T) {
	err := fmt.Errorf("x: %w", ErrResourceNotFound)
	assert.True(t, Is(err, ErrBadRequest, ErrResourceNotFound))
	assert.False(t, Is(err, ErrBadRequest, ErrValidationFailed))
}
