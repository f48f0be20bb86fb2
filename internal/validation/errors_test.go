package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	t.Run("should report single error", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("employee name")

		assert.Contains(t, ve.Error(), "employee name")
		assert.Contains(t, ve.Error(), "required")
	})

	t.Run("should join multiple errors", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("employee name")
		ve.AddInvalidLengthError("password", nil, 4, 255)

		assert.Contains(t, ve.Error(), "multiple validation errors")
		assert.Contains(t, ve.Error(), "employee name")
		assert.Contains(t, ve.Error(), "password")
	})
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddInvalidValueError("status", "bogus", "unknown status")
	assert.True(t, ve.HasErrors())
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidCharacterError("project name", "bad\nname")

	assert.Equal(t, "project name contains invalid characters", ve.GetUserFriendlyMessage())

	ve.AddRequiredError("note")
	message := ve.GetUserFriendlyMessage()
	assert.Contains(t, message, "Multiple validation errors")
	assert.Contains(t, message, "- project name contains invalid characters")
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(errors.New("other")))
	assert.False(t, IsValidationError(nil))
}
