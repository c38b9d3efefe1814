package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundMessage(t *testing.T) {
	err := NewNotFound("Billing service")
	assert.Equal(t, "Billing service not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestValidationFormatting(t *testing.T) {
	err := NewValidation("Invalid entity type. Must be '%s' or '%s'.", "task", "billing")
	assert.Equal(t, "Invalid entity type. Must be 'task' or 'billing'.", err.Error())
	assert.True(t, IsValidation(err))
}

func TestStoreWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStore(cause)
	assert.Equal(t, "connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, NewStore(nil))
}

func TestIsHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading project: %w", NewNotFound("Project"))
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(NewValidation("bad")))
	assert.Equal(t, http.StatusNotFound, StatusCode(NewNotFound("Task")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(NewStore(errors.New("boom"))))
}
