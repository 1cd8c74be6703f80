package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypePredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading ticket: %w", NewNotFoundError("Ticket not found"))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsForbiddenError(wrapped))
	assert.Equal(t, http.StatusNotFound, GetAppError(wrapped).Code)

	assert.True(t, IsForbiddenError(NewForbiddenError("nope")))
	assert.True(t, IsConflictError(NewConflictError("taken")))
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.False(t, IsAppError(fmt.Errorf("plain")))
}

func TestFieldValidationError(t *testing.T) {
	err := NewFieldValidationError(map[string]string{"username": "taken"})
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "taken", FieldErrors(fmt.Errorf("wrap: %w", err))["username"])
	assert.Nil(t, FieldErrors(fmt.Errorf("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062 (23000): Duplicate entry 'a' for key 'uk'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: follow_edges.user_id")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}

func TestAuthErrorUnwrapsToAppError(t *testing.T) {
	err := NewInvalidCredentialsError()
	assert.Equal(t, http.StatusUnauthorized, GetAppError(err).Code)
	assert.False(t, ShouldLogAuthError(err))
	assert.True(t, ShouldLogAuthError(NewTokenInvalidError()))
	assert.NotNil(t, GetAuthError(fmt.Errorf("wrap: %w", NewSessionExpiredError())))
}
