package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("name", "is required"), http.StatusBadRequest},
		{"not found", ErrClubNotFound, http.StatusNotFound},
		{"conflict", ErrEmailTaken, http.StatusConflict},
		{"auth", ErrInvalidCredentials, http.StatusForbidden},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"wrapped conflict", fmt.Errorf("create club: %w", ErrClubExists), http.StatusConflict},
		{"plain error", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrClubNotFound)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
	assert.True(t, IsConflict(ErrClubExists))
	assert.True(t, IsAuth(ErrInvalidCredentials))
	assert.True(t, IsValidation(NewValidationError("", "bad")))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation failed: email - is required", NewValidationError("email", "is required").Error())
	assert.Equal(t, "validation failed: bad input", NewValidationError("", "bad input").Error())
	assert.Equal(t, "club not found", NewNotFoundError("club", "").Error())
	assert.Equal(t, "user already exists", NewConflictError("user", "").Error())

	inner := fmt.Errorf("connection refused")
	ie := NewInternalError("failed to load club", inner)
	assert.Equal(t, "failed to load club: connection refused", ie.Error())
	assert.ErrorIs(t, ie, inner)
}
