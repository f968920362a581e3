package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCauseInChain(t *testing.T) {
	cause := errors.New("record not found")
	appErr := ErrNotFound(cause)

	assert.True(t, Is(appErr, cause))
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading profile: %w", ErrInsufficientPermissions)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeForbidden, appErr.Code)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestAsAppErrorRejectsPlainErrors(t *testing.T) {
	_, ok := AsAppError(errors.New("disk full"))
	assert.False(t, ok)
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: duplicate key"), CodeAlreadyExists, "user",
		"Email already in use", http.StatusConflict).
		WithDetails(map[string]string{"field": "email"})

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"code":"ALREADY_EXISTS"`)
	assert.Contains(t, body, `"domain":"user"`)
	assert.Contains(t, body, `"field":"email"`)
	assert.NotContains(t, body, "pq: duplicate key")
	assert.NotContains(t, body, "409")
}

func TestErrorStringCarriesDomainAndCause(t *testing.T) {
	appErr := Wrap(errors.New("timeout"), CodeDatabaseError, "job", "Lookup failed", http.StatusInternalServerError)
	msg := appErr.Error()

	assert.Contains(t, msg, "job")
	assert.Contains(t, msg, "DATABASE_ERROR")
	assert.Contains(t, msg, "timeout")
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	details := []map[string]string{{"field": "email", "message": "invalid format"}}
	appErr := ValidationError(details)

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, CodeValidationFailed, appErr.Code)
	assert.NotNil(t, appErr.Details)
}

// The sentinel catalog pins the HTTP status each well-known failure
// renders with.
func TestSentinelStatusMapping(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrUserDeactivated, http.StatusForbidden},
		{ErrInsufficientPermissions, http.StatusForbidden},
		{ErrCannotModifySelf, http.StatusForbidden},
		{ErrProfileNotPublic, http.StatusForbidden},
		{ErrInvalidUserRole, http.StatusBadRequest},
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrAlreadyApplied, http.StatusConflict},
		{ErrJobAlreadySaved, http.StatusConflict},
		{ErrAlreadyReviewed, http.StatusConflict},
		{ErrDuplicateAlert, http.StatusConflict},
		{ErrTooManyRequests, http.StatusTooManyRequests},
		{ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{ErrInvalidFileType, http.StatusUnsupportedMediaType},
		{ErrAIUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.HTTPCode, "sentinel %s", tc.err.Code)
	}
}
