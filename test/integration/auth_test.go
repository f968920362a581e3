package integration_test

import (
	"net/http"
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterAndLoginFlow walks the happy path: register, read the
// own account, log in again with the same credentials.
func TestRegisterAndLoginFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("flow")

	auth := helpers.RegisterUser(t, ts, "Flow Tester", email, models.UserRoleJobSeeker)
	assert.Equal(t, email, auth.User.Email)
	assert.Equal(t, models.UserRoleJobSeeker, auth.User.Role)
	assert.True(t, auth.User.IsActive)

	// The access token from registration works immediately.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", auth.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, email)

	// A registered seeker gets an empty profile to fill in later.
	var me dto.UserResponse
	helpers.DecodeJSON(t, body, &me)
	require.NotNil(t, me.Seeker)
	assert.True(t, me.Seeker.IsPublic)

	login, status := helpers.Login(t, ts, email, helpers.TestPassword)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEqual(t, auth.RefreshToken, login.RefreshToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("dup")
	helpers.RegisterUser(t, ts, "First User", email, models.UserRoleJobSeeker)

	body := map[string]interface{}{
		"email":     email,
		"password":  helpers.TestPassword,
		"full_name": "Second User",
		"role":      "employer",
	}
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, resBody, "Email already in use")
}

func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	body := map[string]interface{}{
		"email":     helpers.UniqueEmail("weak"),
		"password":  "short",
		"full_name": "Weak Password",
		"role":      "job_seeker",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	body := map[string]interface{}{
		"email":     helpers.UniqueEmail("sneaky"),
		"password":  helpers.TestPassword,
		"full_name": "Sneaky Admin",
		"role":      "admin",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("badpw")
	helpers.RegisterUser(t, ts, "Bad Password", email, models.UserRoleJobSeeker)

	_, status := helpers.Login(t, ts, email, "Wr0ng!password")
	assert.Equal(t, http.StatusUnauthorized, status)

	_, status = helpers.Login(t, ts, helpers.UniqueEmail("ghost"), helpers.TestPassword)
	assert.Equal(t, http.StatusUnauthorized, status, "unknown email must look like a bad password")
}

// TestRefreshRotation checks that a refresh token works exactly once.
func TestRefreshRotation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	auth := helpers.RegisterSeeker(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "",
		map[string]interface{}{"refresh_token": auth.RefreshToken})
	require.Equal(t, http.StatusOK, res.StatusCode, "first refresh: %s", body)

	var rotated dto.AuthResponse
	helpers.DecodeJSON(t, body, &rotated)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, auth.RefreshToken, rotated.RefreshToken)

	// The old token was revoked by the rotation.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "",
		map[string]interface{}{"refresh_token": auth.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// The new one still works.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "",
		map[string]interface{}{"refresh_token": rotated.RefreshToken})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	auth := helpers.RegisterSeeker(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "",
		map[string]interface{}{"refresh_token": auth.RefreshToken})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "",
		map[string]interface{}{"refresh_token": auth.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Logging out twice is fine; the client cannot tell the difference.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "",
		map[string]interface{}{"refresh_token": auth.RefreshToken})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := helpers.UniqueEmail("chpw")
	auth := helpers.RegisterUser(t, ts, "Password Changer", email, models.UserRoleJobSeeker)

	const newPassword = "An0ther!secret"
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me/password", auth.AccessToken,
		map[string]interface{}{"current_password": helpers.TestPassword, "new_password": newPassword})
	require.Equal(t, http.StatusOK, res.StatusCode, "change password: %s", body)

	_, status := helpers.Login(t, ts, email, helpers.TestPassword)
	assert.Equal(t, http.StatusUnauthorized, status, "old password must stop working")

	_, status = helpers.Login(t, ts, email, newPassword)
	assert.Equal(t, http.StatusOK, status)

	// Wrong current password is rejected.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/users/me/password", auth.AccessToken,
		map[string]interface{}{"current_password": "Wr0ng!password", "new_password": "Y3tAnother!pw"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
