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

func TestCompanyCreate_AndDuplicateName(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)

	name := uniqueToken("Acme")
	company := helpers.CreateTestCompany(t, ts, employer.AccessToken, name)
	assert.Equal(t, name, company.Name)
	assert.Equal(t, models.VerificationStatusPending, company.VerificationStatus)
	assert.Equal(t, employer.User.ID, company.OwnerID)

	// Names are unique across the platform.
	other := helpers.RegisterEmployer(t, ts)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/companies", other.AccessToken,
		map[string]interface{}{"name": name})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "already exists")

	// Seekers cannot register companies.
	seeker := helpers.RegisterSeeker(t, ts)
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/companies", seeker.AccessToken,
		map[string]interface{}{"name": uniqueToken("Seeker Co")})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestCompanyList_PublicSearch(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)
	name := uniqueToken("Searchable")
	helpers.CreateTestCompany(t, ts, employer.AccessToken, name)

	// No token needed for the directory.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/companies?search="+name, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list dto.CompanyListResponse
	helpers.DecodeJSON(t, body, &list)
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, name, list.Companies[0].Name)
}

func TestCompanyUpdate_OwnerOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	owner := helpers.RegisterEmployer(t, ts)
	rival := helpers.RegisterEmployer(t, ts)
	company := helpers.CreateTestCompany(t, ts, owner.AccessToken, uniqueToken("Guarded"))

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/companies/"+company.ID, rival.AccessToken,
		map[string]interface{}{"description": "Hostile takeover"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/companies/"+company.ID, owner.AccessToken,
		map[string]interface{}{"description": "Updated description", "size": "51-200"})
	require.Equal(t, http.StatusOK, res.StatusCode, "owner update: %s", body)

	var updated dto.CompanyResponse
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, "Updated description", updated.Description)
	assert.Equal(t, "51-200", updated.Size)
}

// TestCompanyVerification_Flow files a verification request and has an
// admin approve it.
func TestCompanyVerification_Flow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	owner := helpers.RegisterEmployer(t, ts)
	admin := helpers.RegisterAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts, owner.AccessToken, uniqueToken("Verified"))

	documents := map[string]interface{}{
		"documents": []map[string]interface{}{
			{"name": "registration.pdf", "url": "https://example.com/registration.pdf"},
		},
		"note": "Incorporation certificate attached.",
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/companies/"+company.ID+"/verification",
		owner.AccessToken, documents)
	require.Equal(t, http.StatusCreated, res.StatusCode, "request: %s", body)

	var verification dto.VerificationResponse
	helpers.DecodeJSON(t, body, &verification)
	assert.Equal(t, models.VerificationStatusPending, verification.Status)

	// One open request per company.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/companies/"+company.ID+"/verification",
		owner.AccessToken, documents)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// The admin approves; the decision lands on the company record.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/verifications/"+verification.ID,
		admin.AccessToken, map[string]interface{}{"approve": true, "note": "Documents check out."})
	require.Equal(t, http.StatusOK, res.StatusCode, "resolve: %s", body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/companies/"+company.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var got dto.CompanyResponse
	helpers.DecodeJSON(t, body, &got)
	assert.Equal(t, models.VerificationStatusApproved, got.VerificationStatus)

	// The requester heard about the decision.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", owner.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "company_verification")

	// A resolved request cannot be resolved again.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/verifications/"+verification.ID,
		admin.AccessToken, map[string]interface{}{"approve": false})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// A verified company cannot file another request.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/companies/"+company.ID+"/verification",
		owner.AccessToken, documents)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestAdminEndpoints_RejectNonAdmins(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", employer.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/verifications", employer.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAdmin_UserModeration(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	admin := helpers.RegisterAdmin(t, ts)
	email := helpers.UniqueEmail("moderated")
	target := helpers.RegisterUser(t, ts, "Moderated User", email, models.UserRoleJobSeeker)

	// Deactivation locks the account out.
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/users/"+target.User.ID+"/status",
		admin.AccessToken, map[string]interface{}{"is_active": false})
	require.Equal(t, http.StatusOK, res.StatusCode, "deactivate: %s", body)

	_, status := helpers.Login(t, ts, email, helpers.TestPassword)
	assert.Equal(t, http.StatusForbidden, status)

	// Deactivation revoked the refresh token, so the session cannot renew.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "",
		map[string]interface{}{"refresh_token": target.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Reactivation restores access.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/users/"+target.User.ID+"/status",
		admin.AccessToken, map[string]interface{}{"is_active": true})
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, status = helpers.Login(t, ts, email, helpers.TestPassword)
	assert.Equal(t, http.StatusOK, status)
}
