package helpers

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/auth"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"

	"github.com/stretchr/testify/require"
)

// TestPassword satisfies the registration password policy.
const TestPassword = "Sup3rSecret!pw"

var emailCounter atomic.Int64

// UniqueEmail returns an address no other test in this run has used.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d_%d@test.local", prefix, time.Now().UnixNano(), emailCounter.Add(1))
}

// RegisterUser creates an account through the public API and returns
// the auth payload, so the caller holds valid tokens.
func RegisterUser(t *testing.T, ts *TestServer, fullName, email string, role models.UserRole) *dto.AuthResponse {
	t.Helper()

	body := map[string]interface{}{
		"email":     email,
		"password":  TestPassword,
		"full_name": fullName,
		"role":      role,
	}
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration failed: %s", resBody)

	var auth dto.AuthResponse
	DecodeJSON(t, resBody, &auth)
	require.NotEmpty(t, auth.AccessToken)
	require.NotEmpty(t, auth.RefreshToken)
	return &auth
}

// RegisterSeeker registers a job seeker with a unique email.
func RegisterSeeker(t *testing.T, ts *TestServer) *dto.AuthResponse {
	t.Helper()
	return RegisterUser(t, ts, "Test Seeker", UniqueEmail("seeker"), models.UserRoleJobSeeker)
}

// RegisterEmployer registers an employer with a unique email.
func RegisterEmployer(t *testing.T, ts *TestServer) *dto.AuthResponse {
	t.Helper()
	return RegisterUser(t, ts, "Test Employer", UniqueEmail("employer"), models.UserRoleEmployer)
}

// RegisterAdmin inserts an admin straight into the database (the API
// never registers admins) and logs in through the API.
func RegisterAdmin(t *testing.T, ts *TestServer) *dto.AuthResponse {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	require.NoError(t, err)

	email := UniqueEmail("admin")
	admin := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test Admin",
		Role:         models.UserRoleAdmin,
		IsActive:     true,
		IsVerified:   true,
	}
	require.NoError(t, ts.DB.Create(admin).Error)

	authResp, status := Login(t, ts, email, TestPassword)
	require.Equal(t, http.StatusOK, status)
	return authResp
}

// Login authenticates an existing account through the API.
func Login(t *testing.T, ts *TestServer, email, password string) (*dto.AuthResponse, int) {
	t.Helper()

	body := map[string]interface{}{"email": email, "password": password}
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", body)
	if res.StatusCode != http.StatusOK {
		return nil, res.StatusCode
	}

	var auth dto.AuthResponse
	DecodeJSON(t, resBody, &auth)
	return &auth, res.StatusCode
}

// CreateTestJob posts a job as the given employer and returns it.
func CreateTestJob(t *testing.T, ts *TestServer, employerToken, title string, overrides map[string]interface{}) *dto.JobResponse {
	t.Helper()

	body := map[string]interface{}{
		"title":       title,
		"description": "We are hiring. Responsibilities include building and shipping features.",
		"company":     "Test Company Inc",
		"location":    "Bengaluru",
		"salary_min":  600000,
		"salary_max":  1200000,
		"skills":      []string{"go", "postgres"},
		"job_type":    string(models.JobTypeFullTime),
		"work_mode":   string(models.WorkModeRemote),
	}
	for k, v := range overrides {
		body[k] = v
	}

	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", employerToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "job creation failed: %s", resBody)

	var job dto.JobResponse
	DecodeJSON(t, resBody, &job)
	require.NotEmpty(t, job.ID)
	return &job
}

// ApplyToJob submits an application as the given seeker.
func ApplyToJob(t *testing.T, ts *TestServer, seekerToken, jobID string) *dto.ApplicationResponse {
	t.Helper()

	body := map[string]interface{}{
		"job_id":       jobID,
		"cover_letter": "I would be a great fit for this position.",
	}
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/applications", seekerToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "application failed: %s", resBody)

	var application dto.ApplicationResponse
	DecodeJSON(t, resBody, &application)
	return &application
}

// CreateTestCompany registers a company owned by the employer.
func CreateTestCompany(t *testing.T, ts *TestServer, employerToken, name string) *dto.CompanyResponse {
	t.Helper()

	body := map[string]interface{}{
		"name":        name,
		"description": "A company created by the integration suite.",
		"industry":    "Software",
		"website":     "https://example.com",
	}
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/companies", employerToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "company creation failed: %s", resBody)

	var company dto.CompanyResponse
	DecodeJSON(t, resBody, &company)
	return &company
}
