package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeekerProfile_UpsertAndCompletion fills the profile in two steps
// and watches the completion percentage climb.
func TestSeekerProfile_UpsertAndCompletion(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	seeker := helpers.RegisterSeeker(t, ts)

	// A fresh account starts with an empty profile.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/job-seeker", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var profile dto.JobSeekerProfileResponse
	helpers.DecodeJSON(t, body, &profile)
	assert.Equal(t, 0, profile.ProfileCompletionPct)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/job-seeker", seeker.AccessToken,
		map[string]interface{}{
			"headline":         "Backend engineer",
			"summary":          "Six years building APIs.",
			"skills":           []string{"go", "postgres"},
			"current_location": "Pune",
			"expected_salary":  1500000,
		})
	require.Equal(t, http.StatusOK, res.StatusCode, "update: %s", body)
	helpers.DecodeJSON(t, body, &profile)
	assert.Equal(t, 55, profile.ProfileCompletionPct)

	// History entries round-trip through their JSON columns.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/job-seeker", seeker.AccessToken,
		map[string]interface{}{
			"education": []map[string]interface{}{
				{"degree": "B.Tech", "institution": "IIT Bombay", "year_from": 2014, "year_to": 2018},
			},
			"work_experience": []map[string]interface{}{
				{"title": "Engineer", "company": "Previous Corp", "year_from": 2018, "year_to": 2023},
			},
		})
	require.Equal(t, http.StatusOK, res.StatusCode, "history update: %s", body)
	helpers.DecodeJSON(t, body, &profile)
	assert.Equal(t, 85, profile.ProfileCompletionPct)
	require.Len(t, profile.Education, 1)
	assert.Equal(t, "IIT Bombay", profile.Education[0].Institution)
	require.Len(t, profile.WorkExperience, 1)
	assert.Equal(t, "Previous Corp", profile.WorkExperience[0].Company)

	// Earlier fields survived the partial update.
	assert.Equal(t, "Backend engineer", profile.Headline)
}

func TestSeekerProfile_Visibility(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	seeker := helpers.RegisterSeeker(t, ts)
	employer := helpers.RegisterEmployer(t, ts)

	viewPath := "/api/v1/profiles/job-seeker/" + seeker.User.ID

	// Profiles are public by default.
	res, body := ts.SendRequest(t, http.MethodGet, viewPath, employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "public view: %s", body)

	var viewed dto.JobSeekerProfileResponse
	helpers.DecodeJSON(t, body, &viewed)
	assert.Equal(t, 1, viewed.ProfileViews)

	// The owner was told about the view.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "profile_viewed")

	// Going private hides the profile from recruiters.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/job-seeker", seeker.AccessToken,
		map[string]interface{}{"is_public": false})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, viewPath, employer.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "private")

	// Seekers cannot browse each other at all.
	other := helpers.RegisterSeeker(t, ts)
	res, _ = ts.SendRequest(t, http.MethodGet, viewPath, other.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestCandidateSearch(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)

	// A skill token unique to this test isolates it from parallel data.
	skill := strings.ToLower(uniqueToken("skill"))

	visible := helpers.RegisterSeeker(t, ts)
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/job-seeker", visible.AccessToken,
		map[string]interface{}{"skills": []string{skill}, "experience_years": 5, "headline": "Visible"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	hidden := helpers.RegisterSeeker(t, ts)
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/job-seeker", hidden.AccessToken,
		map[string]interface{}{"skills": []string{skill}, "is_public": false})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/candidates?skills="+skill, employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "search: %s", body)

	var result dto.CandidateListResponse
	helpers.DecodeJSON(t, body, &result)
	require.Equal(t, 1, result.Total, "private profiles must stay out of search")
	assert.Equal(t, visible.User.ID, result.Candidates[0].UserID)

	// Experience floor filters the only candidate out.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/candidates?skills="+skill+"&min_experience=10",
		employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &result)
	assert.Equal(t, 0, result.Total)

	// Seekers have no access to candidate search.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/candidates?skills="+skill, visible.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRecruiterProfile_Upsert(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/recruiter", employer.AccessToken,
		map[string]interface{}{
			"company_name": "Hiring Corp",
			"designation":  "Talent Lead",
			"industry":     "Software",
		})
	require.Equal(t, http.StatusOK, res.StatusCode, "update: %s", body)

	var profile dto.RecruiterProfileResponse
	helpers.DecodeJSON(t, body, &profile)
	assert.Equal(t, "Hiring Corp", profile.CompanyName)
	assert.Equal(t, "Talent Lead", profile.Designation)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/recruiter", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &profile)
	assert.Equal(t, "Hiring Corp", profile.CompanyName)

	// Seekers have no recruiter profile.
	seeker := helpers.RegisterSeeker(t, ts)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/recruiter", seeker.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
