package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniqueToken returns a string no other test run or parallel test has
// put on the board, so search assertions only see this test's data.
func uniqueToken(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
}

func TestJobCreate_RoleGuard(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	seeker := helpers.RegisterSeeker(t, ts)

	body := map[string]interface{}{
		"title":       "Job By Seeker",
		"description": "Seekers cannot post jobs.",
		"company":     "Nope Inc",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", seeker.AccessToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", "", body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestJobCreate_Validation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)

	// Missing company, salary_max below salary_min.
	body := map[string]interface{}{
		"title":       "Broken Posting",
		"description": "Missing required fields.",
		"salary_min":  100,
		"salary_max":  50,
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", employer.AccessToken, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestJobSearch_Filters(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)

	token := uniqueToken("Zephyr")
	helpers.CreateTestJob(t, ts, employer.AccessToken, token+" Backend Engineer", map[string]interface{}{
		"work_mode": "remote",
		"skills":    []string{"go", "postgres"},
	})
	helpers.CreateTestJob(t, ts, employer.AccessToken, token+" Frontend Engineer", map[string]interface{}{
		"work_mode": "onsite",
		"skills":    []string{"typescript"},
	})

	// Free-text search finds both postings.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?search="+token, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list dto.JobListResponse
	helpers.DecodeJSON(t, body, &list)
	assert.Equal(t, int64(2), list.Total)

	// Narrowing by work mode drops the onsite posting.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?search="+token+"&work_mode=remote", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &list)
	require.Equal(t, int64(1), list.Total)
	assert.Contains(t, list.Jobs[0].Title, "Backend")

	// Skills match any of the requested list.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?search="+token+"&skills=typescript,rust", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &list)
	require.Equal(t, int64(1), list.Total)
	assert.Contains(t, list.Jobs[0].Title, "Frontend")
}

func TestJobGet_CountsForeignViews(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)
	job := helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("Viewed")+" Engineer", nil)

	// The owner's own reads do not count.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var got dto.JobResponse
	helpers.DecodeJSON(t, body, &got)
	assert.Equal(t, 0, got.ViewCount)

	// An anonymous read does.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &got)
	assert.Equal(t, 1, got.ViewCount)
}

func TestJobUpdate_OwnerOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	owner := helpers.RegisterEmployer(t, ts)
	rival := helpers.RegisterEmployer(t, ts)
	job := helpers.CreateTestJob(t, ts, owner.AccessToken, uniqueToken("Owned")+" Engineer", nil)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID, rival.AccessToken,
		map[string]interface{}{"title": "Hijacked Posting"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID, owner.AccessToken,
		map[string]interface{}{"title": "Renamed Engineer Role", "salary_max": 1500000})
	require.Equal(t, http.StatusOK, res.StatusCode, "owner update: %s", body)

	var updated dto.JobResponse
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, "Renamed Engineer Role", updated.Title)
	assert.Equal(t, float64(1500000), updated.SalaryMax)
}

// TestJobDelete_Deactivates checks that deleting hides the posting from
// the public but keeps it readable for its owner.
func TestJobDelete_Deactivates(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)

	token := uniqueToken("Gone")
	job := helpers.CreateTestJob(t, ts, employer.AccessToken, token+" Engineer", nil)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+job.ID, employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Public search and public reads no longer see it.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?search="+token, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list dto.JobListResponse
	helpers.DecodeJSON(t, body, &list)
	assert.Equal(t, int64(0), list.Total)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// The owner still sees it, flagged inactive.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var got dto.JobResponse
	helpers.DecodeJSON(t, body, &got)
	assert.False(t, got.IsActive)
}

func TestMyJobs_ListsOwnPostingsOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	alice := helpers.RegisterEmployer(t, ts)
	bob := helpers.RegisterEmployer(t, ts)

	helpers.CreateTestJob(t, ts, alice.AccessToken, uniqueToken("Mine")+" Role A", nil)
	helpers.CreateTestJob(t, ts, alice.AccessToken, uniqueToken("Mine")+" Role B", nil)
	helpers.CreateTestJob(t, ts, bob.AccessToken, uniqueToken("Theirs")+" Role", nil)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/my", alice.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list dto.JobListResponse
	helpers.DecodeJSON(t, body, &list)
	assert.Equal(t, int64(2), list.Total)
	for _, j := range list.Jobs {
		assert.Equal(t, alice.User.ID, j.PostedBy)
	}
}

func TestJobMatch_ScoresSeekerProfile(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)
	seeker := helpers.RegisterSeeker(t, ts)

	job := helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("Match")+" Engineer", map[string]interface{}{
		"skills":    []string{"go", "postgres"},
		"work_mode": "remote",
	})

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profiles/job-seeker", seeker.AccessToken,
		map[string]interface{}{"skills": []string{"go", "postgres"}, "experience_years": 4})
	require.Equal(t, http.StatusOK, res.StatusCode, "profile update: %s", body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/match", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "match: %s", body)

	var match dto.JobMatchResponse
	helpers.DecodeJSON(t, body, &match)
	assert.Equal(t, job.ID, match.JobID)
	assert.GreaterOrEqual(t, match.Score, 50)
	assert.NotEmpty(t, match.Reasons)

	// Employers have no profile to match against.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/match", employer.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
