package integration_test

import (
	"net/http"
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/test/helpers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveJob_AndDuplicate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)
	seeker := helpers.RegisterSeeker(t, ts)
	job := helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("Save")+" Engineer", nil)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/saved-jobs", seeker.AccessToken,
		map[string]interface{}{"job_id": job.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode, "save: %s", body)

	var saved dto.SavedJobResponse
	helpers.DecodeJSON(t, body, &saved)
	assert.Equal(t, job.ID, saved.JobID)
	require.NotNil(t, saved.Job)
	assert.Equal(t, job.Title, saved.Job.Title)

	// Saving the same job again is a conflict, not a silent no-op.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/saved-jobs", seeker.AccessToken,
		map[string]interface{}{"job_id": job.ID})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "already saved")

	// Unknown jobs cannot be bookmarked.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/saved-jobs", seeker.AccessToken,
		map[string]interface{}{"job_id": uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Employers have no bookmark list.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/saved-jobs", employer.AccessToken,
		map[string]interface{}{"job_id": job.ID})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestSavedJobs_ListAndUnsave(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employer := helpers.RegisterEmployer(t, ts)
	seeker := helpers.RegisterSeeker(t, ts)

	first := helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("Keep")+" Engineer", nil)
	second := helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("Drop")+" Engineer", nil)

	for _, job := range []string{first.ID, second.ID} {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/saved-jobs", seeker.AccessToken,
			map[string]interface{}{"job_id": job})
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/saved-jobs", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list dto.SavedJobListResponse
	helpers.DecodeJSON(t, body, &list)
	assert.Equal(t, int64(2), list.Total)

	// Unsave is keyed by job id.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/saved-jobs/"+second.ID, seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/saved-jobs", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &list)
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, first.ID, list.SavedJobs[0].JobID)

	// Removing a bookmark that is not there reads as absent.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/saved-jobs/"+second.ID, seeker.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
