package integration_test

import (
	"net/http"
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resumePDF is not parseable as a PDF, which the upload path tolerates:
// extraction fails, analysis is skipped, the file is stored as-is.
var resumePDF = []byte("%PDF-1.4 integration test resume payload")

func uploadResume(t *testing.T, ts *helpers.TestServer, token, filename string) *dto.ResumeResponse {
	t.Helper()

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/resumes", token,
		"resume", filename, resumePDF)
	require.Equal(t, http.StatusCreated, res.StatusCode, "upload failed: %s", body)

	var resume dto.ResumeResponse
	helpers.DecodeJSON(t, body, &resume)
	require.NotEmpty(t, resume.ID)
	return &resume
}

func TestResumeLifecycle(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	seeker := helpers.RegisterSeeker(t, ts)

	first := uploadResume(t, ts, seeker.AccessToken, "cv.pdf")
	assert.Equal(t, "cv.pdf", first.FileName)
	assert.Equal(t, "application/pdf", first.FileType)
	assert.Equal(t, int64(len(resumePDF)), first.FileSize)
	assert.True(t, first.IsPrimary, "first upload becomes primary")

	// The profile tracks the primary resume.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/job-seeker", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var profile dto.JobSeekerProfileResponse
	helpers.DecodeJSON(t, body, &profile)
	require.NotNil(t, profile.ResumeID)
	assert.Equal(t, first.ID, *profile.ResumeID)

	second := uploadResume(t, ts, seeker.AccessToken, "cv-v2.pdf")
	assert.False(t, second.IsPrimary)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/resumes", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list dto.ResumeListResponse
	helpers.DecodeJSON(t, body, &list)
	assert.Equal(t, int64(2), list.Total)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/resumes/"+second.ID+"/primary", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "set primary: %s", body)
	var promoted dto.ResumeResponse
	helpers.DecodeJSON(t, body, &promoted)
	assert.True(t, promoted.IsPrimary)

	// Deleting the primary hands the flag to the remaining resume.
	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/resumes/"+second.ID, seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "delete: %s", body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/resumes/"+first.ID, seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var survivor dto.ResumeResponse
	helpers.DecodeJSON(t, body, &survivor)
	assert.True(t, survivor.IsPrimary)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/profiles/job-seeker", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &profile)
	require.NotNil(t, profile.ResumeID)
	assert.Equal(t, first.ID, *profile.ResumeID)
}

func TestResumeUpload_Validation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	seeker := helpers.RegisterSeeker(t, ts)

	// Only seekers hold resumes.
	employer := helpers.RegisterEmployer(t, ts)
	res, _ := ts.SendMultipart(t, http.MethodPost, "/api/v1/resumes", employer.AccessToken,
		"resume", "cv.pdf", resumePDF)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// The form field must be named "resume".
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/resumes", seeker.AccessToken,
		"file", "cv.pdf", resumePDF)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "resume")

	// Unsupported document types are rejected.
	res, _ = ts.SendMultipart(t, http.MethodPost, "/api/v1/resumes", seeker.AccessToken,
		"resume", "cv.txt", []byte("plain text resume"))
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)

	// The sixth upload hits the per-user cap.
	for i := 0; i < 5; i++ {
		uploadResume(t, ts, seeker.AccessToken, "cv.pdf")
	}
	res, body = ts.SendMultipart(t, http.MethodPost, "/api/v1/resumes", seeker.AccessToken,
		"resume", "cv.pdf", resumePDF)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "limit")
}

func TestResumeDownload_OwnerOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	seeker := helpers.RegisterSeeker(t, ts)
	resume := uploadResume(t, ts, seeker.AccessToken, "cv.pdf")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/resumes/"+resume.ID+"/download", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "download url: %s", body)
	var download dto.ResumeDownloadResponse
	helpers.DecodeJSON(t, body, &download)
	require.Contains(t, download.URL, "/api/v1/files/resumes/")

	// The link serves the original bytes to the owner.
	res, body = ts.SendRequest(t, http.MethodGet, download.URL, seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "fetch file: %s", body)
	assert.Equal(t, "application/pdf", res.Header.Get("Content-Type"))
	assert.Equal(t, string(resumePDF), body)

	// Admins can fetch any resume.
	admin := helpers.RegisterAdmin(t, ts)
	res, _ = ts.SendRequest(t, http.MethodGet, download.URL, admin.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Anyone else sees the same 404 as a missing file.
	res, _ = ts.SendRequest(t, http.MethodGet, download.URL, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	other := helpers.RegisterSeeker(t, ts)
	res, _ = ts.SendRequest(t, http.MethodGet, download.URL, other.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Other users cannot reach the resume record either.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/resumes/"+resume.ID, other.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestFileRoute_UnknownKeysHidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	seeker := helpers.RegisterSeeker(t, ts)

	// Keys outside the known upload prefixes do not resolve.
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/files/config/secrets.yaml", seeker.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Public prefixes still 404 on files that were never uploaded.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/files/avatars/nobody.jpg", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
