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

func createTestAlert(t *testing.T, ts *helpers.TestServer, token, title string, params map[string]interface{}, overrides map[string]interface{}) *dto.JobAlertResponse {
	t.Helper()

	body := map[string]interface{}{
		"title":         title,
		"search_params": params,
	}
	for k, v := range overrides {
		body[k] = v
	}
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/job-alerts", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "alert creation failed: %s", resBody)

	var alert dto.JobAlertResponse
	helpers.DecodeJSON(t, resBody, &alert)
	return &alert
}

func TestJobAlertCreate_DefaultsAndDuplicate(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	seeker := helpers.RegisterSeeker(t, ts)
	title := uniqueToken("Go roles")

	alert := createTestAlert(t, ts, seeker.AccessToken, title,
		map[string]interface{}{"search": "golang", "work_mode": "remote"}, nil)
	assert.Equal(t, title, alert.Title)
	assert.Equal(t, models.AlertFrequencyDaily, alert.Frequency)
	assert.True(t, alert.IsActive)
	assert.True(t, alert.EmailNotifications)
	assert.Nil(t, alert.LastTriggered)
	assert.Equal(t, 0, alert.MatchedJobsCount)
	assert.Equal(t, "golang", alert.SearchParams.Search)

	// Alert titles are unique per user.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/job-alerts", seeker.AccessToken,
		map[string]interface{}{"title": title, "search_params": map[string]interface{}{"search": "other"}})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "already exists")

	// Saved searches are a seeker feature.
	employer := helpers.RegisterEmployer(t, ts)
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/job-alerts", employer.AccessToken,
		map[string]interface{}{"title": "spy", "search_params": map[string]interface{}{}})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestJobAlertMatches_ReplaysSavedSearch(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	token := uniqueToken("kubemesh")
	seeker := helpers.RegisterSeeker(t, ts)
	alert := createTestAlert(t, ts, seeker.AccessToken, "Platform watch",
		map[string]interface{}{"search": token}, nil)

	employer := helpers.RegisterEmployer(t, ts)
	match := helpers.CreateTestJob(t, ts, employer.AccessToken, token+" Platform Engineer", nil)
	helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("Unrelated"), nil)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/job-alerts/matches", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var matches dto.AlertMatchesResponse
	helpers.DecodeJSON(t, body, &matches)
	require.Len(t, matches.Matches, 1)
	group := matches.Matches[0]
	assert.Equal(t, alert.ID, group.AlertID)
	assert.Equal(t, "Platform watch", group.AlertTitle)
	require.Len(t, group.Jobs, 1)
	assert.Equal(t, match.ID, group.Jobs[0].ID)

	// Paused alerts drop out of the replay.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/job-alerts/"+alert.ID, seeker.AccessToken,
		map[string]interface{}{"is_active": false})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/job-alerts/matches", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	matches = dto.AlertMatchesResponse{}
	helpers.DecodeJSON(t, body, &matches)
	assert.Len(t, matches.Matches, 0)
}

func TestJobAlertInstant_FiresOnNewPosting(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	token := uniqueToken("rustedge")
	seeker := helpers.RegisterSeeker(t, ts)
	alert := createTestAlert(t, ts, seeker.AccessToken, "Rust instant",
		map[string]interface{}{"search": token},
		map[string]interface{}{"frequency": "instant", "email_notifications": false})

	employer := helpers.RegisterEmployer(t, ts)
	job := helpers.CreateTestJob(t, ts, employer.AccessToken, token+" Systems Engineer", nil)

	// The posting already hit the alert by the time creation returned.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list dto.NotificationListResponse
	helpers.DecodeJSON(t, body, &list)
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, models.NotificationTypeJobAlert, list.Notifications[0].Type)
	assert.Contains(t, list.Notifications[0].Title, "Rust instant")
	assert.Contains(t, list.Notifications[0].Message, job.Title)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/job-alerts/"+alert.ID, seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var fetched dto.JobAlertResponse
	helpers.DecodeJSON(t, body, &fetched)
	assert.Equal(t, 1, fetched.MatchedJobsCount)
	assert.NotNil(t, fetched.LastTriggered)

	// A posting outside the saved search leaves the alert untouched.
	helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("Quiet"), nil)
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var count dto.UnreadCountResponse
	helpers.DecodeJSON(t, body, &count)
	assert.Equal(t, int64(1), count.UnreadCount)
}

func TestJobAlertUpdate_OwnerAndUniqueness(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	seeker := helpers.RegisterSeeker(t, ts)
	first := createTestAlert(t, ts, seeker.AccessToken, uniqueToken("First"),
		map[string]interface{}{"search": "go"}, nil)
	second := createTestAlert(t, ts, seeker.AccessToken, uniqueToken("Second"),
		map[string]interface{}{"search": "python"}, nil)

	// Renaming onto a sibling alert collides.
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/job-alerts/"+second.ID, seeker.AccessToken,
		map[string]interface{}{"title": first.Title})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "already exists")

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/job-alerts/"+second.ID, seeker.AccessToken,
		map[string]interface{}{
			"frequency":           "weekly",
			"email_notifications": false,
			"search_params":       map[string]interface{}{"search": "python", "location": "Pune"},
		})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var updated dto.JobAlertResponse
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, models.AlertFrequencyWeekly, updated.Frequency)
	assert.False(t, updated.EmailNotifications)
	assert.Equal(t, "Pune", updated.SearchParams.Location)

	// Alerts are invisible to anyone but their owner.
	other := helpers.RegisterSeeker(t, ts)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/job-alerts/"+first.ID, other.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/job-alerts/"+first.ID, other.AccessToken,
		map[string]interface{}{"is_active": false})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/job-alerts/"+first.ID, other.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestJobAlertDelete(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	seeker := helpers.RegisterSeeker(t, ts)
	alert := createTestAlert(t, ts, seeker.AccessToken, uniqueToken("Doomed"),
		map[string]interface{}{"search": "go"}, nil)
	keeper := createTestAlert(t, ts, seeker.AccessToken, uniqueToken("Keeper"),
		map[string]interface{}{"search": "go"}, nil)

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/job-alerts/"+alert.ID, seeker.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "deleted")

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/job-alerts/"+alert.ID, seeker.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/job-alerts", seeker.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list dto.JobAlertListResponse
	helpers.DecodeJSON(t, body, &list)
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, keeper.ID, list.Alerts[0].ID)
}
