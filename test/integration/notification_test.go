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

// notifyEmployer creates one real notification for the employer by
// having a fresh seeker apply to the given job.
func notifyEmployer(t *testing.T, ts *helpers.TestServer, jobID string) {
	t.Helper()
	seeker := helpers.RegisterSeeker(t, ts)
	helpers.ApplyToJob(t, ts, seeker.AccessToken, jobID)
}

func TestNotificationList_UnreadFilter(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.RegisterEmployer(t, ts)
	job := helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("Notify"), nil)
	for i := 0; i < 3; i++ {
		notifyEmployer(t, ts, job.ID)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list dto.NotificationListResponse
	helpers.DecodeJSON(t, body, &list)
	require.Equal(t, int64(3), list.Total)
	assert.Equal(t, int64(3), list.UnreadCount)
	assert.Equal(t, models.NotificationTypeJobPosted, list.Notifications[0].Type)
	assert.Contains(t, list.Notifications[0].Title, "New application")

	// Reading one shrinks the unread view but not the full list.
	res, _ = ts.SendRequest(t, http.MethodPut,
		"/api/v1/notifications/"+list.Notifications[0].ID+"/read", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications?unread_only=true", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var unread dto.NotificationListResponse
	helpers.DecodeJSON(t, body, &unread)
	assert.Equal(t, int64(2), unread.Total)
	assert.Equal(t, int64(2), unread.UnreadCount)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var count dto.UnreadCountResponse
	helpers.DecodeJSON(t, body, &count)
	assert.Equal(t, int64(2), count.UnreadCount)
}

func TestNotificationMarkRead_Idempotent(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.RegisterEmployer(t, ts)
	job := helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("ReadOnce"), nil)
	notifyEmployer(t, ts, job.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list dto.NotificationListResponse
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list.Notifications, 1)
	id := list.Notifications[0].ID

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+id+"/read", employer.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "marked as read")

	// Re-reading an already-read notification is a no-op, not an error.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+id+"/read", employer.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	list = dto.NotificationListResponse{}
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list.Notifications, 1)
	assert.True(t, list.Notifications[0].IsRead)
	assert.NotNil(t, list.Notifications[0].ReadAt)
	assert.Equal(t, int64(0), list.UnreadCount)
}

func TestNotificationReadAll(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.RegisterEmployer(t, ts)
	job := helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("ReadAll"), nil)
	notifyEmployer(t, ts, job.ID)
	notifyEmployer(t, ts, job.ID)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/read-all", employer.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"updated":2`)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var count dto.UnreadCountResponse
	helpers.DecodeJSON(t, body, &count)
	assert.Equal(t, int64(0), count.UnreadCount)

	// Nothing left to update the second time around.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/read-all", employer.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"updated":0`)
}

func TestNotificationDelete_OwnerOnly(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	employer := helpers.RegisterEmployer(t, ts)
	job := helpers.CreateTestJob(t, ts, employer.AccessToken, uniqueToken("Purge"), nil)
	notifyEmployer(t, ts, job.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list dto.NotificationListResponse
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list.Notifications, 1)
	id := list.Notifications[0].ID

	// Someone else's notifications read as absent, never as forbidden.
	outsider := helpers.RegisterEmployer(t, ts)
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+id+"/read", outsider.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/notifications/"+id, outsider.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/notifications/"+id, employer.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "deleted")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/notifications/"+id, employer.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", employer.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	list = dto.NotificationListResponse{}
	helpers.DecodeJSON(t, body, &list)
	assert.Equal(t, int64(0), list.Total)
}
