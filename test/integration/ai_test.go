package integration_test

import (
	"net/http"
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The suite runs without a model API key, so the advisor must answer
// from its built-in guidance and say so.
func TestCareerAdvice_DegradedWithoutModel(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	seeker := helpers.RegisterSeeker(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/ai/career-advice", seeker.AccessToken,
		map[string]interface{}{"message": "How do I move from support into backend engineering?"})
	require.Equal(t, http.StatusOK, res.StatusCode, "advice: %s", body)

	var advice dto.CareerAdviceResponse
	helpers.DecodeJSON(t, body, &advice)
	assert.True(t, advice.Degraded)
	assert.NotEmpty(t, advice.Reply)
}

func TestCareerAdvice_Validation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/ai/career-advice", "",
		map[string]interface{}{"message": "hello"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	seeker := helpers.RegisterSeeker(t, ts)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/ai/career-advice", seeker.AccessToken,
		map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "message")
}
