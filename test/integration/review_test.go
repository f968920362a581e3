package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReview(t *testing.T, ts *helpers.TestServer, token, companyID string, rating int, anonymous bool) *dto.ReviewResponse {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", token, map[string]interface{}{
		"company_id":     companyID,
		"rating_overall": rating,
		"title":          "Solid place to work",
		"pros":           "Good mentorship and modern stack",
		"cons":           "On-call rotation is heavy",
		"is_anonymous":   anonymous,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "review creation failed: %s", body)

	var review dto.ReviewResponse
	helpers.DecodeJSON(t, body, &review)
	return &review
}

func TestReviewCreate_OncePerCompany(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	owner := helpers.RegisterEmployer(t, ts)
	company := helpers.CreateTestCompany(t, ts, owner.AccessToken, uniqueToken("ReviewedCo"))
	seeker := helpers.RegisterSeeker(t, ts)

	review := createTestReview(t, ts, seeker.AccessToken, company.ID, 4, false)
	assert.Equal(t, company.ID, review.CompanyID)
	assert.Equal(t, 4, review.RatingOverall)

	// One review per user per company.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", seeker.AccessToken, map[string]interface{}{
		"company_id":     company.ID,
		"rating_overall": 2,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "already reviewed")

	// Owners cannot inflate their own rating.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", owner.AccessToken, map[string]interface{}{
		"company_id":     company.ID,
		"rating_overall": 5,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "own company")
}

func TestReviewAggregate_TracksCompanyRating(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	owner := helpers.RegisterEmployer(t, ts)
	company := helpers.CreateTestCompany(t, ts, owner.AccessToken, uniqueToken("RatedCo"))

	first := helpers.RegisterSeeker(t, ts)
	second := helpers.RegisterSeeker(t, ts)
	createTestReview(t, ts, first.AccessToken, company.ID, 5, false)
	createTestReview(t, ts, second.AccessToken, company.ID, 2, false)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/companies/"+company.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var fetched dto.CompanyResponse
	helpers.DecodeJSON(t, body, &fetched)
	assert.Equal(t, 2, fetched.RatingCount)
	assert.InDelta(t, 3.5, fetched.RatingAvg, 0.01)

	// Company review listing carries the same aggregate.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/companies/"+company.ID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list dto.ReviewListResponse
	helpers.DecodeJSON(t, body, &list)
	assert.Equal(t, int64(2), list.Total)
	assert.InDelta(t, 3.5, list.RatingAvg, 0.01)
}

func TestReviewAnonymous_HidesAuthor(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	owner := helpers.RegisterEmployer(t, ts)
	company := helpers.CreateTestCompany(t, ts, owner.AccessToken, uniqueToken("AnonCo"))

	named := helpers.RegisterSeeker(t, ts)
	anon := helpers.RegisterSeeker(t, ts)
	namedReview := createTestReview(t, ts, named.AccessToken, company.ID, 4, false)
	anonReview := createTestReview(t, ts, anon.AccessToken, company.ID, 3, true)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/reviews/"+namedReview.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var fetched dto.ReviewResponse
	helpers.DecodeJSON(t, body, &fetched)
	assert.Equal(t, named.User.FullName, fetched.AuthorName)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/reviews/"+anonReview.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	fetched = dto.ReviewResponse{}
	helpers.DecodeJSON(t, body, &fetched)
	assert.True(t, fetched.IsAnonymous)
	assert.Empty(t, fetched.AuthorName)
	assert.NotContains(t, body, anon.User.FullName)
}

func TestReviewUpdate_AuthorOnly(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	owner := helpers.RegisterEmployer(t, ts)
	company := helpers.CreateTestCompany(t, ts, owner.AccessToken, uniqueToken("EditCo"))
	author := helpers.RegisterSeeker(t, ts)
	stranger := helpers.RegisterSeeker(t, ts)

	review := createTestReview(t, ts, author.AccessToken, company.ID, 5, false)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/reviews/"+review.ID, stranger.AccessToken,
		map[string]interface{}{"rating_overall": 1})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/reviews/"+review.ID, author.AccessToken,
		map[string]interface{}{"rating_overall": 3, "cons": "Raises lag the market"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var updated dto.ReviewResponse
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, 3, updated.RatingOverall)
	assert.Equal(t, "Raises lag the market", updated.Cons)
	assert.Equal(t, "Solid place to work", updated.Title)

	// The aggregate followed the edit.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/companies/"+company.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var fetched dto.CompanyResponse
	helpers.DecodeJSON(t, body, &fetched)
	assert.InDelta(t, 3.0, fetched.RatingAvg, 0.01)
}

func TestReviewDelete_AuthorOrAdmin(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	owner := helpers.RegisterEmployer(t, ts)
	company := helpers.CreateTestCompany(t, ts, owner.AccessToken, uniqueToken("ModeratedCo"))
	author := helpers.RegisterSeeker(t, ts)
	other := helpers.RegisterSeeker(t, ts)

	kept := createTestReview(t, ts, author.AccessToken, company.ID, 5, false)
	flagged := createTestReview(t, ts, other.AccessToken, company.ID, 1, false)

	// Random users cannot remove someone else's review.
	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews/"+flagged.ID, author.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Admins moderate anything.
	admin := helpers.RegisterAdmin(t, ts)
	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews/"+flagged.ID, admin.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "deleted")

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/reviews/"+flagged.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Aggregate drops back to the surviving review.
	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%s", company.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var fetched dto.CompanyResponse
	helpers.DecodeJSON(t, body, &fetched)
	assert.Equal(t, 1, fetched.RatingCount)
	assert.InDelta(t, 5.0, fetched.RatingAvg, 0.01)

	// Authors can retract their own.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews/"+kept.ID, author.AccessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
