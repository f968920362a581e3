package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	tm := NewTemplateManager()

	out, err := tm.Render(TemplateWelcome, TemplateData{
		"Name":              "Priya",
		"Role":              "job_seeker",
		"VerificationToken": "abc123",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Priya")
	assert.Contains(t, out, "abc123")
}

func TestRenderAlertDigestPluralizes(t *testing.T) {
	tm := NewTemplateManager()

	out, err := tm.Render(TemplateAlertDigest, TemplateData{
		"Name":       "Priya",
		"AlertTitle": "Go jobs in Pune",
		"MatchCount": 2,
		"Jobs": []DigestJob{
			{Title: "Backend Engineer", Company: "Acme", Location: "Pune"},
			{Title: "Platform Engineer", Company: "Initech"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "2 new jobs")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Initech")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("no_such_template", nil)
	assert.Error(t, err)
}

func TestRenderVerificationResult(t *testing.T) {
	tm := NewTemplateManager()

	out, err := tm.Render(TemplateVerificationResult, TemplateData{
		"Name":        "Arjun",
		"CompanyName": "Acme Corp",
		"Approved":    false,
		"Note":        "documents unreadable",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "rejected")
	assert.Contains(t, out, "documents unreadable")
}
