package services

import (
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSeekerProfileCompletionEmpty(t *testing.T) {
	assert.Equal(t, 0, SeekerProfileCompletion(&models.JobSeekerProfile{}))
}

func TestSeekerProfileCompletionPartial(t *testing.T) {
	p := &models.JobSeekerProfile{
		Headline:        "Backend engineer",
		Summary:         "Five years building Go services.",
		Skills:          []string{"go", "postgres"},
		CurrentLocation: "Pune",
		ExpectedSalary:  900000,
	}

	// headline 10 + summary 10 + skills 20 + location 10 + salary 5
	assert.Equal(t, 55, SeekerProfileCompletion(p))
}

func TestSeekerProfileCompletionFull(t *testing.T) {
	resumeID := "0b7f3f9e-3a43-4a77-9d31-6f3a6c2f5a10"
	p := &models.JobSeekerProfile{
		Headline:           "Backend engineer",
		Summary:            "Five years building Go services.",
		Skills:             []string{"go"},
		Education:          []byte(`[{"degree":"BTech","institution":"IIT Delhi","year":2018}]`),
		WorkExperience:     []byte(`[{"title":"SDE","company":"Acme","years":3}]`),
		CurrentLocation:    "Pune",
		PreferredLocations: []string{"Remote"},
		ExpectedSalary:     900000,
		ResumeID:           &resumeID,
	}

	assert.Equal(t, 100, SeekerProfileCompletion(p))
}

func TestSeekerProfileCompletionIgnoresEmptyJSONSections(t *testing.T) {
	// An empty array or unreadable payload earns nothing.
	p := &models.JobSeekerProfile{
		Headline:       "Backend engineer",
		Education:      []byte(`[]`),
		WorkExperience: []byte(`{"oops": true`),
	}

	assert.Equal(t, 10, SeekerProfileCompletion(p))
}
