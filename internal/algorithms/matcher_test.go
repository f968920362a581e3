package algorithms

import (
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func seekerProfile() *models.JobSeekerProfile {
	return &models.JobSeekerProfile{
		Skills:             []string{"Go", "PostgreSQL", "Docker"},
		ExperienceYears:    5,
		CurrentLocation:    "Bangalore",
		PreferredLocations: []string{"Pune", "Remote"},
		ExpectedSalary:     1200000,
	}
}

func TestScoreJobMatchPerfectFit(t *testing.T) {
	job := &models.Job{
		Skills:        []string{"go", "postgresql"},
		ExperienceMin: 3,
		ExperienceMax: 7,
		Location:      "Bangalore",
		WorkMode:      models.WorkModeOnsite,
		SalaryMin:     800000,
		SalaryMax:     1500000,
	}

	result := ScoreJobMatch(seekerProfile(), job)
	assert.Equal(t, 100, result.Score)
	assert.NotEmpty(t, result.Reasons)
}

func TestScoreJobMatchSkillsArePartial(t *testing.T) {
	job := &models.Job{
		Skills: []string{"Go", "Kafka", "Kubernetes", "Terraform"},
	}

	// 1 of 4 skills, everything else unconstrained:
	// 0.25*0.40 + 1.0*0.60 = 0.70
	result := ScoreJobMatch(seekerProfile(), job)
	assert.Equal(t, 70, result.Score)
	assert.Contains(t, result.Reasons[0], "1 of 4")
}

func TestScoreJobMatchNoSkillOverlap(t *testing.T) {
	job := &models.Job{
		Skills: []string{"Rust", "C++"},
	}

	result := ScoreJobMatch(seekerProfile(), job)
	assert.Equal(t, 60, result.Score)
	assert.Contains(t, result.Reasons[0], "none of the 2 required skills")
}

func TestScoreJobMatchRemoteIgnoresLocation(t *testing.T) {
	job := &models.Job{
		Location: "Berlin",
		WorkMode: models.WorkModeRemote,
	}

	result := ScoreJobMatch(seekerProfile(), job)
	assert.Equal(t, 100, result.Score)
	assert.Contains(t, result.Reasons, "remote role, location independent")
}

func TestScoreJobMatchLocationMismatch(t *testing.T) {
	job := &models.Job{
		Location: "Berlin",
		WorkMode: models.WorkModeOnsite,
	}

	// Only the location category (weight 0.20) drops to zero.
	result := ScoreJobMatch(seekerProfile(), job)
	assert.Equal(t, 80, result.Score)
}

func TestScoreJobMatchPreferredLocationCounts(t *testing.T) {
	job := &models.Job{
		Location: "Pune",
		WorkMode: models.WorkModeHybrid,
	}

	result := ScoreJobMatch(seekerProfile(), job)
	assert.Equal(t, 100, result.Score)
}

func TestScoreJobMatchUnderExperienced(t *testing.T) {
	profile := seekerProfile()
	profile.ExperienceYears = 2
	job := &models.Job{
		ExperienceMin: 4,
	}

	// Experience category scores 2/4 = 0.5: 0.5*0.25 + 0.75 = 0.875
	result := ScoreJobMatch(profile, job)
	assert.Equal(t, 88, result.Score)
	assert.Contains(t, result.Reasons[0], "below the required 4")
}

func TestScoreJobMatchSalaryAboveRange(t *testing.T) {
	job := &models.Job{
		SalaryMin: 300000,
		SalaryMax: 600000,
	}

	// Salary category scores 600000/1200000 = 0.5:
	// 0.85 + 0.5*0.15 = 0.925
	result := ScoreJobMatch(seekerProfile(), job)
	assert.Equal(t, 93, result.Score)
	assert.Contains(t, result.Reasons, "expected salary is above the offered range")
}

func TestScoreJobMatchEmptyJobIsNeutral(t *testing.T) {
	result := ScoreJobMatch(seekerProfile(), &models.Job{})
	assert.Equal(t, 100, result.Score)
}
