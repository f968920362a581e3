package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const richResume = `Jane Doe
jane.doe@example.com | Bengaluru

Senior backend engineer with 9 years of experience building
distributed systems in Go and Python, after 3 yrs in frontend work.

Experience
- Led a team of 6 engineers running the payments platform.
- Reduced deployment time by 40% by moving builds onto Kubernetes.
- Built event pipelines on Kafka and Redis serving 2M requests a day.

Skills: golang, python, java, docker, kubernetes, postgresql, redis,
kafka, aws, react, graphql

Education
B.Tech in Computer Science. Worked across services owning design,
rollout and operations, including incident response and capacity
planning for the busiest shopping days of the year. Comfortable with
on-call, partner teams and mentoring junior engineers through their
first production launches. Regular speaker at internal engineering
reviews and author of the team's service runbook and on-call guide.`

func TestAnalyzeResumeOffline_RichResume(t *testing.T) {
	analysis := AnalyzeResumeOffline(richResume)
	require.NotNil(t, analysis)

	assert.Contains(t, analysis.Skills, "go")
	assert.Contains(t, analysis.Skills, "python")
	assert.Contains(t, analysis.Skills, "kubernetes")

	// The largest years mention wins over the smaller one.
	assert.Equal(t, 9, analysis.ExperienceYears)

	require.NotEmpty(t, analysis.Achievements)
	assert.LessOrEqual(t, len(analysis.Achievements), 5)
	assert.Contains(t, analysis.Achievements[0], "Led a team")

	// Email, metrics, plenty of skills and enough text: nothing to flag.
	assert.Empty(t, analysis.Improvements)

	// Fully loaded resumes land on the offline cap.
	assert.Equal(t, 95, analysis.ATSScore)
}

func TestAnalyzeResumeOffline_SparseResume(t *testing.T) {
	analysis := AnalyzeResumeOffline("Short note.")
	require.NotNil(t, analysis)

	assert.Empty(t, analysis.Skills)
	assert.Zero(t, analysis.ExperienceYears)
	assert.Empty(t, analysis.Achievements)
	assert.Equal(t, 35, analysis.ATSScore)

	require.Len(t, analysis.Improvements, 4)
	assert.Contains(t, analysis.Improvements[0], "email")
}

func TestAnalyzeResumeOffline_DedupesSkills(t *testing.T) {
	analysis := AnalyzeResumeOffline("go go go golang")

	count := 0
	for _, s := range analysis.Skills {
		if s == "go" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Contains(t, analysis.Skills, "golang")
}
