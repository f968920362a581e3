package services

import (
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
)

func alertTestJob() *models.Job {
	return &models.Job{
		Title:         "Senior Go Developer",
		Description:   "Build payment APIs on PostgreSQL",
		Company:       "Acme Fintech",
		Location:      "Bengaluru, India",
		JobType:       models.JobTypeFullTime,
		WorkMode:      models.WorkModeRemote,
		SalaryMin:     800000,
		SalaryMax:     1500000,
		ExperienceMin: 3,
		ExperienceMax: 6,
		Skills:        []string{"Go", "PostgreSQL"},
	}
}

func TestJobMatchesQueryEmptyQueryMatchesEverything(t *testing.T) {
	assert.True(t, jobMatchesQuery(alertTestJob(), dto.JobSearchQuery{}))
}

func TestJobMatchesQuerySearchScansTitleDescriptionCompany(t *testing.T) {
	cases := []struct {
		search string
		want   bool
	}{
		{"go developer", true},  // title, case folded
		{"payment", true},       // description
		{"acme", true},          // company
		{" SENIOR ", true},      // trimmed and folded
		{"haskell", false},
	}
	for _, tc := range cases {
		got := jobMatchesQuery(alertTestJob(), dto.JobSearchQuery{Search: tc.search})
		assert.Equal(t, tc.want, got, "search %q", tc.search)
	}
}

func TestJobMatchesQueryFieldFilters(t *testing.T) {
	under := 2
	within := 4
	over := 7

	cases := []struct {
		name  string
		query dto.JobSearchQuery
		want  bool
	}{
		{"location substring", dto.JobSearchQuery{Location: "bengaluru"}, true},
		{"location mismatch", dto.JobSearchQuery{Location: "Mumbai"}, false},
		{"job type exact", dto.JobSearchQuery{JobType: "full_time"}, true},
		{"job type mismatch", dto.JobSearchQuery{JobType: "contract"}, false},
		{"work mode exact", dto.JobSearchQuery{WorkMode: "remote"}, true},
		{"work mode mismatch", dto.JobSearchQuery{WorkMode: "onsite"}, false},
		{"salary reachable", dto.JobSearchQuery{SalaryMin: 1400000}, true},
		{"salary above ceiling", dto.JobSearchQuery{SalaryMin: 1600000}, false},
		{"experience window overlaps", dto.JobSearchQuery{ExperienceMin: &within}, true},
		{"wants more experience than job offers", dto.JobSearchQuery{ExperienceMin: &over}, false},
		{"caps below job minimum", dto.JobSearchQuery{ExperienceMax: &under}, false},
		{"skill overlap", dto.JobSearchQuery{Skills: "postgresql, rust"}, true},
		{"skill fold and trim", dto.JobSearchQuery{Skills: " GO "}, true},
		{"no skill overlap", dto.JobSearchQuery{Skills: "rust,c++"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, jobMatchesQuery(alertTestJob(), tc.query))
		})
	}
}

func TestSplitSkillsCSV(t *testing.T) {
	assert.Nil(t, splitSkillsCSV(""))
	assert.Nil(t, splitSkillsCSV(" , ,"))
	assert.Equal(t, []string{"go", "sql"}, splitSkillsCSV("go, sql,,"))
}
