// Package algorithms holds the pure scoring code shared by the match
// endpoint and the alert workers. Everything here is side-effect free
// so it can be unit tested without a database.
package algorithms

import (
	"fmt"
	"math"
	"strings"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// Category weights for the overall match score. Skills dominate, the
// rest tilt the score without being able to zero it out.
const (
	weightSkills     = 0.40
	weightExperience = 0.25
	weightLocation   = 0.20
	weightSalary     = 0.15
)

// MatchScore is the outcome of scoring one seeker profile against one
// job. Score is 0-100; Reasons explain the main contributions in the
// order they were evaluated.
type MatchScore struct {
	Score   int
	Reasons []string
}

// ScoreJobMatch rates how well a seeker profile fits a job posting.
func ScoreJobMatch(profile *models.JobSeekerProfile, job *models.Job) MatchScore {
	var reasons []string

	skillsScore, skillsReason := scoreSkills(profile.Skills, job.Skills)
	if skillsReason != "" {
		reasons = append(reasons, skillsReason)
	}

	expScore, expReason := scoreExperience(profile.ExperienceYears, job.ExperienceMin, job.ExperienceMax)
	if expReason != "" {
		reasons = append(reasons, expReason)
	}

	locScore, locReason := scoreLocation(profile, job)
	if locReason != "" {
		reasons = append(reasons, locReason)
	}

	salScore, salReason := scoreSalary(profile.ExpectedSalary, job.SalaryMin, job.SalaryMax)
	if salReason != "" {
		reasons = append(reasons, salReason)
	}

	total := skillsScore*weightSkills +
		expScore*weightExperience +
		locScore*weightLocation +
		salScore*weightSalary

	return MatchScore{
		Score:   int(math.Round(total * 100)),
		Reasons: reasons,
	}
}

// scoreSkills returns the fraction of required skills the profile
// covers. A job without listed skills does not constrain the match.
func scoreSkills(have, want []string) (float64, string) {
	if len(want) == 0 {
		return 1.0, ""
	}
	haveSet := make(map[string]struct{}, len(have))
	for _, s := range have {
		haveSet[normalizeSkill(s)] = struct{}{}
	}
	matched := 0
	for _, s := range want {
		if _, ok := haveSet[normalizeSkill(s)]; ok {
			matched++
		}
	}
	score := float64(matched) / float64(len(want))
	if matched == 0 {
		return 0, fmt.Sprintf("none of the %d required skills found on the profile", len(want))
	}
	return score, fmt.Sprintf("matches %d of %d required skills", matched, len(want))
}

func scoreExperience(years, min, max int) (float64, string) {
	if min <= 0 {
		return 1.0, ""
	}
	if years >= min {
		if max > 0 && years > max {
			return 1.0, fmt.Sprintf("%d years of experience exceeds the %d-%d range", years, min, max)
		}
		return 1.0, fmt.Sprintf("%d years of experience meets the %d+ requirement", years, min)
	}
	return float64(years) / float64(min),
		fmt.Sprintf("%d years of experience is below the required %d", years, min)
}

func scoreLocation(profile *models.JobSeekerProfile, job *models.Job) (float64, string) {
	if job.WorkMode == models.WorkModeRemote {
		return 1.0, "remote role, location independent"
	}
	if job.Location == "" {
		return 1.0, ""
	}
	jobLoc := strings.ToLower(strings.TrimSpace(job.Location))
	if profile.CurrentLocation != "" {
		current := strings.ToLower(strings.TrimSpace(profile.CurrentLocation))
		if strings.Contains(jobLoc, current) || strings.Contains(current, jobLoc) {
			return 1.0, fmt.Sprintf("current location matches %s", job.Location)
		}
	}
	for _, loc := range profile.PreferredLocations {
		preferred := strings.ToLower(strings.TrimSpace(loc))
		if preferred == "" {
			continue
		}
		if strings.Contains(jobLoc, preferred) || strings.Contains(preferred, jobLoc) {
			return 1.0, fmt.Sprintf("preferred location matches %s", job.Location)
		}
	}
	return 0, fmt.Sprintf("job location %s is outside the candidate's locations", job.Location)
}

func scoreSalary(expected, min, max float64) (float64, string) {
	if expected <= 0 || max <= 0 {
		return 1.0, ""
	}
	if expected <= max {
		return 1.0, "expected salary fits the offered range"
	}
	return max / expected, "expected salary is above the offered range"
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
