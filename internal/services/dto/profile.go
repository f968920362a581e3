package dto

import (
	"encoding/json"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// --- Job Seeker Profile ---

// EducationEntry is one row of the seeker's education history, stored
// as JSON on the profile.
type EducationEntry struct {
	Degree      string `json:"degree" validate:"required,max=200"`
	Institution string `json:"institution" validate:"required,max=200"`
	YearFrom    int    `json:"year_from" validate:"omitempty,min=1950,max=2100"`
	YearTo      int    `json:"year_to" validate:"omitempty,min=1950,max=2100"`
}

// WorkExperienceEntry is one row of the seeker's work history, stored
// as JSON on the profile.
type WorkExperienceEntry struct {
	Title       string `json:"title" validate:"required,max=200"`
	Company     string `json:"company" validate:"required,max=200"`
	YearFrom    int    `json:"year_from" validate:"omitempty,min=1950,max=2100"`
	YearTo      int    `json:"year_to" validate:"omitempty,min=1950,max=2100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UpdateJobSeekerProfileRequest upserts the caller's seeker profile.
// Only the provided fields are touched.
type UpdateJobSeekerProfileRequest struct {
	Headline           *string               `json:"headline,omitempty" validate:"omitempty,max=200"`
	Summary            *string               `json:"summary,omitempty" validate:"omitempty,max=5000"`
	Skills             []string              `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=50"`
	ExperienceYears    *int                  `json:"experience_years,omitempty" validate:"omitempty,min=0,max=60"`
	Education          []EducationEntry      `json:"education,omitempty" validate:"omitempty,dive"`
	WorkExperience     []WorkExperienceEntry `json:"work_experience,omitempty" validate:"omitempty,dive"`
	PreferredLocations []string              `json:"preferred_locations,omitempty" validate:"omitempty,dive,min=1,max=100"`
	CurrentLocation    *string               `json:"current_location,omitempty" validate:"omitempty,max=200"`
	ExpectedSalary     *float64              `json:"expected_salary,omitempty" validate:"omitempty,min=0"`
	NoticePeriodDays   *int                  `json:"notice_period_days,omitempty" validate:"omitempty,min=0,max=365"`
	IsPublic           *bool                 `json:"is_public,omitempty"`
}

type JobSeekerProfileResponse struct {
	UserID               string                `json:"user_id"`
	Headline             string                `json:"headline,omitempty"`
	Summary              string                `json:"summary,omitempty"`
	Skills               []string              `json:"skills"`
	ExperienceYears      int                   `json:"experience_years"`
	Education            []EducationEntry      `json:"education,omitempty"`
	WorkExperience       []WorkExperienceEntry `json:"work_experience,omitempty"`
	PreferredLocations   []string              `json:"preferred_locations,omitempty"`
	CurrentLocation      string                `json:"current_location,omitempty"`
	ExpectedSalary       float64               `json:"expected_salary,omitempty"`
	NoticePeriodDays     int                   `json:"notice_period_days,omitempty"`
	ResumeID             *string               `json:"resume_id,omitempty"`
	ProfilePicture       string                `json:"profile_picture,omitempty"`
	ProfileCompletionPct int                   `json:"profile_completion_pct"`
	IsPublic             bool                  `json:"is_public"`
	ProfileViews         int                   `json:"profile_views"`
}

// NewJobSeekerProfileResponse maps the persisted profile onto the API
// shape, decoding the JSON history columns.
func NewJobSeekerProfileResponse(p *models.JobSeekerProfile) JobSeekerProfileResponse {
	resp := JobSeekerProfileResponse{
		UserID:               p.UserID,
		Headline:             p.Headline,
		Summary:              p.Summary,
		Skills:               p.Skills,
		ExperienceYears:      p.ExperienceYears,
		PreferredLocations:   p.PreferredLocations,
		CurrentLocation:      p.CurrentLocation,
		ExpectedSalary:       p.ExpectedSalary,
		NoticePeriodDays:     p.NoticePeriodDays,
		ResumeID:             p.ResumeID,
		ProfilePicture:       p.ProfilePicture,
		ProfileCompletionPct: p.ProfileCompletionPct,
		IsPublic:             p.IsPublic,
		ProfileViews:         p.ProfileViews,
	}
	if len(p.Education) > 0 {
		_ = json.Unmarshal(p.Education, &resp.Education)
	}
	if len(p.WorkExperience) > 0 {
		_ = json.Unmarshal(p.WorkExperience, &resp.WorkExperience)
	}
	return resp
}

// --- Recruiter Profile ---

type UpdateRecruiterProfileRequest struct {
	CompanyName    *string `json:"company_name,omitempty" validate:"omitempty,min=2,max=200"`
	CompanyLogo    *string `json:"company_logo,omitempty" validate:"omitempty,url"`
	Designation    *string `json:"designation,omitempty" validate:"omitempty,max=200"`
	CompanyWebsite *string `json:"company_website,omitempty" validate:"omitempty,url"`
	Industry       *string `json:"industry,omitempty" validate:"omitempty,max=200"`
	CompanySize    *string `json:"company_size,omitempty" validate:"omitempty,max=50"`
	About          *string `json:"about,omitempty" validate:"omitempty,max=5000"`
}

type RecruiterProfileResponse struct {
	UserID         string `json:"user_id"`
	CompanyName    string `json:"company_name,omitempty"`
	CompanyLogo    string `json:"company_logo,omitempty"`
	Designation    string `json:"designation,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`
	Industry       string `json:"industry,omitempty"`
	CompanySize    string `json:"company_size,omitempty"`
	About          string `json:"about,omitempty"`
}

func NewRecruiterProfileResponse(p *models.RecruiterProfile) RecruiterProfileResponse {
	return RecruiterProfileResponse{
		UserID:         p.UserID,
		CompanyName:    p.CompanyName,
		CompanyLogo:    p.CompanyLogo,
		Designation:    p.Designation,
		CompanyWebsite: p.CompanyWebsite,
		Industry:       p.Industry,
		CompanySize:    p.CompanySize,
		About:          p.About,
	}
}

// --- Candidate Search ---

// CandidateSearchQuery lets employers look up public seeker profiles.
type CandidateSearchQuery struct {
	// Skills is a comma-separated list; a candidate matches when the
	// profile carries at least one of them.
	Skills        string `form:"skills" validate:"omitempty,max=500"`
	Location      string `form:"location" validate:"omitempty,max=200"`
	MinExperience int    `form:"min_experience" validate:"omitempty,min=0,max=60"`
	Limit         int    `form:"limit" validate:"omitempty,min=1,max=50"`
}

type CandidateResponse struct {
	UserID             string   `json:"user_id"`
	FullName           string   `json:"full_name,omitempty"`
	Headline           string   `json:"headline,omitempty"`
	Skills             []string `json:"skills"`
	ExperienceYears    int      `json:"experience_years"`
	CurrentLocation    string   `json:"current_location,omitempty"`
	PreferredLocations []string `json:"preferred_locations,omitempty"`
}

type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Total      int                 `json:"total"`
}
