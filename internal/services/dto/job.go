package dto

import (
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// --- Job Requests ---

type CreateJobRequest struct {
	Title         string     `json:"title" validate:"required,min=3,max=200"`
	Description   string     `json:"description" validate:"required,max=10000"`
	Company       string     `json:"company" validate:"required,min=2,max=200"`
	CompanyID     *string    `json:"company_id,omitempty" validate:"omitempty,uuid4"`
	Location      string     `json:"location" validate:"omitempty,max=200"`
	SalaryMin     float64    `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax     float64    `json:"salary_max" validate:"omitempty,min=0,gtefield=SalaryMin"`
	Skills        []string   `json:"skills" validate:"omitempty,dive,min=1,max=50"`
	ExperienceMin int        `json:"experience_min" validate:"omitempty,min=0,max=50"`
	ExperienceMax int        `json:"experience_max" validate:"omitempty,min=0,max=50,gtefield=ExperienceMin"`
	JobType       string     `json:"job_type" validate:"omitempty,is-job-type"`
	WorkMode      string     `json:"work_mode" validate:"omitempty,is-work-mode"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

type UpdateJobRequest struct {
	Title         *string    `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=10000"`
	Company       *string    `json:"company,omitempty" validate:"omitempty,min=2,max=200"`
	Location      *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	SalaryMin     *float64   `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax     *float64   `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	Skills        []string   `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=50"`
	ExperienceMin *int       `json:"experience_min,omitempty" validate:"omitempty,min=0,max=50"`
	ExperienceMax *int       `json:"experience_max,omitempty" validate:"omitempty,min=0,max=50"`
	JobType       *string    `json:"job_type,omitempty" validate:"omitempty,is-job-type"`
	WorkMode      *string    `json:"work_mode,omitempty" validate:"omitempty,is-work-mode"`
	IsActive      *bool      `json:"is_active,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// JobSearchQuery drives the public job search. The same shape is
// serialized into job_alerts.search_params, so a saved alert replays
// exactly what the user searched for.
type JobSearchQuery struct {
	Search        string  `form:"search" json:"search,omitempty" validate:"omitempty,max=200"`
	Location      string  `form:"location" json:"location,omitempty" validate:"omitempty,max=200"`
	JobType       string  `form:"job_type" json:"job_type,omitempty" validate:"omitempty,is-job-type"`
	WorkMode      string  `form:"work_mode" json:"work_mode,omitempty" validate:"omitempty,is-work-mode"`
	SalaryMin     float64 `form:"salary_min" json:"salary_min,omitempty" validate:"omitempty,min=0"`
	ExperienceMin *int    `form:"experience_min" json:"experience_min,omitempty" validate:"omitempty,min=0,max=50"`
	ExperienceMax *int    `form:"experience_max" json:"experience_max,omitempty" validate:"omitempty,min=0,max=50"`
	// Skills is a comma-separated list; a job matches when it carries
	// at least one of them.
	Skills string `form:"skills" json:"skills,omitempty" validate:"omitempty,max=500"`
	PaginationQuery
}

// --- Job Responses ---

type JobResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Company          string     `json:"company"`
	CompanyID        *string    `json:"company_id,omitempty"`
	PostedBy         string     `json:"posted_by"`
	Location         string     `json:"location"`
	SalaryMin        float64    `json:"salary_min"`
	SalaryMax        float64    `json:"salary_max"`
	Skills           []string   `json:"skills"`
	ExperienceMin    int        `json:"experience_min"`
	ExperienceMax    int        `json:"experience_max"`
	JobType          string     `json:"job_type"`
	WorkMode         string     `json:"work_mode"`
	ApplicationCount int        `json:"application_count"`
	ViewCount        int        `json:"view_count"`
	IsActive         bool       `json:"is_active"`
	PostedDate       time.Time  `json:"posted_date"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

// NewJobResponse maps the persisted job onto the API shape.
func NewJobResponse(j *models.Job) JobResponse {
	return JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Description:      j.Description,
		Company:          j.Company,
		CompanyID:        j.CompanyID,
		PostedBy:         j.PostedBy,
		Location:         j.Location,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		Skills:           j.Skills,
		ExperienceMin:    j.ExperienceMin,
		ExperienceMax:    j.ExperienceMax,
		JobType:          string(j.JobType),
		WorkMode:         string(j.WorkMode),
		ApplicationCount: j.ApplicationCount,
		ViewCount:        j.ViewCount,
		IsActive:         j.IsActive,
		PostedDate:       j.PostedDate,
		ExpiresAt:        j.ExpiresAt,
	}
}

type JobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// JobMatchResponse explains how well a job fits the caller's profile.
type JobMatchResponse struct {
	JobID   string   `json:"job_id"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}
