package dto

import (
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// --- Application Requests ---

type CreateApplicationRequest struct {
	JobID       string  `json:"job_id" validate:"required,uuid4"`
	CoverLetter string  `json:"cover_letter" validate:"omitempty,max=5000"`
	ResumeID    *string `json:"resume_id,omitempty" validate:"omitempty,uuid4"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

type ApplicationListQuery struct {
	Status models.ApplicationStatus `form:"status" validate:"omitempty,is-application-status"`
	PaginationQuery
}

// --- Application Responses ---

type ApplicationResponse struct {
	ID              string                   `json:"id"`
	JobID           string                   `json:"job_id"`
	UserID          string                   `json:"user_id"`
	Status          models.ApplicationStatus `json:"status"`
	CoverLetter     string                   `json:"cover_letter,omitempty"`
	ResumeID        *string                  `json:"resume_id,omitempty"`
	StatusUpdatedAt *time.Time               `json:"status_updated_at,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`

	// Denormalized context, filled when the relation was preloaded.
	Job       *JobResponse `json:"job,omitempty"`
	Applicant *UserResponse `json:"applicant,omitempty"`
}

// NewApplicationResponse maps the persisted application onto the API
// shape, attaching whichever relations were preloaded.
func NewApplicationResponse(a *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:              a.ID,
		JobID:           a.JobID,
		UserID:          a.UserID,
		Status:          a.Status,
		CoverLetter:     a.CoverLetter,
		ResumeID:        a.ResumeID,
		StatusUpdatedAt: a.StatusUpdatedAt,
		CreatedAt:       a.CreatedAt,
	}
	if a.Job != nil {
		job := NewJobResponse(a.Job)
		resp.Job = &job
	}
	if a.User != nil {
		applicant := NewUserResponse(a.User)
		resp.Applicant = &applicant
	}
	return resp
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
}
