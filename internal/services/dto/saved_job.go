package dto

import (
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

type SaveJobRequest struct {
	JobID string `json:"job_id" validate:"required,uuid4"`
}

type SavedJobResponse struct {
	ID      string       `json:"id"`
	JobID   string       `json:"job_id"`
	SavedAt time.Time    `json:"saved_at"`
	Job     *JobResponse `json:"job,omitempty"`
}

func NewSavedJobResponse(s *models.SavedJob) SavedJobResponse {
	resp := SavedJobResponse{
		ID:      s.ID,
		JobID:   s.JobID,
		SavedAt: s.CreatedAt,
	}
	if s.Job != nil {
		job := NewJobResponse(s.Job)
		resp.Job = &job
	}
	return resp
}

type SavedJobListResponse struct {
	SavedJobs  []SavedJobResponse `json:"saved_jobs"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
