package dto

import (
	"encoding/json"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// --- Job Alert Requests ---

type CreateJobAlertRequest struct {
	Title              string         `json:"title" validate:"required,min=2,max=200"`
	SearchParams       JobSearchQuery `json:"search_params" validate:"required"`
	Frequency          string         `json:"frequency" validate:"omitempty,is-alert-frequency"`
	EmailNotifications *bool          `json:"email_notifications,omitempty"`
}

type UpdateJobAlertRequest struct {
	Title              *string         `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	SearchParams       *JobSearchQuery `json:"search_params,omitempty"`
	Frequency          *string         `json:"frequency,omitempty" validate:"omitempty,is-alert-frequency"`
	IsActive           *bool           `json:"is_active,omitempty"`
	EmailNotifications *bool           `json:"email_notifications,omitempty"`
}

// --- Job Alert Responses ---

type JobAlertResponse struct {
	ID                 string                `json:"id"`
	Title              string                `json:"title"`
	SearchParams       JobSearchQuery        `json:"search_params"`
	Frequency          models.AlertFrequency `json:"frequency"`
	IsActive           bool                  `json:"is_active"`
	EmailNotifications bool                  `json:"email_notifications"`
	LastTriggered      *time.Time            `json:"last_triggered,omitempty"`
	MatchedJobsCount   int                   `json:"matched_jobs_count"`
	CreatedAt          time.Time             `json:"created_at"`
}

// NewJobAlertResponse maps the persisted alert, decoding the stored
// search parameters.
func NewJobAlertResponse(a *models.JobAlert) JobAlertResponse {
	resp := JobAlertResponse{
		ID:                 a.ID,
		Title:              a.Title,
		Frequency:          a.Frequency,
		IsActive:           a.IsActive,
		EmailNotifications: a.EmailNotifications,
		LastTriggered:      a.LastTriggered,
		MatchedJobsCount:   a.MatchedJobsCount,
		CreatedAt:          a.CreatedAt,
	}
	if len(a.SearchParams) > 0 {
		_ = json.Unmarshal(a.SearchParams, &resp.SearchParams)
	}
	return resp
}

type JobAlertListResponse struct {
	Alerts []JobAlertResponse `json:"alerts"`
	Total  int64              `json:"total"`
}

// AlertMatchGroup is one alert together with the jobs that currently
// satisfy its saved search.
type AlertMatchGroup struct {
	AlertID    string        `json:"alert_id"`
	AlertTitle string        `json:"alert_title"`
	Jobs       []JobResponse `json:"jobs"`
}

type AlertMatchesResponse struct {
	Matches []AlertMatchGroup `json:"matches"`
}
