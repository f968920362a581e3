package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobAlert stores a saved search. The digest worker matches its
// search_params against newly posted jobs.
type JobAlert struct {
	BaseModel
	UserID             string         `gorm:"type:uuid;not null;uniqueIndex:idx_job_alerts_user_title" json:"user_id"`
	Title              string         `gorm:"not null;uniqueIndex:idx_job_alerts_user_title" json:"title"`
	SearchParams       datatypes.JSON `gorm:"type:jsonb" json:"search_params"` // serialized dto.JobSearchQuery
	Frequency          AlertFrequency `gorm:"type:varchar(10);default:'daily'" json:"frequency"`
	IsActive           bool           `gorm:"default:true;index" json:"is_active"`
	EmailNotifications bool           `gorm:"default:true" json:"email_notifications"`
	LastTriggered      *time.Time     `json:"last_triggered,omitempty"`
	MatchedJobsCount   int            `gorm:"default:0" json:"matched_jobs_count"`
}
