package models

import "time"

// Application links a job seeker to a job. One application per
// (job_id, user_id) pair, enforced by the composite unique index.
type Application struct {
	BaseModel
	JobID           string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID          string            `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_user" json:"user_id"`
	Status          ApplicationStatus `gorm:"type:varchar(20);default:'applied'" json:"status"`
	CoverLetter     string            `gorm:"type:text" json:"cover_letter"`
	ResumeID        *string           `gorm:"type:uuid" json:"resume_id,omitempty"`
	StatusUpdatedAt *time.Time        `json:"status_updated_at,omitempty"`

	// Relations
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
