package models

// SavedJob is a bookmark. One row per (user_id, job_id) pair.
type SavedJob struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"user_id"`
	JobID  string `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_jobs_user_job" json:"job_id"`

	// Relations
	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
