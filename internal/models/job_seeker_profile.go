package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// JobSeekerProfile extends a job_seeker user. One row per user.
type JobSeekerProfile struct {
	BaseModel
	UserID               string         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Headline             string         `json:"headline"`
	Summary              string         `gorm:"type:text" json:"summary"`
	Skills               pq.StringArray `gorm:"type:text[]" json:"skills"`
	ExperienceYears      int            `gorm:"default:0" json:"experience_years"`
	Education            datatypes.JSON `gorm:"type:jsonb" json:"education"`       // [{"degree": "...", "institution": "...", "year": ...}]
	WorkExperience       datatypes.JSON `gorm:"type:jsonb" json:"work_experience"` // [{"title": "...", "company": "...", "years": ...}]
	PreferredLocations   pq.StringArray `gorm:"type:text[]" json:"preferred_locations"`
	CurrentLocation      string         `json:"current_location"`
	ExpectedSalary       float64        `json:"expected_salary"`
	NoticePeriodDays     int            `gorm:"default:0" json:"notice_period_days"`
	ResumeID             *string        `gorm:"type:uuid" json:"resume_id,omitempty"`
	ProfilePicture       string         `json:"profile_picture,omitempty"`
	ProfileCompletionPct int            `gorm:"default:0;check:profile_completion_pct >= 0 AND profile_completion_pct <= 100" json:"profile_completion_pct"`
	IsPublic             bool           `gorm:"default:true" json:"is_public"`
	ProfileViews         int            `gorm:"default:0" json:"profile_views"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
