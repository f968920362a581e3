package models

import (
	"time"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	Title            string         `gorm:"not null;index" json:"title"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	Company          string         `gorm:"not null" json:"company"`
	CompanyID        *string        `gorm:"type:uuid;index" json:"company_id,omitempty"`
	PostedBy         string         `gorm:"type:uuid;not null;index" json:"posted_by"`
	Location         string         `gorm:"index" json:"location"`
	SalaryMin        float64        `json:"salary_min"`
	SalaryMax        float64        `json:"salary_max"`
	Skills           pq.StringArray `gorm:"type:text[]" json:"skills"`
	ExperienceMin    int            `gorm:"default:0" json:"experience_min"`
	ExperienceMax    int            `gorm:"default:0" json:"experience_max"`
	JobType          JobType        `gorm:"type:varchar(20);default:'full_time'" json:"job_type"`
	WorkMode         WorkMode       `gorm:"type:varchar(20);default:'onsite'" json:"work_mode"`
	ApplicationCount int            `gorm:"default:0" json:"application_count"`
	ViewCount        int            `gorm:"default:0" json:"view_count"`
	IsActive         bool           `gorm:"default:true;index" json:"is_active"`
	PostedDate       time.Time      `gorm:"default:now();index" json:"posted_date"`
	ExpiresAt        *time.Time     `json:"expires_at,omitempty"`

	// Relations
	Poster       *User    `gorm:"foreignKey:PostedBy" json:"poster,omitempty"`
	CompanyEntry *Company `gorm:"foreignKey:CompanyID" json:"company_entry,omitempty"`
}
