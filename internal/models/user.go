package models

import "time"

type User struct {
	BaseModel
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"not null" json:"-"`
	FullName          string     `gorm:"not null" json:"full_name"`
	Mobile            string     `gorm:"type:varchar(10)" json:"mobile"`
	Role              UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	IsVerified        bool       `gorm:"default:false" json:"is_verified"`
	VerificationToken string     `json:"-"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`

	// Relations
	JobSeekerProfile *JobSeekerProfile `gorm:"foreignKey:UserID" json:"job_seeker_profile,omitempty"`
	RecruiterProfile *RecruiterProfile `gorm:"foreignKey:UserID" json:"recruiter_profile,omitempty"`
	RefreshTokens    []RefreshToken    `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string     `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}
