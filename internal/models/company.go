package models

import (
	"time"

	"gorm.io/datatypes"
)

type Company struct {
	BaseModel
	Name               string             `gorm:"uniqueIndex;not null" json:"name"`
	Description        string             `gorm:"type:text" json:"description"`
	Website            string             `json:"website"`
	Industry           string             `json:"industry"`
	Size               string             `json:"size"`
	Location           string             `json:"location"`
	Logo               string             `json:"logo"`
	OwnerID            string             `gorm:"type:uuid;not null;index" json:"owner_id"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"verification_status"`
	RatingAvg          float64            `gorm:"default:0" json:"rating_avg"`
	RatingCount        int                `gorm:"default:0" json:"rating_count"`
}

// CompanyVerification tracks a verification request and the admin decision.
type CompanyVerification struct {
	BaseModel
	CompanyID   string             `gorm:"type:uuid;not null;index" json:"company_id"`
	RequestedBy string             `gorm:"type:uuid;not null" json:"requested_by"`
	Documents   datatypes.JSON     `gorm:"type:jsonb" json:"documents"` // [{"name": "...", "url": "..."}]
	Status      VerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Note        string             `json:"note"`
	VerifiedBy  *string            `gorm:"type:uuid" json:"verified_by,omitempty"`
	VerifiedAt  *time.Time         `json:"verified_at,omitempty"`

	// Relations
	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}
