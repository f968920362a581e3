package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Resume holds upload metadata plus the analysis results filled in
// after text extraction.
type Resume struct {
	BaseModel
	UserID        string         `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName      string         `gorm:"not null" json:"file_name"`
	FileKey       string         `gorm:"not null" json:"-"` // storage object key
	FileSize      int64          `gorm:"not null" json:"file_size"`
	FileType      string         `gorm:"not null" json:"file_type"`
	ExtractedText string         `gorm:"type:text" json:"-"`
	ATSScore      int            `gorm:"default:0" json:"ats_score"`
	Skills        pq.StringArray `gorm:"type:text[]" json:"skills"`
	Achievements  pq.StringArray `gorm:"type:text[]" json:"achievements"`
	Improvements  pq.StringArray `gorm:"type:text[]" json:"improvements"`
	Sections      datatypes.JSON `gorm:"type:jsonb" json:"sections"` // {"summary": "...", "experience": "..."}
	IsPrimary     bool           `gorm:"default:false" json:"is_primary"`
}
