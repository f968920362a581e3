package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title   string           `gorm:"not null" json:"title"`
	Message string           `json:"message"`
	Data    datatypes.JSON   `gorm:"type:jsonb" json:"data"` // {"job_id": "...", "application_id": "..."}
	IsRead  bool             `gorm:"default:false;index" json:"is_read"`
	ReadAt  *time.Time       `json:"read_at,omitempty"`
}
