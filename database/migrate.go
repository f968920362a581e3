package database

import (
	"fmt"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate brings the schema up to date for every persisted model.
// Order matters only for readability; gorm resolves the foreign keys.
func AutoMigrate(db *gorm.DB) error {
	// BaseModel IDs default to uuid_generate_v4().
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.JobSeekerProfile{},
		&models.RecruiterProfile{},
		&models.Company{},
		&models.CompanyVerification{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
		&models.Notification{},
		&models.JobAlert{},
		&models.Resume{},
		&models.Review{},
	); err != nil {
		return fmt.Errorf("auto-migrate models: %w", err)
	}

	return nil
}
