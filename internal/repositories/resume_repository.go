package repositories

import (
	"errors"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"gorm.io/gorm"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(db *gorm.DB, resume *models.Resume) error
	FindByID(db *gorm.DB, id string) (*models.Resume, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Resume, error)
	CountByUser(db *gorm.DB, userID string) (int64, error)
	Update(db *gorm.DB, resume *models.Resume) error
	Delete(db *gorm.DB, id string) error
	SetPrimary(db *gorm.DB, userID, resumeID string) error
}

type ResumeRepositoryImpl struct{}

func NewResumeRepository() ResumeRepository {
	return &ResumeRepositoryImpl{}
}

func (r *ResumeRepositoryImpl) Create(db *gorm.DB, resume *models.Resume) error {
	return db.Create(resume).Error
}

func (r *ResumeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Resume, error) {
	var resume models.Resume
	if err := db.First(&resume, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := db.Where("user_id = ?", userID).
		Order("is_primary DESC, created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepositoryImpl) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Resume{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *ResumeRepositoryImpl) Update(db *gorm.DB, resume *models.Resume) error {
	result := db.Save(resume)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *ResumeRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Resume{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

// SetPrimary flips the primary flag to the given resume inside one
// transaction so a user never has two primaries.
func (r *ResumeRepositoryImpl) SetPrimary(db *gorm.DB, userID, resumeID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Resume{}).
			Where("user_id = ?", userID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Resume{}).
			Where("id = ? AND user_id = ?", resumeID, userID).
			Update("is_primary", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrResumeNotFound
		}
		return nil
	})
}
