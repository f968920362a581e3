package repositories

import (
	"errors"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSavedJobNotFound      = errors.New("saved job not found")
	ErrSavedJobAlreadyExists = errors.New("job already saved")
)

type SavedJobRepository interface {
	Create(db *gorm.DB, savedJob *models.SavedJob) error
	FindByID(db *gorm.DB, id string) (*models.SavedJob, error)
	FindByUserAndJob(db *gorm.DB, userID, jobID string) (*models.SavedJob, error)
	ListByUser(db *gorm.DB, userID string, page, pageSize int) ([]models.SavedJob, int64, error)
	Delete(db *gorm.DB, id string) error
}

type SavedJobRepositoryImpl struct{}

func NewSavedJobRepository() SavedJobRepository {
	return &SavedJobRepositoryImpl{}
}

func (r *SavedJobRepositoryImpl) Create(db *gorm.DB, savedJob *models.SavedJob) error {
	var existing models.SavedJob
	err := db.Where("user_id = ? AND job_id = ?", savedJob.UserID, savedJob.JobID).
		First(&existing).Error
	if err == nil {
		return ErrSavedJobAlreadyExists
	}
	if err := db.Create(savedJob).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSavedJobAlreadyExists
		}
		return err
	}
	return nil
}

func (r *SavedJobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.SavedJob, error) {
	var savedJob models.SavedJob
	if err := db.First(&savedJob, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedJobNotFound
		}
		return nil, err
	}
	return &savedJob, nil
}

func (r *SavedJobRepositoryImpl) FindByUserAndJob(db *gorm.DB, userID, jobID string) (*models.SavedJob, error) {
	var savedJob models.SavedJob
	err := db.Where("user_id = ? AND job_id = ?", userID, jobID).First(&savedJob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedJobNotFound
		}
		return nil, err
	}
	return &savedJob, nil
}

func (r *SavedJobRepositoryImpl) ListByUser(db *gorm.DB, userID string, page, pageSize int) ([]models.SavedJob, int64, error) {
	query := db.Model(&models.SavedJob{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var savedJobs []models.SavedJob
	err := query.Preload("Job").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&savedJobs).Error
	if err != nil {
		return nil, 0, err
	}
	return savedJobs, total, nil
}

func (r *SavedJobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}
