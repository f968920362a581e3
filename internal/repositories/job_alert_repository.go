package repositories

import (
	"errors"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobAlertNotFound      = errors.New("job alert not found")
	ErrJobAlertAlreadyExists = errors.New("job alert with this title already exists")
)

type JobAlertRepository interface {
	Create(db *gorm.DB, alert *models.JobAlert) error
	FindByID(db *gorm.DB, id string) (*models.JobAlert, error)
	FindByUserAndTitle(db *gorm.DB, userID, title string) (*models.JobAlert, error)
	ListByUser(db *gorm.DB, userID string) ([]models.JobAlert, error)
	ListActiveByFrequency(db *gorm.DB, frequency models.AlertFrequency) ([]models.JobAlert, error)
	Update(db *gorm.DB, alert *models.JobAlert) error
	MarkTriggered(db *gorm.DB, id string, matched int, at time.Time) error
	Delete(db *gorm.DB, id string) error
}

type JobAlertRepositoryImpl struct{}

func NewJobAlertRepository() JobAlertRepository {
	return &JobAlertRepositoryImpl{}
}

func (r *JobAlertRepositoryImpl) Create(db *gorm.DB, alert *models.JobAlert) error {
	var existing models.JobAlert
	err := db.Where("user_id = ? AND title = ?", alert.UserID, alert.Title).
		First(&existing).Error
	if err == nil {
		return ErrJobAlertAlreadyExists
	}
	if err := db.Create(alert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrJobAlertAlreadyExists
		}
		return err
	}
	return nil
}

func (r *JobAlertRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobAlert, error) {
	var alert models.JobAlert
	if err := db.First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *JobAlertRepositoryImpl) FindByUserAndTitle(db *gorm.DB, userID, title string) (*models.JobAlert, error) {
	var alert models.JobAlert
	err := db.Where("user_id = ? AND title = ?", userID, title).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *JobAlertRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.JobAlert, error) {
	var alerts []models.JobAlert
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *JobAlertRepositoryImpl) ListActiveByFrequency(db *gorm.DB, frequency models.AlertFrequency) ([]models.JobAlert, error) {
	var alerts []models.JobAlert
	err := db.Where("is_active = ? AND frequency = ?", true, frequency).Find(&alerts).Error
	return alerts, err
}

func (r *JobAlertRepositoryImpl) Update(db *gorm.DB, alert *models.JobAlert) error {
	result := db.Save(alert)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobAlertNotFound
	}
	return nil
}

func (r *JobAlertRepositoryImpl) MarkTriggered(db *gorm.DB, id string, matched int, at time.Time) error {
	result := db.Model(&models.JobAlert{}).Where("id = ?", id).Updates(map[string]interface{}{
		"last_triggered":     at,
		"matched_jobs_count": gorm.Expr("matched_jobs_count + ?", matched),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobAlertNotFound
	}
	return nil
}

func (r *JobAlertRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.JobAlert{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobAlertNotFound
	}
	return nil
}
