package repositories

import (
	"errors"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this company")
)

// RatingAggregate is the recomputed rating summary for a company.
type RatingAggregate struct {
	Average float64
	Count   int64
}

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByCompanyAndUser(db *gorm.DB, companyID, userID string) (*models.Review, error)
	ListByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.Review, int64, error)
	Update(db *gorm.DB, review *models.Review) error
	Delete(db *gorm.DB, id string) error
	// DeleteByUser removes every review a user wrote and returns the
	// distinct company IDs whose aggregates now need recomputing.
	DeleteByUser(db *gorm.DB, userID string) ([]string, error)
	AggregateForCompany(db *gorm.DB, companyID string) (*RatingAggregate, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	var existing models.Review
	err := db.Where("company_id = ? AND user_id = ?", review.CompanyID, review.UserID).
		First(&existing).Error
	if err == nil {
		return ErrReviewAlreadyExists
	}
	if err := db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrReviewAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("User").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByCompanyAndUser(db *gorm.DB, companyID, userID string) (*models.Review, error) {
	var review models.Review
	err := db.Where("company_id = ? AND user_id = ?", companyID, userID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) ListByCompany(db *gorm.DB, companyID string, page, pageSize int) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{}).Where("company_id = ?", companyID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewRepositoryImpl) Update(db *gorm.DB, review *models.Review) error {
	result := db.Save(review)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) DeleteByUser(db *gorm.DB, userID string) ([]string, error) {
	var companyIDs []string
	err := db.Model(&models.Review{}).
		Distinct("company_id").
		Where("user_id = ?", userID).
		Pluck("company_id", &companyIDs).Error
	if err != nil {
		return nil, err
	}
	if len(companyIDs) == 0 {
		return nil, nil
	}
	if err := db.Where("user_id = ?", userID).Delete(&models.Review{}).Error; err != nil {
		return nil, err
	}
	return companyIDs, nil
}

func (r *ReviewRepositoryImpl) AggregateForCompany(db *gorm.DB, companyID string) (*RatingAggregate, error) {
	var agg struct {
		Average float64
		Count   int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating_overall), 0) as average, COUNT(*) as count").
		Where("company_id = ?", companyID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &RatingAggregate{Average: agg.Average, Count: agg.Count}, nil
}
