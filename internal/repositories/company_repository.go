package repositories

import (
	"errors"
	"strings"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists")
	ErrVerificationNotFound = errors.New("verification request not found")
	ErrVerificationPending  = errors.New("verification request already pending")
)

type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByID(db *gorm.DB, id string) (*models.Company, error)
	FindByName(db *gorm.DB, name string) (*models.Company, error)
	Update(db *gorm.DB, company *models.Company) error
	Delete(db *gorm.DB, id string) error
	List(db *gorm.DB, search, industry string, page, pageSize int) ([]models.Company, int64, error)
	SetVerificationStatus(db *gorm.DB, companyID string, status models.VerificationStatus) error
	UpdateRatingAggregate(db *gorm.DB, companyID string, avg float64, count int) error
	CountAll(db *gorm.DB) (int64, error)
	CountByOwner(db *gorm.DB, ownerID string) (int64, error)

	// Verification requests
	CreateVerification(db *gorm.DB, verification *models.CompanyVerification) error
	FindVerificationByID(db *gorm.DB, id string) (*models.CompanyVerification, error)
	FindPendingVerification(db *gorm.DB, companyID string) (*models.CompanyVerification, error)
	ListVerifications(db *gorm.DB, status models.VerificationStatus, page, pageSize int) ([]models.CompanyVerification, int64, error)
	UpdateVerification(db *gorm.DB, verification *models.CompanyVerification) error
	CountPendingVerifications(db *gorm.DB) (int64, error)
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	var existing models.Company
	if err := db.Where("LOWER(name) = LOWER(?)", company.Name).First(&existing).Error; err == nil {
		return ErrCompanyAlreadyExists
	}
	if err := db.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompanyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Company, error) {
	var company models.Company
	if err := db.Where("LOWER(name) = LOWER(?)", name).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Update(db *gorm.DB, company *models.Company) error {
	result := db.Save(company)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Company{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) List(db *gorm.DB, search, industry string, page, pageSize int) ([]models.Company, int64, error) {
	query := db.Model(&models.Company{})

	if search != "" {
		pattern := "%" + strings.TrimSpace(search) + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if industry != "" {
		query = query.Where("industry ILIKE ?", "%"+strings.TrimSpace(industry)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []models.Company
	err := query.Order("rating_avg DESC, created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (r *CompanyRepositoryImpl) SetVerificationStatus(db *gorm.DB, companyID string, status models.VerificationStatus) error {
	result := db.Model(&models.Company{}).Where("id = ?", companyID).
		Update("verification_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) UpdateRatingAggregate(db *gorm.DB, companyID string, avg float64, count int) error {
	result := db.Model(&models.Company{}).Where("id = ?", companyID).Updates(map[string]interface{}{
		"rating_avg":   avg,
		"rating_count": count,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Company{}).Count(&count).Error
	return count, err
}

func (r *CompanyRepositoryImpl) CountByOwner(db *gorm.DB, ownerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Company{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// Verification requests

func (r *CompanyRepositoryImpl) CreateVerification(db *gorm.DB, verification *models.CompanyVerification) error {
	var existing models.CompanyVerification
	err := db.Where("company_id = ? AND status = ?", verification.CompanyID, models.VerificationStatusPending).
		First(&existing).Error
	if err == nil {
		return ErrVerificationPending
	}
	return db.Create(verification).Error
}

func (r *CompanyRepositoryImpl) FindVerificationByID(db *gorm.DB, id string) (*models.CompanyVerification, error) {
	var verification models.CompanyVerification
	if err := db.First(&verification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &verification, nil
}

func (r *CompanyRepositoryImpl) FindPendingVerification(db *gorm.DB, companyID string) (*models.CompanyVerification, error) {
	var verification models.CompanyVerification
	err := db.Where("company_id = ? AND status = ?", companyID, models.VerificationStatusPending).
		First(&verification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &verification, nil
}

func (r *CompanyRepositoryImpl) ListVerifications(db *gorm.DB, status models.VerificationStatus, page, pageSize int) ([]models.CompanyVerification, int64, error) {
	query := db.Model(&models.CompanyVerification{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var verifications []models.CompanyVerification
	err := query.Order("created_at ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&verifications).Error
	if err != nil {
		return nil, 0, err
	}
	return verifications, total, nil
}

func (r *CompanyRepositoryImpl) UpdateVerification(db *gorm.DB, verification *models.CompanyVerification) error {
	result := db.Save(verification)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVerificationNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) CountPendingVerifications(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.CompanyVerification{}).
		Where("status = ?", models.VerificationStatusPending).
		Count(&count).Error
	return count, err
}
