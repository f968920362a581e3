package repositories

import (
	"errors"
	"strings"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

// CandidateSearchCriteria narrows the employer-facing candidate search.
// Only public profiles are ever returned.
type CandidateSearchCriteria struct {
	// Skills matches profiles carrying at least one of the given
	// skills (postgres array overlap).
	Skills        []string
	Location      string
	MinExperience int
	Limit         int
}

type ProfileRepository interface {
	// JobSeekerProfile operations
	CreateJobSeekerProfile(db *gorm.DB, profile *models.JobSeekerProfile) error
	FindJobSeekerProfileByUserID(db *gorm.DB, userID string) (*models.JobSeekerProfile, error)
	UpdateJobSeekerProfile(db *gorm.DB, profile *models.JobSeekerProfile) error
	IncrementProfileViews(db *gorm.DB, userID string) error
	SearchCandidates(db *gorm.DB, criteria CandidateSearchCriteria) ([]models.JobSeekerProfile, error)

	// RecruiterProfile operations
	CreateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error
	FindRecruiterProfileByUserID(db *gorm.DB, userID string) (*models.RecruiterProfile, error)
	UpdateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// JobSeekerProfile operations

func (r *ProfileRepositoryImpl) CreateJobSeekerProfile(db *gorm.DB, profile *models.JobSeekerProfile) error {
	var existing models.JobSeekerProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	if err := db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindJobSeekerProfileByUserID(db *gorm.DB, userID string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateJobSeekerProfile(db *gorm.DB, profile *models.JobSeekerProfile) error {
	result := db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) IncrementProfileViews(db *gorm.DB, userID string) error {
	return db.Model(&models.JobSeekerProfile{}).Where("user_id = ?", userID).
		Update("profile_views", gorm.Expr("profile_views + ?", 1)).Error
}

func (r *ProfileRepositoryImpl) SearchCandidates(db *gorm.DB, criteria CandidateSearchCriteria) ([]models.JobSeekerProfile, error) {
	query := db.Model(&models.JobSeekerProfile{}).Where("is_public = ?", true)

	if len(criteria.Skills) > 0 {
		query = query.Where("skills && ?", pq.Array(criteria.Skills))
	}
	if criteria.Location != "" {
		pattern := "%" + strings.TrimSpace(criteria.Location) + "%"
		query = query.Where("current_location ILIKE ? OR ? ILIKE ANY(preferred_locations)",
			pattern, strings.TrimSpace(criteria.Location))
	}
	if criteria.MinExperience > 0 {
		query = query.Where("experience_years >= ?", criteria.MinExperience)
	}

	limit := criteria.Limit
	if limit < 1 || limit > 50 {
		limit = 50
	}

	var profiles []models.JobSeekerProfile
	err := query.Preload("User").
		Order("profile_completion_pct DESC, experience_years DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// RecruiterProfile operations

func (r *ProfileRepositoryImpl) CreateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error {
	var existing models.RecruiterProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	if err := db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindRecruiterProfileByUserID(db *gorm.DB, userID string) (*models.RecruiterProfile, error) {
	var profile models.RecruiterProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error {
	result := db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
