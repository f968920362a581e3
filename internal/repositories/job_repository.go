package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobSearchCriteria is the repository-level search shape. Services map
// the transport query onto it.
type JobSearchCriteria struct {
	Search        string
	Location      string
	JobType       string
	WorkMode      string
	SalaryMin     float64
	ExperienceMin *int
	ExperienceMax *int
	// Skills matches jobs carrying at least one of the given skills
	// (postgres array overlap).
	Skills          []string
	PostedAfter     *time.Time
	PostedBy        string
	IncludeInactive bool
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	UpdateFields(db *gorm.DB, jobID string, fields map[string]interface{}) error
	SetActive(db *gorm.DB, jobID string, active bool) error
	Delete(db *gorm.DB, jobID string) error
	Search(db *gorm.DB, criteria JobSearchCriteria) ([]models.Job, int64, error)
	IncrementViewCount(db *gorm.DB, jobID string) error
	IncrementApplicationCount(db *gorm.DB, jobID string) error
	DecrementApplicationCount(db *gorm.DB, jobID string) error
	DeactivateExpired(db *gorm.DB, now time.Time) (int64, error)
	CountAll(db *gorm.DB) (int64, error)
	CountActive(db *gorm.DB) (int64, error)
	CountByPoster(db *gorm.DB, posterID string) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	result := db.Save(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateFields(db *gorm.DB, jobID string, fields map[string]interface{}) error {
	result := db.Model(&models.Job{}).Where("id = ?", jobID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) SetActive(db *gorm.DB, jobID string, active bool) error {
	return r.UpdateFields(db, jobID, map[string]interface{}{"is_active": active})
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, jobID string) error {
	result := db.Where("id = ?", jobID).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Search(db *gorm.DB, criteria JobSearchCriteria) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{})

	if !criteria.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if criteria.PostedBy != "" {
		query = query.Where("posted_by = ?", criteria.PostedBy)
	}
	if criteria.Search != "" {
		pattern := "%" + strings.TrimSpace(criteria.Search) + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR company ILIKE ?",
			pattern, pattern, pattern)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+strings.TrimSpace(criteria.Location)+"%")
	}
	if criteria.JobType != "" {
		query = query.Where("job_type = ?", criteria.JobType)
	}
	if criteria.WorkMode != "" {
		query = query.Where("work_mode = ?", criteria.WorkMode)
	}
	if criteria.SalaryMin > 0 {
		query = query.Where("salary_max >= ?", criteria.SalaryMin)
	}
	if criteria.ExperienceMin != nil {
		query = query.Where("experience_max >= ?", *criteria.ExperienceMin)
	}
	if criteria.ExperienceMax != nil {
		query = query.Where("experience_min <= ?", *criteria.ExperienceMax)
	}
	if len(criteria.Skills) > 0 {
		query = query.Where("skills && ?", pq.Array(criteria.Skills))
	}
	if criteria.PostedAfter != nil {
		query = query.Where("posted_date > ?", *criteria.PostedAfter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 {
		criteria.PageSize = 20
	}

	var jobs []models.Job
	err := query.Order(fmt.Sprintf("%s %s", jobSortField(criteria.SortBy), sortOrder(criteria.SortOrder))).
		Limit(criteria.PageSize).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) IncrementViewCount(db *gorm.DB, jobID string) error {
	return db.Model(&models.Job{}).Where("id = ?", jobID).
		Update("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *JobRepositoryImpl) IncrementApplicationCount(db *gorm.DB, jobID string) error {
	return db.Model(&models.Job{}).Where("id = ?", jobID).
		Update("application_count", gorm.Expr("application_count + ?", 1)).Error
}

func (r *JobRepositoryImpl) DecrementApplicationCount(db *gorm.DB, jobID string) error {
	return db.Model(&models.Job{}).Where("id = ? AND application_count > 0", jobID).
		Update("application_count", gorm.Expr("application_count - ?", 1)).Error
}

// DeactivateExpired turns off jobs whose expiry has passed and returns
// how many rows were touched.
func (r *JobRepositoryImpl) DeactivateExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.Job{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at < ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *JobRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountByPoster(db *gorm.DB, posterID string) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).Where("posted_by = ?", posterID).Count(&count).Error
	return count, err
}

// allowed sort fields for job search; anything else falls back to the
// posting date.
func jobSortField(field string) string {
	switch field {
	case "salary_max":
		return "salary_max"
	case "salary_min":
		return "salary_min"
	case "view_count":
		return "view_count"
	case "posted_date", "":
		return "posted_date"
	default:
		return "posted_date"
	}
}

func sortOrder(order string) string {
	if strings.EqualFold(order, "asc") {
		return "ASC"
	}
	return "DESC"
}
