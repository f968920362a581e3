package services

import (
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AdminService interface {
	ListUsers(db *gorm.DB, query dto.AdminUserFilter) (*dto.UserListResponse, error)
	GetUser(db *gorm.DB, userID string) (*dto.UserResponse, error)
	SetUserStatus(db *gorm.DB, adminID, userID string, req *dto.SetUserStatusRequest) (*dto.UserResponse, error)
	DeleteUser(db *gorm.DB, adminID, userID string) error
	ListJobs(db *gorm.DB, query dto.JobSearchQuery) (*dto.JobListResponse, error)
	SetJobStatus(db *gorm.DB, jobID string, req *dto.SetJobStatusRequest) (*dto.JobResponse, error)
	PlatformStats() (*dto.PlatformStatsResponse, error)
}

type adminService struct {
	userRepo         repositories.UserRepository
	jobRepo          repositories.JobRepository
	companyRepo      repositories.CompanyRepository
	reviewRepo       repositories.ReviewRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	statsRepo        repositories.StatsRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	reviewRepo repositories.ReviewRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	statsRepo repositories.StatsRepository,
) AdminService {
	return &adminService{
		userRepo:         userRepo,
		jobRepo:          jobRepo,
		companyRepo:      companyRepo,
		reviewRepo:       reviewRepo,
		refreshTokenRepo: refreshTokenRepo,
		statsRepo:        statsRepo,
	}
}

func (s *adminService) ListUsers(db *gorm.DB, query dto.AdminUserFilter) (*dto.UserListResponse, error) {
	query.Normalize()

	users, total, err := s.userRepo.List(db, repositories.UserFilter{
		Role:     query.Role,
		IsActive: query.IsActive,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return &dto.UserListResponse{
		Users:      items,
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: dto.TotalPages(total, query.PageSize),
	}, nil
}

func (s *adminService) GetUser(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByIDWithProfiles(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	if user.JobSeekerProfile != nil {
		seeker := dto.NewJobSeekerProfileResponse(user.JobSeekerProfile)
		resp.Seeker = &seeker
	}
	if user.RecruiterProfile != nil {
		recruiter := dto.NewRecruiterProfileResponse(user.RecruiterProfile)
		resp.Recruiter = &recruiter
	}
	return &resp, nil
}

// SetUserStatus activates or deactivates an account. Deactivation also
// revokes refresh tokens so existing sessions cannot renew.
func (s *adminService) SetUserStatus(db *gorm.DB, adminID, userID string, req *dto.SetUserStatusRequest) (*dto.UserResponse, error) {
	if adminID == userID {
		return nil, apperrors.ErrCannotModifySelf
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	active := *req.IsActive
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.SetActive(tx, userID, active); err != nil {
			return err
		}
		if !active {
			return s.refreshTokenRepo.RevokeAllForUser(tx, userID)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.IsActive = active
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// DeleteUser removes an account and everything hanging off it. Users
// still owning jobs or companies are refused; those accounts should be
// deactivated so postings keep a valid owner.
func (s *adminService) DeleteUser(db *gorm.DB, adminID, userID string) error {
	if adminID == userID {
		return apperrors.ErrCannotModifySelf
	}

	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	ownedJobs, err := s.jobRepo.CountByPoster(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	ownedCompanies, err := s.companyRepo.CountByOwner(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if ownedJobs > 0 || ownedCompanies > 0 {
		return apperrors.ErrConflict(nil, "user",
			"User still owns jobs or companies, deactivate the account instead")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.purgeUserData(tx, userID); err != nil {
			return err
		}
		return s.userRepo.Delete(tx, userID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// purgeUserData deletes the rows that reference the user. The schema
// does not declare ON DELETE CASCADE, so dependents go explicitly,
// counters and aggregates included.
func (s *adminService) purgeUserData(tx *gorm.DB, userID string) error {
	// Applications feed jobs.application_count; settle the counters
	// before the rows disappear.
	err := tx.Exec(`
        UPDATE jobs SET application_count = GREATEST(application_count - sub.cnt, 0)
        FROM (SELECT job_id, COUNT(*) AS cnt FROM applications WHERE user_id = ? GROUP BY job_id) sub
        WHERE jobs.id = sub.job_id
    `, userID).Error
	if err != nil {
		return err
	}

	for _, model := range []interface{}{
		&models.Application{},
		&models.SavedJob{},
		&models.JobAlert{},
		&models.Notification{},
		&models.Resume{},
		&models.JobSeekerProfile{},
		&models.RecruiterProfile{},
		&models.RefreshToken{},
	} {
		if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
			return err
		}
	}

	companyIDs, err := s.reviewRepo.DeleteByUser(tx, userID)
	if err != nil {
		return err
	}
	for _, companyID := range companyIDs {
		if err := recomputeCompanyRating(tx, s.reviewRepo, s.companyRepo, companyID); err != nil {
			return err
		}
	}
	return nil
}

func (s *adminService) ListJobs(db *gorm.DB, query dto.JobSearchQuery) (*dto.JobListResponse, error) {
	query.Normalize()

	criteria := searchCriteriaFromQuery(query, nil)
	criteria.IncludeInactive = true

	jobs, total, err := s.jobRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobListResponse(jobs, total, query.Page, query.PageSize), nil
}

func (s *adminService) SetJobStatus(db *gorm.DB, jobID string, req *dto.SetJobStatusRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.jobRepo.SetActive(db, jobID, *req.IsActive); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.IsActive = *req.IsActive
	resp := dto.NewJobResponse(job)
	return &resp, nil
}

func (s *adminService) PlatformStats() (*dto.PlatformStatsResponse, error) {
	stats, err := s.statsRepo.PlatformStats()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PlatformStatsResponse{
		TotalUsers:           stats.TotalUsers,
		JobSeekers:           stats.JobSeekers,
		Employers:            stats.Employers,
		ActiveUsers:          stats.ActiveUsers,
		TotalJobs:            stats.TotalJobs,
		ActiveJobs:           stats.ActiveJobs,
		TotalApplications:    stats.TotalApplications,
		ApplicationsByStatus: stats.ApplicationsByStatus,
		TotalCompanies:       stats.TotalCompanies,
		PendingVerifications: stats.PendingVerifications,
	}, nil
}
