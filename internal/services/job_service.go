package services

import (
	"strings"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/algorithms"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(db *gorm.DB, jobID, viewerID string, viewerRole models.UserRole) (*dto.JobResponse, error)
	SearchJobs(db *gorm.DB, query dto.JobSearchQuery) (*dto.JobListResponse, error)
	MyJobs(db *gorm.DB, employerID string, page dto.PaginationQuery) (*dto.JobListResponse, error)
	UpdateJob(db *gorm.DB, requesterID string, requesterRole models.UserRole, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteJob(db *gorm.DB, requesterID string, requesterRole models.UserRole, jobID string) error
	MatchForSeeker(db *gorm.DB, seekerID, jobID string) (*dto.JobMatchResponse, error)
}

type jobService struct {
	jobRepo     repositories.JobRepository
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
	profileRepo repositories.ProfileRepository
	alerts      JobAlertService
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	profileRepo repositories.ProfileRepository,
	alerts JobAlertService,
) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		profileRepo: profileRepo,
		alerts:      alerts,
	}
}

func (s *jobService) CreateJob(db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	employer, err := s.userRepo.FindByID(db, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if employer.Role != models.UserRoleEmployer && employer.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.CompanyID != nil {
		company, err := s.companyRepo.FindByID(db, *req.CompanyID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCompanyNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		if company.OwnerID != employerID && employer.Role != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	jobType := models.JobTypeFullTime
	if req.JobType != "" {
		jobType = models.JobType(req.JobType)
	}
	workMode := models.WorkModeOnsite
	if req.WorkMode != "" {
		workMode = models.WorkMode(req.WorkMode)
	}

	job := &models.Job{
		Title:         req.Title,
		Description:   req.Description,
		Company:       req.Company,
		CompanyID:     req.CompanyID,
		PostedBy:      employerID,
		Location:      req.Location,
		SalaryMin:     req.SalaryMin,
		SalaryMax:     req.SalaryMax,
		Skills:        pq.StringArray(req.Skills),
		ExperienceMin: req.ExperienceMin,
		ExperienceMax: req.ExperienceMax,
		JobType:       jobType,
		WorkMode:      workMode,
		IsActive:      true,
		PostedDate:    time.Now(),
		ExpiresAt:     req.ExpiresAt,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Instant alerts fire on creation; failures only cost the alert,
	// never the posting.
	if s.alerts != nil {
		if err := s.alerts.EvaluateInstant(db, job); err != nil {
			logger.WithError(err).Warn("Instant alert evaluation failed", "job_id", job.ID)
		}
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// GetJob returns a posting and counts the view. Inactive postings stay
// visible to their owner and to admins so they can be edited or
// reactivated.
func (s *jobService) GetJob(db *gorm.DB, jobID, viewerID string, viewerRole models.UserRole) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !job.IsActive && job.PostedBy != viewerID && viewerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	if job.IsActive && job.PostedBy != viewerID {
		if err := s.jobRepo.IncrementViewCount(db, job.ID); err != nil {
			logger.WithError(err).Warn("Failed to count job view", "job_id", job.ID)
		} else {
			job.ViewCount++
		}
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

func (s *jobService) SearchJobs(db *gorm.DB, query dto.JobSearchQuery) (*dto.JobListResponse, error) {
	query.Normalize()
	criteria := searchCriteriaFromQuery(query, nil)

	jobs, total, err := s.jobRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobListResponse(jobs, total, query.Page, query.PageSize), nil
}

func (s *jobService) MyJobs(db *gorm.DB, employerID string, page dto.PaginationQuery) (*dto.JobListResponse, error) {
	page.Normalize()
	criteria := repositories.JobSearchCriteria{
		PostedBy:        employerID,
		IncludeInactive: true,
		Page:            page.Page,
		PageSize:        page.PageSize,
	}

	jobs, total, err := s.jobRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobListResponse(jobs, total, page.Page, page.PageSize), nil
}

func (s *jobService) UpdateJob(db *gorm.DB, requesterID string, requesterRole models.UserRole, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.ownedJob(db, requesterID, requesterRole, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if job.SalaryMax > 0 && job.SalaryMax < job.SalaryMin {
		return nil, apperrors.ErrInvalidOperation("job", "salary_max cannot be below salary_min")
	}
	if req.Skills != nil {
		job.Skills = pq.StringArray(req.Skills)
	}
	if req.ExperienceMin != nil {
		job.ExperienceMin = *req.ExperienceMin
	}
	if req.ExperienceMax != nil {
		job.ExperienceMax = *req.ExperienceMax
	}
	if job.ExperienceMax > 0 && job.ExperienceMax < job.ExperienceMin {
		return nil, apperrors.ErrInvalidOperation("job", "experience_max cannot be below experience_min")
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.WorkMode != nil {
		job.WorkMode = models.WorkMode(*req.WorkMode)
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		job.ExpiresAt = req.ExpiresAt
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// DeleteJob deactivates the posting instead of removing the row, so
// existing applications keep their job reference.
func (s *jobService) DeleteJob(db *gorm.DB, requesterID string, requesterRole models.UserRole, jobID string) error {
	job, err := s.ownedJob(db, requesterID, requesterRole, jobID)
	if err != nil {
		return err
	}
	if err := s.jobRepo.SetActive(db, job.ID, false); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *jobService) MatchForSeeker(db *gorm.DB, seekerID, jobID string) (*dto.JobMatchResponse, error) {
	profile, err := s.profileRepo.FindJobSeekerProfileByUserID(db, seekerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	score := algorithms.ScoreJobMatch(profile, job)
	return &dto.JobMatchResponse{
		JobID:   job.ID,
		Score:   score.Score,
		Reasons: score.Reasons,
	}, nil
}

func (s *jobService) ownedJob(db *gorm.DB, requesterID string, requesterRole models.UserRole, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.PostedBy != requesterID && requesterRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return job, nil
}

// searchCriteriaFromQuery maps the transport query onto the repository
// criteria. Alerts replay their stored query through the same mapping,
// with postedAfter narrowing to jobs newer than the last digest.
func searchCriteriaFromQuery(query dto.JobSearchQuery, postedAfter *time.Time) repositories.JobSearchCriteria {
	return repositories.JobSearchCriteria{
		Search:        query.Search,
		Location:      query.Location,
		JobType:       query.JobType,
		WorkMode:      query.WorkMode,
		SalaryMin:     query.SalaryMin,
		ExperienceMin: query.ExperienceMin,
		ExperienceMax: query.ExperienceMax,
		Skills:        splitSkillsCSV(query.Skills),
		PostedAfter:   postedAfter,
		Page:          query.Page,
		PageSize:      query.PageSize,
	}
}

// splitSkillsCSV turns "go, sql,," into ["go" "sql"].
func splitSkillsCSV(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}

func jobListResponse(jobs []models.Job, total int64, page, pageSize int) *dto.JobListResponse {
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return &dto.JobListResponse{
		Jobs:       items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: dto.TotalPages(total, pageSize),
	}
}
