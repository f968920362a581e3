package services

import (
	"fmt"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/email"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, seekerID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	GetApplication(db *gorm.DB, requesterID string, requesterRole models.UserRole, applicationID string) (*dto.ApplicationResponse, error)
	MyApplications(db *gorm.DB, seekerID string, query dto.ApplicationListQuery) (*dto.ApplicationListResponse, error)
	JobApplications(db *gorm.DB, requesterID string, requesterRole models.UserRole, jobID string, query dto.ApplicationListQuery) (*dto.ApplicationListResponse, error)
	UpdateStatus(db *gorm.DB, requesterID string, requesterRole models.UserRole, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	Withdraw(db *gorm.DB, seekerID, applicationID string) error
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	resumeRepo      repositories.ResumeRepository
	notifications   NotificationService
	email           email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	resumeRepo repositories.ResumeRepository,
	notifications NotificationService,
	emailProvider email.Provider,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		resumeRepo:      resumeRepo,
		notifications:   notifications,
		email:           emailProvider,
	}
}

// Apply submits an application. One per (job, user); the posting must
// be active; the referenced resume must belong to the applicant.
func (s *applicationService) Apply(db *gorm.DB, seekerID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	seeker, err := s.userRepo.FindByID(db, seekerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if seeker.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrInvalidUserRole
	}

	job, err := s.jobRepo.FindByID(db, req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsActive {
		return nil, apperrors.ErrInvalidOperation("application", "This job is no longer accepting applications")
	}
	if job.PostedBy == seekerID {
		return nil, apperrors.ErrInvalidOperation("application", "You cannot apply to your own job posting")
	}

	if req.ResumeID != nil {
		resume, err := s.resumeRepo.FindByID(db, *req.ResumeID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrResumeNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		if resume.UserID != seekerID {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	application := &models.Application{
		JobID:       req.JobID,
		UserID:      seekerID,
		Status:      models.ApplicationStatusApplied,
		CoverLetter: req.CoverLetter,
		ResumeID:    req.ResumeID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Create(tx, application); err != nil {
			return err
		}
		return s.jobRepo.IncrementApplicationCount(tx, job.ID)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	notifyQuietly(s.notifications, db, job.PostedBy, models.NotificationTypeJobPosted,
		"New application received",
		fmt.Sprintf("%s applied to %q", seeker.FullName, job.Title),
		map[string]interface{}{"job_id": job.ID, "application_id": application.ID})

	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

func (s *applicationService) GetApplication(db *gorm.DB, requesterID string, requesterRole models.UserRole, applicationID string) (*dto.ApplicationResponse, error) {
	application, job, err := s.loadWithJob(db, applicationID)
	if err != nil {
		return nil, err
	}

	// Visible to the applicant, the job owner and admins.
	if application.UserID != requesterID && job.PostedBy != requesterID && requesterRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

func (s *applicationService) MyApplications(db *gorm.DB, seekerID string, query dto.ApplicationListQuery) (*dto.ApplicationListResponse, error) {
	query.Normalize()

	applications, total, err := s.applicationRepo.ListByUser(db, seekerID, query.Status, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicationListResponse(applications, total, query.Page, query.PageSize), nil
}

func (s *applicationService) JobApplications(db *gorm.DB, requesterID string, requesterRole models.UserRole, jobID string, query dto.ApplicationListQuery) (*dto.ApplicationListResponse, error) {
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

	query.Normalize()
	applications, total, err := s.applicationRepo.ListByJob(db, jobID, query.Status, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicationListResponse(applications, total, query.Page, query.PageSize), nil
}

// UpdateStatus moves an application along the pipeline. Only forward
// movement is allowed; rejected is reachable from any non-terminal
// stage; terminal states are frozen. The applicant is notified and
// emailed on every change.
func (s *applicationService) UpdateStatus(db *gorm.DB, requesterID string, requesterRole models.UserRole, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	application, job, err := s.loadWithJob(db, applicationID)
	if err != nil {
		return nil, err
	}

	if job.PostedBy != requesterID && requesterRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if !application.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.ErrInvalidStatus("application",
			fmt.Sprintf("Cannot move application from %s to %s", application.Status, req.Status))
	}

	if err := s.applicationRepo.UpdateStatus(db, application.ID, req.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = req.Status

	notifyQuietly(s.notifications, db, application.UserID, models.NotificationTypeApplicationStatus,
		"Application status updated",
		fmt.Sprintf("Your application for %q is now %s", job.Title, req.Status),
		map[string]interface{}{"job_id": job.ID, "application_id": application.ID, "status": string(req.Status)})

	if applicant, err := s.userRepo.FindByID(db, application.UserID); err == nil {
		go s.sendStatusEmail(applicant, job, req.Status)
	}

	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

// Withdraw removes the seeker's own application while it is still in
// flight. Terminal applications are part of the hiring record and stay.
func (s *applicationService) Withdraw(db *gorm.DB, seekerID, applicationID string) error {
	application, job, err := s.loadWithJob(db, applicationID)
	if err != nil {
		return err
	}
	if application.UserID != seekerID {
		return apperrors.ErrInsufficientPermissions
	}
	if application.Status.Terminal() {
		return apperrors.ErrInvalidOperation("application", "A concluded application cannot be withdrawn")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Delete(tx, application.ID); err != nil {
			return err
		}
		return s.jobRepo.DecrementApplicationCount(tx, job.ID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *applicationService) loadWithJob(db *gorm.DB, applicationID string) (*models.Application, *models.Job, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.InternalError(err)
	}

	job := application.Job
	if job == nil {
		job, err = s.jobRepo.FindByID(db, application.JobID)
		if err != nil {
			return nil, nil, apperrors.InternalError(err)
		}
	}
	return application, job, nil
}

func (s *applicationService) sendStatusEmail(applicant *models.User, job *models.Job, status models.ApplicationStatus) {
	err := s.email.SendTemplate(
		[]string{applicant.Email},
		fmt.Sprintf("Update on your application for %s", job.Title),
		email.TemplateApplicationStatus,
		email.TemplateData{
			"Name":     applicant.FullName,
			"JobTitle": job.Title,
			"Company":  job.Company,
			"Status":   string(status),
		},
	)
	if err != nil {
		logger.WithError(err).Warn("Failed to send application status email", "user_id", applicant.ID)
	}
}

func applicationListResponse(applications []models.Application, total int64, page, pageSize int) *dto.ApplicationListResponse {
	items := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, dto.NewApplicationResponse(&applications[i]))
	}
	return &dto.ApplicationListResponse{
		Applications: items,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   dto.TotalPages(total, pageSize),
	}
}
