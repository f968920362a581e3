package services

import (
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SavedJobService interface {
	Save(db *gorm.DB, userID, jobID string) (*dto.SavedJobResponse, error)
	Unsave(db *gorm.DB, userID, jobID string) error
	ListMine(db *gorm.DB, userID string, query dto.PaginationQuery) (*dto.SavedJobListResponse, error)
}

type savedJobService struct {
	savedJobRepo repositories.SavedJobRepository
	jobRepo      repositories.JobRepository
}

func NewSavedJobService(savedJobRepo repositories.SavedJobRepository, jobRepo repositories.JobRepository) SavedJobService {
	return &savedJobService{savedJobRepo: savedJobRepo, jobRepo: jobRepo}
}

// Save bookmarks a job. A duplicate save is a conflict.
func (s *savedJobService) Save(db *gorm.DB, userID, jobID string) (*dto.SavedJobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	savedJob := &models.SavedJob{UserID: userID, JobID: job.ID}
	if err := s.savedJobRepo.Create(db, savedJob); err != nil {
		if apperrors.Is(err, repositories.ErrSavedJobAlreadyExists) {
			return nil, apperrors.ErrJobAlreadySaved
		}
		return nil, apperrors.InternalError(err)
	}

	savedJob.Job = job
	resp := dto.NewSavedJobResponse(savedJob)
	return &resp, nil
}

// Unsave removes the bookmark, keyed by job id rather than bookmark id.
func (s *savedJobService) Unsave(db *gorm.DB, userID, jobID string) error {
	savedJob, err := s.savedJobRepo.FindByUserAndJob(db, userID, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSavedJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.savedJobRepo.Delete(db, savedJob.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *savedJobService) ListMine(db *gorm.DB, userID string, query dto.PaginationQuery) (*dto.SavedJobListResponse, error) {
	query.Normalize()

	savedJobs, total, err := s.savedJobRepo.ListByUser(db, userID, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.SavedJobResponse, 0, len(savedJobs))
	for i := range savedJobs {
		items = append(items, dto.NewSavedJobResponse(&savedJobs[i]))
	}
	return &dto.SavedJobListResponse{
		SavedJobs:  items,
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: dto.TotalPages(total, query.PageSize),
	}, nil
}
