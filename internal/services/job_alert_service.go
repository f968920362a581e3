package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/email"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"gorm.io/gorm"
)

// digestWindowFallback bounds the lookback for an alert that has never
// fired, so the first digest does not replay the whole board.
const digestWindowFallback = 7 * 24 * time.Hour

// matchesPerAlert caps how many jobs one alert reports per run.
const matchesPerAlert = 20

type JobAlertService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateJobAlertRequest) (*dto.JobAlertResponse, error)
	Get(db *gorm.DB, userID, alertID string) (*dto.JobAlertResponse, error)
	ListMine(db *gorm.DB, userID string) (*dto.JobAlertListResponse, error)
	Update(db *gorm.DB, userID, alertID string, req *dto.UpdateJobAlertRequest) (*dto.JobAlertResponse, error)
	Delete(db *gorm.DB, userID, alertID string) error
	// CurrentMatches replays every active alert of the user against the
	// live board.
	CurrentMatches(db *gorm.DB, userID string) (*dto.AlertMatchesResponse, error)
	// EvaluateInstant runs right after a job is posted and fires every
	// instant alert the new posting satisfies.
	EvaluateInstant(db *gorm.DB, job *models.Job) error
	// RunDigests is the cron entry point for daily and weekly alerts.
	RunDigests(db *gorm.DB, frequency models.AlertFrequency) error
}

type jobAlertService struct {
	alertRepo     repositories.JobAlertRepository
	jobRepo       repositories.JobRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
	email         email.Provider
}

func NewJobAlertService(
	alertRepo repositories.JobAlertRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
	emailProvider email.Provider,
) JobAlertService {
	return &jobAlertService{
		alertRepo:     alertRepo,
		jobRepo:       jobRepo,
		userRepo:      userRepo,
		notifications: notifications,
		email:         emailProvider,
	}
}

func (s *jobAlertService) Create(db *gorm.DB, userID string, req *dto.CreateJobAlertRequest) (*dto.JobAlertResponse, error) {
	params, err := json.Marshal(req.SearchParams)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	alert := &models.JobAlert{
		UserID:             userID,
		Title:              strings.TrimSpace(req.Title),
		SearchParams:       params,
		Frequency:          models.AlertFrequencyDaily,
		IsActive:           true,
		EmailNotifications: true,
	}
	if req.Frequency != "" {
		alert.Frequency = models.AlertFrequency(req.Frequency)
	}
	if req.EmailNotifications != nil {
		alert.EmailNotifications = *req.EmailNotifications
	}

	if err := s.alertRepo.Create(db, alert); err != nil {
		if apperrors.Is(err, repositories.ErrJobAlertAlreadyExists) {
			return nil, apperrors.ErrDuplicateAlert
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobAlertResponse(alert)
	return &resp, nil
}

func (s *jobAlertService) Get(db *gorm.DB, userID, alertID string) (*dto.JobAlertResponse, error) {
	alert, err := s.ownedAlert(db, userID, alertID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewJobAlertResponse(alert)
	return &resp, nil
}

func (s *jobAlertService) ListMine(db *gorm.DB, userID string) (*dto.JobAlertListResponse, error) {
	alerts, err := s.alertRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.JobAlertResponse, 0, len(alerts))
	for i := range alerts {
		items = append(items, dto.NewJobAlertResponse(&alerts[i]))
	}
	return &dto.JobAlertListResponse{Alerts: items, Total: int64(len(items))}, nil
}

func (s *jobAlertService) Update(db *gorm.DB, userID, alertID string, req *dto.UpdateJobAlertRequest) (*dto.JobAlertResponse, error) {
	alert, err := s.ownedAlert(db, userID, alertID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title != alert.Title {
			if _, err := s.alertRepo.FindByUserAndTitle(db, userID, title); err == nil {
				return nil, apperrors.ErrDuplicateAlert
			} else if !apperrors.Is(err, repositories.ErrJobAlertNotFound) {
				return nil, apperrors.InternalError(err)
			}
			alert.Title = title
		}
	}
	if req.SearchParams != nil {
		params, err := json.Marshal(req.SearchParams)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		alert.SearchParams = params
	}
	if req.Frequency != nil {
		alert.Frequency = models.AlertFrequency(*req.Frequency)
	}
	if req.IsActive != nil {
		alert.IsActive = *req.IsActive
	}
	if req.EmailNotifications != nil {
		alert.EmailNotifications = *req.EmailNotifications
	}

	if err := s.alertRepo.Update(db, alert); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobAlertResponse(alert)
	return &resp, nil
}

func (s *jobAlertService) Delete(db *gorm.DB, userID, alertID string) error {
	alert, err := s.ownedAlert(db, userID, alertID)
	if err != nil {
		return err
	}
	if err := s.alertRepo.Delete(db, alert.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *jobAlertService) CurrentMatches(db *gorm.DB, userID string) (*dto.AlertMatchesResponse, error) {
	alerts, err := s.alertRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.AlertMatchesResponse{Matches: make([]dto.AlertMatchGroup, 0, len(alerts))}
	for i := range alerts {
		alert := &alerts[i]
		if !alert.IsActive {
			continue
		}

		jobs, err := s.searchForAlert(db, alert, nil)
		if err != nil {
			logger.WithError(err).Warn("Alert search failed", "alert_id", alert.ID)
			continue
		}

		group := dto.AlertMatchGroup{
			AlertID:    alert.ID,
			AlertTitle: alert.Title,
			Jobs:       make([]dto.JobResponse, 0, len(jobs)),
		}
		for j := range jobs {
			group.Jobs = append(group.Jobs, dto.NewJobResponse(&jobs[j]))
		}
		resp.Matches = append(resp.Matches, group)
	}
	return resp, nil
}

func (s *jobAlertService) EvaluateInstant(db *gorm.DB, job *models.Job) error {
	alerts, err := s.alertRepo.ListActiveByFrequency(db, models.AlertFrequencyInstant)
	if err != nil {
		return err
	}

	now := time.Now()
	for i := range alerts {
		alert := &alerts[i]
		if alert.UserID == job.PostedBy {
			continue
		}

		query, err := decodeAlertQuery(alert)
		if err != nil {
			logger.WithError(err).Warn("Skipping alert with unreadable search params", "alert_id", alert.ID)
			continue
		}
		if !jobMatchesQuery(job, query) {
			continue
		}

		notifyQuietly(s.notifications, db, alert.UserID, models.NotificationTypeJobAlert,
			fmt.Sprintf("New job matching %q", alert.Title),
			fmt.Sprintf("%s at %s matches your alert", job.Title, job.Company),
			map[string]interface{}{"alert_id": alert.ID, "job_id": job.ID})

		if alert.EmailNotifications {
			if owner, err := s.userRepo.FindByID(db, alert.UserID); err == nil {
				go s.sendDigestEmail(owner, alert, []models.Job{*job})
			}
		}

		if err := s.alertRepo.MarkTriggered(db, alert.ID, 1, now); err != nil {
			logger.WithError(err).Warn("Failed to mark alert triggered", "alert_id", alert.ID)
		}
	}
	return nil
}

func (s *jobAlertService) RunDigests(db *gorm.DB, frequency models.AlertFrequency) error {
	alerts, err := s.alertRepo.ListActiveByFrequency(db, frequency)
	if err != nil {
		return err
	}

	now := time.Now()
	for i := range alerts {
		alert := &alerts[i]

		since := now.Add(-digestWindowFallback)
		if alert.LastTriggered != nil && alert.LastTriggered.After(since) {
			since = *alert.LastTriggered
		}

		jobs, err := s.searchForAlert(db, alert, &since)
		if err != nil {
			logger.WithError(err).Warn("Alert digest search failed", "alert_id", alert.ID)
			continue
		}
		if len(jobs) == 0 {
			continue
		}

		notifyQuietly(s.notifications, db, alert.UserID, models.NotificationTypeJobAlert,
			fmt.Sprintf("%d new jobs matching %q", len(jobs), alert.Title),
			fmt.Sprintf("Your %s digest found %d new jobs", alert.Frequency, len(jobs)),
			map[string]interface{}{"alert_id": alert.ID, "match_count": len(jobs)})

		if alert.EmailNotifications {
			if owner, err := s.userRepo.FindByID(db, alert.UserID); err == nil {
				go s.sendDigestEmail(owner, alert, jobs)
			}
		}

		if err := s.alertRepo.MarkTriggered(db, alert.ID, len(jobs), now); err != nil {
			logger.WithError(err).Warn("Failed to mark alert triggered", "alert_id", alert.ID)
		}
	}
	return nil
}

func (s *jobAlertService) ownedAlert(db *gorm.DB, userID, alertID string) (*models.JobAlert, error) {
	alert, err := s.alertRepo.FindByID(db, alertID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobAlertNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	// Foreign alerts read as absent, not forbidden.
	if alert.UserID != userID {
		return nil, apperrors.ErrNotFound(repositories.ErrJobAlertNotFound)
	}
	return alert, nil
}

func (s *jobAlertService) searchForAlert(db *gorm.DB, alert *models.JobAlert, postedAfter *time.Time) ([]models.Job, error) {
	query, err := decodeAlertQuery(alert)
	if err != nil {
		return nil, err
	}
	criteria := searchCriteriaFromQuery(query, postedAfter)
	criteria.Page = 1
	criteria.PageSize = matchesPerAlert

	jobs, _, err := s.jobRepo.Search(db, criteria)
	return jobs, err
}

func (s *jobAlertService) sendDigestEmail(owner *models.User, alert *models.JobAlert, jobs []models.Job) {
	digest := make([]email.DigestJob, 0, len(jobs))
	for i := range jobs {
		digest = append(digest, email.DigestJob{
			Title:    jobs[i].Title,
			Company:  jobs[i].Company,
			Location: jobs[i].Location,
			Salary:   formatSalaryRange(jobs[i].SalaryMin, jobs[i].SalaryMax),
		})
	}

	err := s.email.SendTemplate(
		[]string{owner.Email},
		fmt.Sprintf("%d new jobs matching %q", len(jobs), alert.Title),
		email.TemplateAlertDigest,
		email.TemplateData{
			"Name":       owner.FullName,
			"AlertTitle": alert.Title,
			"MatchCount": len(jobs),
			"Jobs":       digest,
		},
	)
	if err != nil {
		logger.WithError(err).Warn("Failed to send alert digest email", "alert_id", alert.ID)
	}
}

func decodeAlertQuery(alert *models.JobAlert) (dto.JobSearchQuery, error) {
	var query dto.JobSearchQuery
	if len(alert.SearchParams) == 0 {
		return query, nil
	}
	err := json.Unmarshal(alert.SearchParams, &query)
	return query, err
}

// jobMatchesQuery mirrors the repository search predicate in memory so
// a single new posting can be tested without a query per alert.
func jobMatchesQuery(job *models.Job, q dto.JobSearchQuery) bool {
	if q.Search != "" {
		needle := strings.ToLower(strings.TrimSpace(q.Search))
		if !strings.Contains(strings.ToLower(job.Title), needle) &&
			!strings.Contains(strings.ToLower(job.Description), needle) &&
			!strings.Contains(strings.ToLower(job.Company), needle) {
			return false
		}
	}
	if q.Location != "" {
		if !strings.Contains(strings.ToLower(job.Location), strings.ToLower(strings.TrimSpace(q.Location))) {
			return false
		}
	}
	if q.JobType != "" && string(job.JobType) != q.JobType {
		return false
	}
	if q.WorkMode != "" && string(job.WorkMode) != q.WorkMode {
		return false
	}
	if q.SalaryMin > 0 && job.SalaryMax < q.SalaryMin {
		return false
	}
	if q.ExperienceMin != nil && job.ExperienceMax < *q.ExperienceMin {
		return false
	}
	if q.ExperienceMax != nil && job.ExperienceMin > *q.ExperienceMax {
		return false
	}
	if skills := splitSkillsCSV(q.Skills); len(skills) > 0 {
		if !hasAnySkill(job.Skills, skills) {
			return false
		}
	}
	return true
}

func hasAnySkill(jobSkills []string, wanted []string) bool {
	for _, w := range wanted {
		for _, s := range jobSkills {
			if strings.EqualFold(strings.TrimSpace(s), w) {
				return true
			}
		}
	}
	return false
}

func formatSalaryRange(min, max float64) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("%.0f - %.0f", min, max)
	case max > 0:
		return fmt.Sprintf("up to %.0f", max)
	case min > 0:
		return fmt.Sprintf("from %.0f", min)
	default:
		return "not disclosed"
	}
}
