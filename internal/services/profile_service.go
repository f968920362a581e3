package services

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/config"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/imageprocessor"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/storage"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetSeekerProfile(db *gorm.DB, userID string) (*dto.JobSeekerProfileResponse, error)
	UpdateSeekerProfile(db *gorm.DB, userID string, req *dto.UpdateJobSeekerProfileRequest) (*dto.JobSeekerProfileResponse, error)
	// ViewSeekerProfile is the employer-facing read. It honors the
	// owner's visibility switch and counts the view.
	ViewSeekerProfile(db *gorm.DB, viewerID string, targetUserID string) (*dto.JobSeekerProfileResponse, error)
	UploadSeekerPhoto(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.JobSeekerProfileResponse, error)
	GetRecruiterProfile(db *gorm.DB, userID string) (*dto.RecruiterProfileResponse, error)
	UpdateRecruiterProfile(db *gorm.DB, userID string, req *dto.UpdateRecruiterProfileRequest) (*dto.RecruiterProfileResponse, error)
	UploadCompanyLogo(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.RecruiterProfileResponse, error)
	SearchCandidates(db *gorm.DB, query dto.CandidateSearchQuery) (*dto.CandidateListResponse, error)
}

type profileService struct {
	profileRepo   repositories.ProfileRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
	storage       storage.Storage
	images        *imageprocessor.Processor
	upload        config.UploadConfig
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
	store storage.Storage,
	images *imageprocessor.Processor,
	upload config.UploadConfig,
) ProfileService {
	return &profileService{
		profileRepo:   profileRepo,
		userRepo:      userRepo,
		notifications: notifications,
		storage:       store,
		images:        images,
		upload:        upload,
	}
}

func (s *profileService) GetSeekerProfile(db *gorm.DB, userID string) (*dto.JobSeekerProfileResponse, error) {
	profile, err := s.seekerProfileOrInit(db, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewJobSeekerProfileResponse(profile)
	return &resp, nil
}

// UpdateSeekerProfile patches the provided fields and recomputes the
// completion percentage from the resulting state.
func (s *profileService) UpdateSeekerProfile(db *gorm.DB, userID string, req *dto.UpdateJobSeekerProfileRequest) (*dto.JobSeekerProfileResponse, error) {
	profile, err := s.seekerProfileOrInit(db, userID)
	if err != nil {
		return nil, err
	}

	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Summary != nil {
		profile.Summary = *req.Summary
	}
	if req.Skills != nil {
		profile.Skills = req.Skills
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.Education != nil {
		b, err := json.Marshal(req.Education)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.Education = b
	}
	if req.WorkExperience != nil {
		b, err := json.Marshal(req.WorkExperience)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.WorkExperience = b
	}
	if req.PreferredLocations != nil {
		profile.PreferredLocations = req.PreferredLocations
	}
	if req.CurrentLocation != nil {
		profile.CurrentLocation = *req.CurrentLocation
	}
	if req.ExpectedSalary != nil {
		profile.ExpectedSalary = *req.ExpectedSalary
	}
	if req.NoticePeriodDays != nil {
		profile.NoticePeriodDays = *req.NoticePeriodDays
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}

	profile.ProfileCompletionPct = SeekerProfileCompletion(profile)

	if err := s.profileRepo.UpdateJobSeekerProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobSeekerProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) ViewSeekerProfile(db *gorm.DB, viewerID string, targetUserID string) (*dto.JobSeekerProfileResponse, error) {
	profile, err := s.profileRepo.FindJobSeekerProfileByUserID(db, targetUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if viewerID != targetUserID {
		if !profile.IsPublic {
			return nil, apperrors.ErrProfileNotPublic
		}

		if err := s.profileRepo.IncrementProfileViews(db, targetUserID); err == nil {
			profile.ProfileViews++
		}

		viewerName := "A recruiter"
		if viewer, err := s.userRepo.FindByID(db, viewerID); err == nil {
			viewerName = viewer.FullName
		}
		notifyQuietly(s.notifications, db, targetUserID, models.NotificationTypeProfileViewed,
			"Your profile was viewed",
			fmt.Sprintf("%s viewed your profile", viewerName),
			map[string]interface{}{"viewer_id": viewerID})
	}

	resp := dto.NewJobSeekerProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) GetRecruiterProfile(db *gorm.DB, userID string) (*dto.RecruiterProfileResponse, error) {
	profile, err := s.recruiterProfileOrInit(db, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewRecruiterProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateRecruiterProfile(db *gorm.DB, userID string, req *dto.UpdateRecruiterProfileRequest) (*dto.RecruiterProfileResponse, error) {
	profile, err := s.recruiterProfileOrInit(db, userID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.CompanyLogo != nil {
		profile.CompanyLogo = *req.CompanyLogo
	}
	if req.Designation != nil {
		profile.Designation = *req.Designation
	}
	if req.CompanyWebsite != nil {
		profile.CompanyWebsite = *req.CompanyWebsite
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.CompanySize != nil {
		profile.CompanySize = *req.CompanySize
	}
	if req.About != nil {
		profile.About = *req.About
	}

	if err := s.profileRepo.UpdateRecruiterProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewRecruiterProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) SearchCandidates(db *gorm.DB, query dto.CandidateSearchQuery) (*dto.CandidateListResponse, error) {
	criteria := repositories.CandidateSearchCriteria{
		Skills:        splitSkillsCSV(query.Skills),
		Location:      query.Location,
		MinExperience: query.MinExperience,
		Limit:         query.Limit,
	}

	profiles, err := s.profileRepo.SearchCandidates(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	candidates := make([]dto.CandidateResponse, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		candidate := dto.CandidateResponse{
			UserID:             p.UserID,
			Headline:           p.Headline,
			Skills:             p.Skills,
			ExperienceYears:    p.ExperienceYears,
			CurrentLocation:    p.CurrentLocation,
			PreferredLocations: p.PreferredLocations,
		}
		if p.User != nil {
			candidate.FullName = p.User.FullName
		}
		candidates = append(candidates, candidate)
	}
	return &dto.CandidateListResponse{Candidates: candidates, Total: len(candidates)}, nil
}

// UploadSeekerPhoto replaces the seeker's profile picture. The image is
// cropped square, downscaled and re-encoded before storage; one key per
// user, so a new upload overwrites the old photo.
func (s *profileService) UploadSeekerPhoto(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.JobSeekerProfileResponse, error) {
	profile, err := s.seekerProfileOrInit(db, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.storeProfileImage(ctx, file, fmt.Sprintf("avatars/%s.jpg", userID), imageprocessor.PhotoSize)
	if err != nil {
		return nil, err
	}

	profile.ProfilePicture = url
	if err := s.profileRepo.UpdateJobSeekerProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobSeekerProfileResponse(profile)
	return &resp, nil
}

// UploadCompanyLogo replaces the logo on the recruiter profile.
func (s *profileService) UploadCompanyLogo(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.RecruiterProfileResponse, error) {
	profile, err := s.recruiterProfileOrInit(db, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.storeProfileImage(ctx, file, fmt.Sprintf("logos/%s.jpg", userID), imageprocessor.LogoSize)
	if err != nil {
		return nil, err
	}

	profile.CompanyLogo = url
	if err := s.profileRepo.UpdateRecruiterProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewRecruiterProfileResponse(profile)
	return &resp, nil
}

// storeProfileImage validates, normalizes and stores an uploaded image,
// returning its public URL.
func (s *profileService) storeProfileImage(ctx context.Context, file *multipart.FileHeader, key string, side int) (string, error) {
	if file.Size > s.upload.MaxImageSize {
		return "", apperrors.ErrFileTooLarge
	}
	if !containsString(s.upload.ImageTypes, resolveContentType(file)) {
		return "", apperrors.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	processed, err := s.images.Square(src, side)
	if err != nil {
		return "", apperrors.ErrInvalidFileType
	}

	if err := s.storage.Save(ctx, key, processed, "image/jpeg"); err != nil {
		return "", apperrors.InternalError(fmt.Errorf("store image: %w", err))
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

// seekerProfileOrInit loads the profile, creating an empty one for
// accounts that predate profile rows.
func (s *profileService) seekerProfileOrInit(db *gorm.DB, userID string) (*models.JobSeekerProfile, error) {
	profile, err := s.profileRepo.FindJobSeekerProfileByUserID(db, userID)
	if err == nil {
		return profile, nil
	}
	if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrInvalidUserRole
	}

	profile = &models.JobSeekerProfile{UserID: userID, IsPublic: true}
	if err := s.profileRepo.CreateJobSeekerProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) recruiterProfileOrInit(db *gorm.DB, userID string) (*models.RecruiterProfile, error) {
	profile, err := s.profileRepo.FindRecruiterProfileByUserID(db, userID)
	if err == nil {
		return profile, nil
	}
	if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleEmployer && user.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}

	profile = &models.RecruiterProfile{UserID: userID}
	if err := s.profileRepo.CreateRecruiterProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// SeekerProfileCompletion scores how filled-in a seeker profile is.
// Weights sum to 100; the result always lands in [0, 100].
func SeekerProfileCompletion(p *models.JobSeekerProfile) int {
	score := 0
	if p.Headline != "" {
		score += 10
	}
	if p.Summary != "" {
		score += 10
	}
	if len(p.Skills) > 0 {
		score += 20
	}
	if jsonArrayFilled(p.Education) {
		score += 15
	}
	if jsonArrayFilled(p.WorkExperience) {
		score += 15
	}
	if p.CurrentLocation != "" {
		score += 10
	}
	if len(p.PreferredLocations) > 0 {
		score += 5
	}
	if p.ExpectedSalary > 0 {
		score += 5
	}
	if p.ResumeID != nil {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

func jsonArrayFilled(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return false
	}
	return len(entries) > 0
}
