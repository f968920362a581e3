package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/ai"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/config"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/storage"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"gorm.io/gorm"
)

const (
	maxResumesPerUser = 5
	downloadURLExpiry = 15 * time.Minute
)

type ResumeService interface {
	Upload(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.ResumeResponse, error)
	ListMine(db *gorm.DB, userID string) (*dto.ResumeListResponse, error)
	Get(db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error)
	DownloadURL(ctx context.Context, db *gorm.DB, userID, resumeID string) (*dto.ResumeDownloadResponse, error)
	SetPrimary(db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error)
	Delete(ctx context.Context, db *gorm.DB, userID, resumeID string) error
}

type resumeService struct {
	resumeRepo  repositories.ResumeRepository
	profileRepo repositories.ProfileRepository
	storage     storage.Storage
	analyzer    *ai.Client
	upload      config.UploadConfig
}

func NewResumeService(
	resumeRepo repositories.ResumeRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
	analyzer *ai.Client,
	upload config.UploadConfig,
) ResumeService {
	return &resumeService{
		resumeRepo:  resumeRepo,
		profileRepo: profileRepo,
		storage:     store,
		analyzer:    analyzer,
		upload:      upload,
	}
}

// Upload validates the file, stores it, runs analysis and records the
// result. The first resume a user uploads becomes their primary.
func (s *resumeService) Upload(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.ResumeResponse, error) {
	if file.Size > s.upload.MaxResumeSize {
		return nil, apperrors.ErrFileTooLarge
	}
	contentType := resolveContentType(file)
	if !containsString(s.upload.ResumeTypes, contentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	count, err := s.resumeRepo.CountByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count >= maxResumesPerUser {
		return nil, apperrors.ErrInvalidOperation("resume",
			fmt.Sprintf("Resume limit of %d reached, delete one first", maxResumesPerUser))
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.upload.MaxResumeSize+1))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if int64(len(data)) > s.upload.MaxResumeSize {
		return nil, apperrors.ErrFileTooLarge
	}

	text := ""
	if contentType == "application/pdf" {
		text, err = extractPDFText(data)
		if err != nil {
			logger.CtxWarn(ctx, "Resume text extraction failed",
				"user_id", userID, "file", file.Filename, "error", err)
		}
	}

	resume := &models.Resume{
		UserID:        userID,
		FileName:      filepath.Base(file.Filename),
		FileKey:       resumeObjectKey(userID, file.Filename),
		FileSize:      int64(len(data)),
		FileType:      contentType,
		ExtractedText: text,
		IsPrimary:     count == 0,
	}

	if text != "" {
		analysis := s.analyzer.AnalyzeResume(ctx, text)
		resume.ATSScore = analysis.ATSScore
		resume.Skills = analysis.Skills
		resume.Achievements = analysis.Achievements
		resume.Improvements = analysis.Improvements
	}

	if err := s.storage.Save(ctx, resume.FileKey, bytes.NewReader(data), contentType); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("store resume: %w", err))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.resumeRepo.Create(tx, resume); err != nil {
			return err
		}
		if resume.IsPrimary {
			return s.syncProfileResume(tx, userID, &resume.ID)
		}
		return nil
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, resume.FileKey); delErr != nil {
			logger.CtxError(ctx, "Failed to remove stored resume after rollback",
				"key", resume.FileKey, "error", delErr)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewResumeResponse(resume)
	return &resp, nil
}

func (s *resumeService) ListMine(db *gorm.DB, userID string) (*dto.ResumeListResponse, error) {
	resumes, err := s.resumeRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.ResumeResponse, 0, len(resumes))
	for i := range resumes {
		items = append(items, dto.NewResumeResponse(&resumes[i]))
	}
	return &dto.ResumeListResponse{Resumes: items, Total: int64(len(items))}, nil
}

func (s *resumeService) Get(db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error) {
	resume, err := s.ownedResume(db, userID, resumeID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewResumeResponse(resume)
	return &resp, nil
}

func (s *resumeService) DownloadURL(ctx context.Context, db *gorm.DB, userID, resumeID string) (*dto.ResumeDownloadResponse, error) {
	resume, err := s.ownedResume(db, userID, resumeID)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.GetSignedURL(ctx, resume.FileKey, downloadURLExpiry)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("sign resume url: %w", err))
	}
	return &dto.ResumeDownloadResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(downloadURLExpiry),
	}, nil
}

func (s *resumeService) SetPrimary(db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error) {
	resume, err := s.ownedResume(db, userID, resumeID)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.resumeRepo.SetPrimary(tx, userID, resumeID); err != nil {
			return err
		}
		return s.syncProfileResume(tx, userID, &resumeID)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resume.IsPrimary = true
	resp := dto.NewResumeResponse(resume)
	return &resp, nil
}

// Delete removes the record, then the stored object. When the primary
// resume goes away the newest remaining one takes its place.
func (s *resumeService) Delete(ctx context.Context, db *gorm.DB, userID, resumeID string) error {
	resume, err := s.ownedResume(db, userID, resumeID)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.resumeRepo.Delete(tx, resumeID); err != nil {
			return err
		}
		if !resume.IsPrimary {
			return nil
		}

		remaining, err := s.resumeRepo.ListByUser(tx, userID)
		if err != nil {
			return err
		}
		if len(remaining) == 0 {
			return s.syncProfileResume(tx, userID, nil)
		}
		next := remaining[0]
		if err := s.resumeRepo.SetPrimary(tx, userID, next.ID); err != nil {
			return err
		}
		return s.syncProfileResume(tx, userID, &next.ID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.storage.Delete(ctx, resume.FileKey); err != nil {
		logger.CtxWarn(ctx, "Failed to delete resume object from storage",
			"key", resume.FileKey, "error", err)
	}
	return nil
}

// ownedResume loads a resume and hides other users' resumes behind a
// not-found instead of leaking their existence.
func (s *resumeService) ownedResume(db *gorm.DB, userID, resumeID string) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindByID(db, resumeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if resume.UserID != userID {
		return nil, apperrors.ErrNotFound(repositories.ErrResumeNotFound)
	}
	return resume, nil
}

// syncProfileResume keeps JobSeekerProfile.ResumeID pointing at the
// current primary. Accounts without a profile row are left alone.
func (s *resumeService) syncProfileResume(db *gorm.DB, userID string, resumeID *string) error {
	profile, err := s.profileRepo.FindJobSeekerProfileByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil
		}
		return err
	}
	profile.ResumeID = resumeID
	profile.ProfileCompletionPct = SeekerProfileCompletion(profile)
	return s.profileRepo.UpdateJobSeekerProfile(db, profile)
}

func resumeObjectKey(userID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), ext)
}

// resolveContentType prefers the client-sent header and falls back to
// the extension for clients that omit it.
func resolveContentType(file *multipart.FileHeader) string {
	if ct := file.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// extractPDFText pulls plain text from a PDF. The parser panics on some
// malformed files, so failures of any kind yield empty text.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf open: %w", err)
	}

	var buf bytes.Buffer
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return buf.String(), nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
