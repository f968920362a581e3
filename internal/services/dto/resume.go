package dto

import (
	"encoding/json"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// ResumeResponse describes an uploaded resume and the analysis that was
// run against it. The storage key is never exposed; download access
// goes through the download endpoint.
type ResumeResponse struct {
	ID           string          `json:"id"`
	FileName     string          `json:"file_name"`
	FileSize     int64           `json:"file_size"`
	FileType     string          `json:"file_type"`
	ATSScore     int             `json:"ats_score"`
	Skills       []string        `json:"skills,omitempty"`
	Achievements []string        `json:"achievements,omitempty"`
	Improvements []string        `json:"improvements,omitempty"`
	Sections     json.RawMessage `json:"sections,omitempty"`
	IsPrimary    bool            `json:"is_primary"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewResumeResponse(r *models.Resume) ResumeResponse {
	return ResumeResponse{
		ID:           r.ID,
		FileName:     r.FileName,
		FileSize:     r.FileSize,
		FileType:     r.FileType,
		ATSScore:     r.ATSScore,
		Skills:       r.Skills,
		Achievements: r.Achievements,
		Improvements: r.Improvements,
		Sections:     json.RawMessage(r.Sections),
		IsPrimary:    r.IsPrimary,
		CreatedAt:    r.CreatedAt,
	}
}

type ResumeListResponse struct {
	Resumes []ResumeResponse `json:"resumes"`
	Total   int64            `json:"total"`
}

// ResumeDownloadResponse carries a short-lived URL for fetching the
// original file from storage.
type ResumeDownloadResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
